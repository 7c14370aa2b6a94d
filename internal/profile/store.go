package profile

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/logger"
)

// Profile is a named scoring weight preset
type Profile struct {
	Name        string              `yaml:"name" json:"name"`
	Description string              `yaml:"description,omitempty" json:"description,omitempty"`
	Weights     domain.ScoreWeights `yaml:"weights" json:"weights"`
}

type profileFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// Store holds the scoring profiles. It starts seeded with the built-in
// presets; a YAML file can add profiles or override the built-ins.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewStore returns a store seeded with the default profile and one preset
// per playstyle
func NewStore() *Store {
	s := &Store{profiles: make(map[string]Profile)}
	s.profiles[DefaultProfileName] = Profile{
		Name:        DefaultProfileName,
		Description: "Balanced damage, sustain and headroom",
		Weights:     domain.DefaultScoreWeights(),
	}
	for _, style := range domain.Playstyles {
		s.profiles[string(style)] = Profile{
			Name:        string(style),
			Description: fmt.Sprintf("Preset weights for the %s playstyle", style),
			Weights:     style.Weights(),
		}
	}
	return s
}

// LoadFile merges profiles from a YAML file into the store. Entries with a
// known name replace the built-in preset.
func (s *Store) LoadFile(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(ErrMsgReadProfilesFailed, err)
	}
	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf(ErrMsgParseProfilesFailed, path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range file.Profiles {
		name := normalizeName(p.Name)
		if name == "" {
			return fmt.Errorf(ErrMsgProfileNameRequired, i)
		}
		if _, exists := s.profiles[name]; exists {
			log.Info(LogMsgProfileOverridden, "profile", name)
		}
		p.Name = name
		s.profiles[name] = p
	}
	log.Info(LogMsgProfilesLoaded, "path", path, "profiles", len(file.Profiles))
	return nil
}

// Get returns a profile by name, case-insensitively
func (s *Store) Get(name string) (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[normalizeName(name)]
	return p, ok
}

// Weights resolves the weight set for a profile name, falling back to the
// default profile for unknown names
func (s *Store) Weights(name string) domain.ScoreWeights {
	if p, ok := s.Get(name); ok {
		return p.Weights
	}
	return domain.DefaultScoreWeights()
}

// All returns every profile sorted by name
func (s *Store) All() []Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

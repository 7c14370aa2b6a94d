package engine

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/logger"
	"github.com/wynnforge/wynnforge/internal/metrics"
	"github.com/wynnforge/wynnforge/internal/stats"
)

// Options configure engine-wide limits shared by all requests
type Options struct {
	// MaxCombinations caps raw combinations inspected per request.
	MaxCombinations int64

	// CandidateLimit caps each slot's candidate list.
	CandidateLimit int

	// MaxSkillPoints is the default requirement cap when a request does
	// not supply one.
	MaxSkillPoints int

	// Workers is the default shard count. One means sequential, fully
	// deterministic enumeration.
	Workers int
}

// DefaultOptions returns the engine limits used when none are configured
func DefaultOptions() Options {
	return Options{
		MaxCombinations: DefaultMaxCombinations,
		CandidateLimit:  DefaultCandidateLimit,
		MaxSkillPoints:  DefaultMaxSkillPoints,
		Workers:         1,
	}
}

// Service defines the interface for build generation operations
type Service interface {
	// GenerateBuilds enumerates the catalog for the request and returns the
	// best builds found. The catalog slice is treated as immutable.
	GenerateBuilds(ctx context.Context, catalog []domain.Item, req Request) (*Result, error)

	// ScoreBuild aggregates, derives and scores a single explicit build
	// with the default weights.
	ScoreBuild(ctx context.Context, build *domain.Build, level, maxSkillPoints int) (*domain.ScoredBuild, error)
}

type service struct {
	opts Options
}

// NewService creates a new generation engine with the given limits
func NewService(opts Options) Service {
	defaults := DefaultOptions()
	if opts.MaxCombinations <= 0 {
		opts.MaxCombinations = defaults.MaxCombinations
	}
	if opts.CandidateLimit <= 0 {
		opts.CandidateLimit = defaults.CandidateLimit
	}
	if opts.MaxSkillPoints <= 0 {
		opts.MaxSkillPoints = defaults.MaxSkillPoints
	}
	if opts.Workers <= 0 {
		opts.Workers = defaults.Workers
	}
	return &service{opts: opts}
}

// runConfig carries the per-request state shared by every shard
type runConfig struct {
	calc        *stats.Calculator
	constraints Constraints
	weights     domain.ScoreWeights
	custom      *CustomScorer
	level       int
	topN        int
	maxChecks   int64
}

// runState holds the atomic guards and tallies shared across shards
type runState struct {
	checked    atomic.Int64
	found      atomic.Int64
	truncated  atomic.Bool
	evalFailed atomic.Bool

	rejectedSkill atomic.Int64
	rejectedDPS   atomic.Int64
	rejectedMana  atomic.Int64
	rejectedCost  atomic.Int64
}

func (r *runState) tally() RejectionTally {
	return RejectionTally{
		SkillPoints: r.rejectedSkill.Load(),
		LowDPS:      r.rejectedDPS.Load(),
		LowMana:     r.rejectedMana.Load(),
		HighCost:    r.rejectedCost.Load(),
	}
}

// scoredCandidate is one valid build kept during enumeration. The sequence
// index breaks score ties deterministically regardless of shard count.
type scoredCandidate struct {
	seq     int64
	build   domain.Build
	agg     domain.AggregatedStats
	derived domain.DerivedStats
	score   float64
}

func (s *service) GenerateBuilds(ctx context.Context, catalog []domain.Item, req Request) (*Result, error) {
	log := logger.FromContext(ctx)
	started := time.Now()

	req.Normalize(s.opts)
	if err := req.Validate(); err != nil {
		metrics.GenerationsTotal.WithLabelValues(classLabel(req.Class), metrics.OutcomeFailure).Inc()
		return nil, err
	}
	if len(catalog) == 0 {
		metrics.GenerationsTotal.WithLabelValues(classLabel(req.Class), metrics.OutcomeFailure).Inc()
		return nil, domain.ErrCatalogEmpty
	}

	calc, err := stats.NewCalculator(req.Class)
	if err != nil {
		return nil, err
	}

	cands := SelectCandidates(catalog, FilterOptions{
		Class:        req.Class,
		Playstyle:    req.Playstyle,
		Elements:     req.Elements,
		ElementBoost: req.ElementBoost,
		LevelMin:     req.LevelMin,
		LevelMax:     req.LevelMax,
		NoMythics:    req.NoMythics,
		Limit:        s.opts.CandidateLimit,
	})

	result := &Result{Builds: []domain.ScoredBuild{}, Candidates: cands.Counts()}
	if missing := cands.MissingMandatory(); len(missing) > 0 {
		for _, slot := range missing {
			result.Diagnostics = append(result.Diagnostics, fmt.Sprintf(DiagNoCandidatesFormat, slot))
		}
		log.Warn(LogMsgMissingMandatorySlot, "class", req.Class, "slots", missing)
		result.Elapsed = time.Since(started)
		recordGeneration(req.Class, result)
		return result, nil
	}
	if req.TopN == 0 {
		result.Elapsed = time.Since(started)
		recordGeneration(req.Class, result)
		return result, nil
	}

	cfg := runConfig{
		calc: calc,
		constraints: Constraints{
			MaxSkillPoints: req.MaxSkillPoints,
			MinDPS:         req.MinDPS,
			MinManaSustain: req.MinManaSustain,
			MaxCost:        req.MaxCost,
		},
		weights:   req.ScoreWeights(),
		level:     req.CharacterLevel,
		topN:      req.TopN,
		maxChecks: s.opts.MaxCombinations,
	}
	if req.CustomScorer != "" {
		custom, compileErr := CompileScorer(req.CustomScorer)
		if compileErr != nil {
			log.Warn(LogMsgScorerCompileFailed, "error", compileErr)
			result.Warnings = append(result.Warnings, fmt.Sprintf(WarnScorerCompileFormat, compileErr))
		} else {
			cfg.custom = custom
		}
	}

	gen := NewGenerator(req.Class, cands)
	workers := min(req.Workers, len(cands.Weapons))
	log.Info(LogMsgGenerationStarted,
		"class", req.Class,
		"playstyle", req.Playstyle,
		"combinations", gen.Total(),
		"topN", req.TopN,
		"workers", workers)

	run := &runState{}
	var kept []scoredCandidate
	if workers > 1 {
		kept, err = s.runParallel(ctx, gen, workers, cfg, run)
	} else {
		kept = s.runShard(ctx, gen, 0, 1, cfg, run)
		err = ctx.Err()
	}
	if err != nil {
		return nil, err
	}

	if run.evalFailed.Load() {
		log.Warn(LogMsgScorerEvalFailed)
		result.Warnings = append(result.Warnings, "custom scorer evaluation failed, default weights used for affected builds")
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].score != kept[j].score {
			return kept[i].score > kept[j].score
		}
		return kept[i].seq < kept[j].seq
	})
	if len(kept) > cfg.topN {
		kept = kept[:cfg.topN]
	}
	result.Builds = make([]domain.ScoredBuild, len(kept))
	for i, c := range kept {
		result.Builds[i] = domain.ScoredBuild{Build: c.build, Stats: c.agg, Derived: c.derived, Score: c.score}
	}

	checked := run.checked.Load()
	if checked > cfg.maxChecks {
		checked = cfg.maxChecks
	}
	result.Checked = checked
	result.Valid = run.found.Load()
	result.Rejections = run.tally()
	result.Truncated = run.truncated.Load()
	result.Elapsed = time.Since(started)

	if result.Truncated {
		log.Warn(LogMsgGenerationTruncated, "checked", result.Checked, "found", len(result.Builds))
	}
	log.Info(LogMsgGenerationFinished,
		"checked", result.Checked,
		"valid", result.Valid,
		"rejected", result.Rejections.Total(),
		"returned", len(result.Builds),
		"truncated", result.Truncated,
		"duration", result.Elapsed)
	recordGeneration(req.Class, result)
	return result, nil
}

// classLabel bounds the metric label to known classes so arbitrary input
// cannot mint new series
func classLabel(c domain.Class) string {
	if c.Valid() {
		return string(c)
	}
	return "invalid"
}

// recordGeneration publishes the counters for one finished request
func recordGeneration(class domain.Class, res *Result) {
	metrics.GenerationsTotal.WithLabelValues(classLabel(class), metrics.OutcomeSuccess).Inc()
	metrics.GenerationDuration.WithLabelValues(classLabel(class)).Observe(res.Elapsed.Seconds())
	metrics.CombinationsChecked.Add(float64(res.Checked))
	metrics.BuildsReturned.Add(float64(len(res.Builds)))
	if res.Truncated {
		metrics.GenerationsTruncated.Inc()
	}
	for reason, count := range map[RejectReason]int64{
		RejectSkillPoints: res.Rejections.SkillPoints,
		RejectLowDPS:      res.Rejections.LowDPS,
		RejectLowMana:     res.Rejections.LowMana,
		RejectHighCost:    res.Rejections.HighCost,
	} {
		if count > 0 {
			metrics.BuildsRejected.WithLabelValues(string(reason)).Add(float64(count))
		}
	}
}

// runShard walks one shard of the search space, keeping every valid build
// until the global cap or the top-N target is reached
func (s *service) runShard(ctx context.Context, gen *Generator, shard, shards int, cfg runConfig, run *runState) []scoredCandidate {
	var kept []scoredCandidate
	gen.EnumerateShard(shard, shards, func(seq int64, b *domain.Build) bool {
		if ctx.Err() != nil {
			return false
		}
		if run.checked.Add(1) > cfg.maxChecks {
			run.truncated.Store(true)
			return false
		}

		agg := stats.Aggregate(b)
		if !CheckStructure(agg, cfg.constraints.MaxSkillPoints) {
			run.rejectedSkill.Add(1)
			return true
		}
		derived := cfg.calc.Derive(b, agg, cfg.level, cfg.constraints.MaxSkillPoints)
		switch ClassifyThresholds(derived, cfg.constraints) {
		case RejectLowDPS:
			run.rejectedDPS.Add(1)
			return true
		case RejectLowMana:
			run.rejectedMana.Add(1)
			return true
		case RejectHighCost:
			run.rejectedCost.Add(1)
			return true
		}

		score := Score(derived, cfg.weights)
		if cfg.custom != nil {
			if custom, evalErr := cfg.custom.Score(derived); evalErr == nil {
				score = custom
			} else {
				run.evalFailed.Store(true)
			}
		}

		kept = append(kept, scoredCandidate{seq: seq, build: *b, agg: agg, derived: derived, score: score})
		return run.found.Add(1) < int64(cfg.topN)
	})
	return kept
}

// runParallel shards the weapon loop across workers. The shared counters
// keep the caps global; the sequence indices keep the merged ordering
// deterministic for a given set of collected builds.
func (s *service) runParallel(ctx context.Context, gen *Generator, workers int, cfg runConfig, run *runState) ([]scoredCandidate, error) {
	results := make([][]scoredCandidate, workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			results[w] = s.runShard(gctx, gen, w, workers, cfg, run)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var all []scoredCandidate
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

func (s *service) ScoreBuild(ctx context.Context, build *domain.Build, level, maxSkillPoints int) (*domain.ScoredBuild, error) {
	if build == nil {
		return nil, domain.ErrInvalidInput
	}
	if !build.Class.Valid() {
		return nil, domain.ErrUnknownClass
	}
	if maxSkillPoints <= 0 {
		maxSkillPoints = s.opts.MaxSkillPoints
	}

	calc, err := stats.NewCalculator(build.Class)
	if err != nil {
		return nil, err
	}
	agg := stats.Aggregate(build)
	derived := calc.Derive(build, agg, level, maxSkillPoints)
	score := Score(derived, domain.DefaultScoreWeights())

	logger.FromContext(ctx).Debug("Scored explicit build",
		"class", build.Class,
		"items", len(build.Items()),
		"score", score)
	return &domain.ScoredBuild{Build: *build, Stats: agg, Derived: derived, Score: score}, nil
}

package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wynnforge/wynnforge/internal/catalog"
	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/engine"
	"github.com/wynnforge/wynnforge/internal/validation"
)

// MockEngineService implements engine.Service for testing
type MockEngineService struct {
	mock.Mock
}

func (m *MockEngineService) GenerateBuilds(ctx context.Context, items []domain.Item, req engine.Request) (*engine.Result, error) {
	args := m.Called(ctx, items, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.Result), args.Error(1)
}

func (m *MockEngineService) ScoreBuild(ctx context.Context, build *domain.Build, level, maxSkillPoints int) (*domain.ScoredBuild, error) {
	args := m.Called(ctx, build, level, maxSkillPoints)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScoredBuild), args.Error(1)
}

// stubFetcher returns canned bytes or an error
type stubFetcher struct {
	data []byte
	src  string
	err  error
}

func (f *stubFetcher) Fetch(ctx context.Context) ([]byte, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.data, f.src, nil
}

// testCatalogJSON is a complete mage equipment set plus spare accessories
const testCatalogJSON = `[
	{"name": "Test Wand", "type": "wand", "tier": "Unique", "lvl": 50, "atkSpd": "NORMAL", "nDam": "20-40", "intReq": 10},
	{"name": "Test Helmet", "type": "helmet", "tier": "Unique", "lvl": 50, "hp": 300},
	{"name": "Test Chest", "type": "chestplate", "tier": "Rare", "lvl": 50, "hp": 400},
	{"name": "Test Legs", "type": "leggings", "tier": "Unique", "lvl": 50, "hp": 350},
	{"name": "Test Boots", "type": "boots", "tier": "Unique", "lvl": 50, "hp": 250},
	{"name": "Test Ring A", "type": "ring", "tier": "Unique", "lvl": 40, "mr": 1},
	{"name": "Test Ring B", "type": "ring", "tier": "Rare", "lvl": 40, "sdPct": 5},
	{"name": "Test Ring C", "type": "ring", "tier": "Unique", "lvl": 45, "hpBonus": 50},
	{"name": "Test Bracelet", "type": "bracelet", "tier": "Unique", "lvl": 40, "hpBonus": 100},
	{"name": "Test Necklace", "type": "necklace", "tier": "Rare", "lvl": 40, "ms": 1}
]`

// newTestCatalog returns a catalog service loaded with the test equipment set
func newTestCatalog(t *testing.T, fetcher catalog.Fetcher) catalog.Service {
	t.Helper()
	loader := catalog.NewLoader(validation.NewSchemaValidator(), "")
	svc := catalog.NewService(loader, fetcher, catalog.DefaultOptions())
	_, err := svc.LoadBytes(context.Background(), []byte(testCatalogJSON), "test")
	require.NoError(t, err)
	return svc
}

// emptyTestCatalog returns a catalog service that has never loaded anything
func emptyTestCatalog(fetcher catalog.Fetcher) catalog.Service {
	loader := catalog.NewLoader(validation.NewSchemaValidator(), "")
	return catalog.NewService(loader, fetcher, catalog.DefaultOptions())
}

// fullSelection names one item per slot from the test catalog
func fullSelection() map[string]string {
	return map[string]string{
		"weapon":     "Test Wand",
		"helmet":     "Test Helmet",
		"chestplate": "Test Chest",
		"leggings":   "Test Legs",
		"boots":      "Test Boots",
		"ring1":      "Test Ring A",
		"ring2":      "Test Ring B",
		"bracelet":   "Test Bracelet",
		"necklace":   "Test Necklace",
	}
}

package bootstrap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wynnforge/wynnforge/internal/catalog"
	"github.com/wynnforge/wynnforge/internal/domain"
)

type stubFetcher struct {
	data []byte
	err  error
}

func (f *stubFetcher) Fetch(ctx context.Context) ([]byte, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return f.data, "items.json", nil
}

// stubStore serves canned snapshot data, recording sync calls
type stubStore struct {
	items  []domain.Item
	synced int
}

func (s *stubStore) SyncSnapshot(ctx context.Context, raw []byte, source string, items []domain.Item) (bool, error) {
	s.synced++
	return true, nil
}

func (s *stubStore) LatestSnapshot(ctx context.Context) (*catalog.Snapshot, error) {
	if len(s.items) == 0 {
		return nil, catalog.ErrNoSnapshot
	}
	return &catalog.Snapshot{
		ID:        1,
		Source:    "items.json",
		ItemCount: len(s.items),
		LoadedAt:  time.Now().Add(-time.Hour),
	}, nil
}

func (s *stubStore) LoadItems(ctx context.Context) ([]domain.Item, error) {
	if len(s.items) == 0 {
		return nil, catalog.ErrNoSnapshot
	}
	return s.items, nil
}

const primeTestJSON = `[
	{"name": "Prime Wand", "type": "wand", "tier": "Unique", "lvl": 40, "atkSpd": "NORMAL", "nDam": "10-20"},
	{"name": "Prime Helm", "type": "helmet", "tier": "Rare", "lvl": 42, "hp": 300}
]`

func newPrimeService(fetcher catalog.Fetcher) catalog.Service {
	return catalog.NewService(catalog.NewLoader(nil, ""), fetcher, catalog.DefaultOptions())
}

func TestPrimeCatalog_FetchSucceeds(t *testing.T) {
	svc := newPrimeService(&stubFetcher{data: []byte(primeTestJSON)})

	err := PrimeCatalog(context.Background(), svc, nil, "")
	require.NoError(t, err)
	assert.Equal(t, 2, svc.Len())
}

func TestPrimeCatalog_FallsBackToDatabase(t *testing.T) {
	svc := newPrimeService(&stubFetcher{err: errors.New("network down")})
	store := &stubStore{items: []domain.Item{
		{Name: "Stored Wand", Slot: domain.SlotWeapon, Tier: domain.TierUnique, Level: 40},
	}}

	err := PrimeCatalog(context.Background(), svc, store, "")
	require.NoError(t, err)
	assert.Equal(t, 1, svc.Len())

	item, err := svc.Get("Stored Wand")
	require.NoError(t, err)
	assert.Equal(t, domain.SlotWeapon, item.Slot)

	report := svc.Report()
	require.NotNil(t, report)
	assert.Equal(t, SourceDatabase, report.Source)
}

func TestPrimeCatalog_AllSourcesFail(t *testing.T) {
	fetchErr := errors.New("network down")
	svc := newPrimeService(&stubFetcher{err: fetchErr})

	t.Run("no store configured", func(t *testing.T) {
		err := PrimeCatalog(context.Background(), svc, nil, "")
		assert.ErrorIs(t, err, fetchErr)
	})

	t.Run("store is empty", func(t *testing.T) {
		err := PrimeCatalog(context.Background(), svc, &stubStore{}, "")
		assert.ErrorIs(t, err, fetchErr)
		assert.Zero(t, svc.Len())
	})
}

package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"launchpad/internal/domain"
	"launchpad/internal/storage"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key is empty", func(t *testing.T) {
		c := newCollection[domain.Agent](storage.NewMemoryStore(), storage.KeyAgents)
		require.Equal(t, []domain.Agent{}, c.List(ctx))
		_, ok := c.GetByID(ctx, "x")
		require.False(t, ok)
	})

	t.Run("corrupt json is empty", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, storage.KeyInvestors, []byte("{not json")))

		c := newCollection[domain.Investor](store, storage.KeyInvestors)
		require.Equal(t, []domain.Investor{}, c.List(ctx))
	})

	t.Run("null is empty", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, storage.KeyInvestors, []byte("null")))

		c := newCollection[domain.Investor](store, storage.KeyInvestors)
		require.Equal(t, []domain.Investor{}, c.List(ctx))
	})

	t.Run("add stamps and preserves order", func(t *testing.T) {
		c := newCollection[domain.Agent](storage.NewMemoryStore(), storage.KeyAgents)
		now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		ids := []string{"a", "b"}
		c.now = func() time.Time { return now }
		c.newID = func() string {
			id := ids[0]
			ids = ids[1:]
			return id
		}

		first, err := c.Add(ctx, domain.Agent{Name: "first", Prompt: "p"})
		require.NoError(t, err)
		require.Equal(t, "a", first.ID)
		require.Equal(t, now, first.CreatedAt)

		explicit := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		second, err := c.Add(ctx, domain.Agent{Name: "second", Prompt: "p", CreatedAt: explicit})
		require.NoError(t, err)
		require.Equal(t, explicit, second.CreatedAt)

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.Agent{*first, *second},
				c.List(ctx),
			),
		)

		got, ok := c.GetByID(ctx, "b")
		require.True(t, ok)
		require.Equal(t, "second", got.Name)
	})

	t.Run("concurrent adds are not lost", func(t *testing.T) {
		c := newCollection[domain.Investment](storage.NewMemoryStore(), storage.KeyInvestments)

		wg := sync.WaitGroup{}
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := c.Add(ctx, domain.Investment{InvestorID: "x", Amount: 1}); err != nil {
					t.Error(err)
				}
			}()
		}
		wg.Wait()

		require.Len(t, c.List(ctx), 20)
	})
}

// flakyStore fails the next failGets reads.
type flakyStore struct {
	storage.Store
	failGets int
}

func (s *flakyStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.failGets > 0 {
		s.failGets--
		return nil, false, errors.New("connection reset")
	}
	return s.Store.Get(ctx, key)
}

func TestCollection_AddReadFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("read error keeps existing records", func(t *testing.T) {
		store := &flakyStore{Store: storage.NewMemoryStore()}
		c := newCollection[domain.Investor](store, storage.KeyInvestors)
		for _, name := range []string{"A", "B", "C"} {
			_, err := c.Add(ctx, domain.Investor{Name: name})
			require.NoError(t, err)
		}

		store.failGets = 1
		_, err := c.Add(ctx, domain.Investor{Name: "D"})
		require.ErrorContains(t, err, "connection reset")

		names := []string{}
		for _, in := range c.List(ctx) {
			names = append(names, in.Name)
		}
		require.Equal(t, []string{"A", "B", "C"}, names)

		_, err = c.Add(ctx, domain.Investor{Name: "D"})
		require.NoError(t, err)
		require.Len(t, c.List(ctx), 4)
	})

	t.Run("corrupt json is overwritten", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Set(ctx, storage.KeyInvestors, []byte("{not json")))

		c := newCollection[domain.Investor](store, storage.KeyInvestors)
		added, err := c.Add(ctx, domain.Investor{Name: "A"})
		require.NoError(t, err)

		all := c.List(ctx)
		require.Len(t, all, 1)
		require.Equal(t, added.ID, all[0].ID)
	})
}

func TestRecordRepositories(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	t.Run("investor focus defaults to empty", func(t *testing.T) {
		r := NewInvestorRepository(store)
		investor, err := r.Add(ctx, domain.Investor{Name: "A", RiskTolerance: domain.RiskLevel_Low})
		require.NoError(t, err)
		require.NotNil(t, investor.InvestmentFocus)

		got, ok := r.Get(ctx, investor.ID)
		require.True(t, ok)
		require.Equal(t, []string{}, got.InvestmentFocus)
		require.Len(t, r.List(ctx), 1)
	})

	t.Run("investments filter by investor", func(t *testing.T) {
		r := NewInvestmentRepository(store)
		for _, id := range []string{"x", "y", "x"} {
			_, err := r.Add(ctx, domain.Investment{InvestorID: id, OpportunityID: "1", Amount: 10})
			require.NoError(t, err)
		}

		require.Len(t, r.List(ctx, InvestmentListFilter{}), 3)
		require.Len(t, r.List(ctx, InvestmentListFilter{InvestorIDs: []string{"x"}}), 2)
		require.Empty(t, r.List(ctx, InvestmentListFilter{InvestorIDs: []string{"z"}}))
	})

	t.Run("agents live under vc_agents", func(t *testing.T) {
		r := NewAgentRepository(store)
		_, err := r.Add(ctx, domain.Agent{Name: "Scout", Prompt: "p"})
		require.NoError(t, err)

		raw, ok, err := store.Get(ctx, "vc_agents")
		require.NoError(t, err)
		require.True(t, ok)
		require.Contains(t, string(raw), "Scout")
	})
}

package service

import (
	"fmt"
	"testing"

	"launchpad/internal/domain"
	"launchpad/internal/repository"

	"github.com/stretchr/testify/require"
)

func newOpportunities(n int) []domain.Opportunity {
	out := []domain.Opportunity{}
	for i := 1; i <= n; i++ {
		out = append(out, domain.Opportunity{
			ID:   fmt.Sprint(i),
			Name: fmt.Sprintf("Opportunity %d", i),
		})
	}
	return out
}

func sumAllocations(t *testing.T, in []domain.Opportunity) int {
	total := 0
	for _, o := range in {
		require.NotNil(t, o.Allocation)
		total += *o.Allocation
	}
	return total
}

func TestAllocatorService_Allocate(t *testing.T) {
	t.Run("picks three of twelve within bounds", func(t *testing.T) {
		h := NewAllocatorService(NewSeededRandomSource(11))
		catalog := newOpportunities(12)

		for i := 0; i < 500; i++ {
			out, err := h.Allocate(catalog, DefaultAllocationCount)
			require.NoError(t, err)
			require.Len(t, out, 3)
			require.Equal(t, 100, sumAllocations(t, out))

			seen := map[string]bool{}
			for _, o := range out {
				require.GreaterOrEqual(t, *o.Allocation, 15)
				require.LessOrEqual(t, *o.Allocation, 45)
				require.False(t, seen[o.ID])
				seen[o.ID] = true
			}
		}
	})

	t.Run("single pick gets everything", func(t *testing.T) {
		h := NewAllocatorService(NewSeededRandomSource(1))
		out, err := h.Allocate(newOpportunities(5), 1)
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Equal(t, 100, *out[0].Allocation)
	})

	t.Run("empty catalog", func(t *testing.T) {
		h := NewAllocatorService(NewSeededRandomSource(1))
		out, err := h.Allocate(nil, 3)
		require.NoError(t, err)
		require.Empty(t, out)

		out, err = h.Allocate(newOpportunities(3), 0)
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("k larger than catalog", func(t *testing.T) {
		h := NewAllocatorService(NewSeededRandomSource(5))
		out, err := h.Allocate(newOpportunities(3), 5)
		require.NoError(t, err)
		require.Len(t, out, 3)
		require.Equal(t, 100, sumAllocations(t, out))
	})

	t.Run("too many picks for the bounds", func(t *testing.T) {
		h := NewAllocatorService(NewSeededRandomSource(5))
		_, err := h.Allocate(newOpportunities(12), 8)
		require.ErrorIs(t, err, ErrInfeasibleAllocation)

		// two entries cannot both stay at or under 45
		_, err = h.Allocate(newOpportunities(12), 2)
		require.ErrorIs(t, err, ErrInfeasibleAllocation)
	})

	t.Run("fixed allocations survive and the catalog is untouched", func(t *testing.T) {
		catalogRepository, err := repository.NewCatalogRepository()
		require.NoError(t, err)
		catalog := catalogRepository.List()
		fixed := map[string]int{}
		for _, o := range catalog {
			if o.Allocation != nil {
				fixed[o.ID] = *o.Allocation
			}
		}
		require.NotEmpty(t, fixed)

		h := NewAllocatorService(NewSeededRandomSource(99))
		for i := 0; i < 300; i++ {
			out, err := h.Allocate(catalog, DefaultAllocationCount)
			require.NoError(t, err)
			require.Equal(t, 100, sumAllocations(t, out))
			// the last entry always takes the remainder
			for _, o := range out[:len(out)-1] {
				if want, ok := fixed[o.ID]; ok {
					require.Equal(t, want, *o.Allocation)
				}
			}
		}

		for _, o := range catalog {
			if want, ok := fixed[o.ID]; ok {
				require.Equal(t, want, *o.Allocation)
			} else {
				require.Nil(t, o.Allocation)
			}
		}
	})
}

package service

import (
	"errors"

	"launchpad/internal/domain"
)

const (
	DefaultAllocationCount = 3

	minAllocation   = 15
	maxAllocation   = 45
	totalAllocation = 100
)

// ErrInfeasibleAllocation is returned when the bounds cannot be met, for
// example when k is too large for every entry to get at least 15.
var ErrInfeasibleAllocation = errors.New("no allocation satisfies the per-entry bounds")

type AllocatorService interface {
	// Allocate picks up to k opportunities at random and assigns each an
	// integer percent. The percents sum to 100. The input is not modified.
	// k is capped at the catalog size. With the [15,45] bounds only k=1 and
	// 3 <= k <= 6 are feasible; any other k returns ErrInfeasibleAllocation.
	Allocate(catalog []domain.Opportunity, k int) ([]domain.Opportunity, error)
}

type allocatorServiceHandler struct {
	Random RandomSource
}

func NewAllocatorService(random RandomSource) AllocatorService {
	return allocatorServiceHandler{
		Random: random,
	}
}

func (h allocatorServiceHandler) Allocate(catalog []domain.Opportunity, k int) ([]domain.Opportunity, error) {
	if len(catalog) == 0 || k <= 0 {
		return []domain.Opportunity{}, nil
	}

	shuffled := make([]domain.Opportunity, len(catalog))
	copy(shuffled, catalog)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := h.Random.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	if k > len(shuffled) {
		k = len(shuffled)
	}
	selected := shuffled[:k]

	total := 0
	for i := 0; i < k-1; i++ {
		if selected[i].Allocation != nil {
			// fixed in the catalog; copy so the catalog's pointer is not shared
			selected[i] = selected[i].WithAllocation(*selected[i].Allocation)
			total += *selected[i].Allocation
			continue
		}

		remaining := totalAllocation - total
		left := k - i - 1
		hi := min(maxAllocation, remaining-left*minAllocation)
		lo := max(minAllocation, remaining-left*maxAllocation)
		if lo > hi {
			return nil, ErrInfeasibleAllocation
		}

		percent := uniformInt(h.Random, lo, hi)
		selected[i] = selected[i].WithAllocation(percent)
		total += percent
	}

	last := totalAllocation - total
	if last < 0 {
		return nil, ErrInfeasibleAllocation
	}
	selected[k-1] = selected[k-1].WithAllocation(last)

	return selected, nil
}

package repository

import (
	_ "embed"
	"fmt"

	"launchpad/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// CatalogRepository serves the static opportunity catalog. Opportunities
// are not user-created.
type CatalogRepository interface {
	List() []domain.Opportunity
	// Lookup never fails; unknown IDs resolve to the Unknown Opportunity.
	Lookup(id string) domain.Opportunity
	MinInvestment(id string) (float64, bool)
}

type catalogRepositoryHandler struct {
	opportunities []domain.Opportunity
	byID          map[string]domain.Opportunity
}

func NewCatalogRepository() (CatalogRepository, error) {
	return NewCatalogRepositoryFromYaml(defaultCatalog)
}

func NewCatalogRepositoryFromYaml(in []byte) (CatalogRepository, error) {
	opportunities := []domain.Opportunity{}
	if err := yaml.Unmarshal(in, &opportunities); err != nil {
		return nil, fmt.Errorf("failed to parse opportunity catalog: %w", err)
	}

	byID := map[string]domain.Opportunity{}
	for _, o := range opportunities {
		if o.ID == "" {
			return nil, fmt.Errorf("catalog entry %q has no id", o.Name)
		}
		if _, ok := byID[o.ID]; ok {
			return nil, fmt.Errorf("duplicate catalog id %s", o.ID)
		}
		if !o.RiskLevel.Valid() {
			return nil, fmt.Errorf("catalog entry %s has invalid risk level %q", o.ID, o.RiskLevel)
		}
		byID[o.ID] = o
	}

	return catalogRepositoryHandler{
		opportunities: opportunities,
		byID:          byID,
	}, nil
}

// List returns copies so callers may assign allocations freely.
func (h catalogRepositoryHandler) List() []domain.Opportunity {
	out := make([]domain.Opportunity, len(h.opportunities))
	copy(out, h.opportunities)
	return out
}

func (h catalogRepositoryHandler) Lookup(id string) domain.Opportunity {
	if o, ok := h.byID[id]; ok {
		return o
	}
	return domain.UnknownOpportunity(id)
}

func (h catalogRepositoryHandler) MinInvestment(id string) (float64, bool) {
	if id == domain.AIAgentOpportunityID {
		return domain.AIAgentMinInvestment, true
	}
	o, ok := h.byID[id]
	if !ok {
		return 0, false
	}
	return o.MinInvestment, true
}

package repository

import (
	"testing"

	"launchpad/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCatalogRepository(t *testing.T) {
	t.Run("embedded catalog", func(t *testing.T) {
		r, err := NewCatalogRepository()
		require.NoError(t, err)

		opportunities := r.List()
		require.Len(t, opportunities, 12)

		// List hands out copies
		opportunities[0].Name = "changed"
		require.NotEqual(t, "changed", r.List()[0].Name)

		require.Equal(t, "1", r.Lookup("1").ID)
		require.True(t, r.Lookup("missing").IsUnknown())

		minTicket, ok := r.MinInvestment(domain.AIAgentOpportunityID)
		require.True(t, ok)
		require.Equal(t, float64(domain.AIAgentMinInvestment), minTicket)

		_, ok = r.MinInvestment("missing")
		require.False(t, ok)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := NewCatalogRepositoryFromYaml([]byte(`
- id: "1"
  name: a
  riskLevel: low
- id: "1"
  name: b
  riskLevel: low
`))
		require.ErrorContains(t, err, "duplicate")
	})

	t.Run("rejects bad risk level", func(t *testing.T) {
		_, err := NewCatalogRepositoryFromYaml([]byte(`
- id: "1"
  name: a
  riskLevel: extreme
`))
		require.Error(t, err)
	})
}

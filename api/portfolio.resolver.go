package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"launchpad/internal/domain"
	"launchpad/internal/service"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getPortfolio(c *gin.Context) {
	details, err := m.PortfolioService.GetPortfolioDetails(c, c.Param("id"))
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (m ApiHandler) getPortfolioCsv(c *gin.Context) {
	id := c.Param("id")
	out, err := m.PortfolioService.ExportCsv(c, id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="portfolio-%s.csv"`, id))
	c.Data(http.StatusOK, "text/csv", out)
}

type opportunitiesResponse struct {
	InvestorID    string               `json:"investorId"`
	Opportunities []domain.Opportunity `json:"opportunities"`
}

func (m ApiHandler) getInvestorOpportunities(c *gin.Context) {
	id := c.Param("id")
	if _, ok := m.InvestorRepository.Get(c, id); !ok {
		returnErrorJson(domain.NewNotFoundError("Investor", id), c)
		return
	}

	k := service.DefaultAllocationCount
	if v := c.Query("k"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			returnErrorJson(domain.NewValidationError("k", fmt.Sprintf("not an integer: %q", v)), c)
			return
		}
		k = parsed
	}

	opportunities, err := m.AllocatorService.Allocate(m.CatalogRepository.List(), k)
	if errors.Is(err, service.ErrInfeasibleAllocation) {
		returnErrorJson(domain.NewValidationError("k", err.Error()), c)
		return
	}
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, opportunitiesResponse{
		InvestorID:    id,
		Opportunities: opportunities,
	})
}

package api

import (
	"net/http"

	"launchpad/internal/domain"

	"github.com/gin-gonic/gin"
)

type addInvestorRequest struct {
	Name                string   `json:"name" binding:"required"`
	Description         string   `json:"description"`
	RiskTolerance       string   `json:"riskTolerance" binding:"required"`
	InvestmentFocus     []string `json:"investmentFocus"`
	MinInvestmentAmount float64  `json:"minInvestmentAmount" binding:"gte=0"`
	MaxInvestmentAmount float64  `json:"maxInvestmentAmount" binding:"gte=0"`
	Details             string   `json:"details"`
}

func (m ApiHandler) addInvestor(c *gin.Context) {
	var requestBody addInvestorRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	riskTolerance, err := domain.ParseRiskLevel(requestBody.RiskTolerance)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	in := domain.Investor{
		Name:                requestBody.Name,
		Description:         requestBody.Description,
		RiskTolerance:       riskTolerance,
		InvestmentFocus:     requestBody.InvestmentFocus,
		MinInvestmentAmount: requestBody.MinInvestmentAmount,
		MaxInvestmentAmount: requestBody.MaxInvestmentAmount,
		Details:             requestBody.Details,
	}
	if err := in.Validate(); err != nil {
		returnErrorJson(err, c)
		return
	}

	investor, err := m.InvestorRepository.Add(c, in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusCreated, investor)
}

func (m ApiHandler) listInvestors(c *gin.Context) {
	c.JSON(http.StatusOK, m.InvestorRepository.List(c))
}

func (m ApiHandler) getInvestor(c *gin.Context) {
	id := c.Param("id")
	investor, ok := m.InvestorRepository.Get(c, id)
	if !ok {
		returnErrorJson(domain.NewNotFoundError("Investor", id), c)
		return
	}

	c.JSON(http.StatusOK, investor)
}

func (m ApiHandler) getPerformanceMetrics(c *gin.Context) {
	id := c.Param("id")
	if _, ok := m.InvestorRepository.Get(c, id); !ok {
		returnErrorJson(domain.NewNotFoundError("Investor", id), c)
		return
	}

	c.JSON(http.StatusOK, m.SimulatorService.PerformanceMetrics(id))
}

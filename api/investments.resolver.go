package api

import (
	"net/http"

	"launchpad/internal/service"

	"github.com/gin-gonic/gin"
)

type investRequest struct {
	InvestorID    string `json:"investorId" binding:"required"`
	OpportunityID string `json:"opportunityId" binding:"required"`
	// optional, defaults to the opportunity's minimum investment
	Amount *float64 `json:"amount" binding:"omitempty,gt=0"`
}

func (m ApiHandler) invest(c *gin.Context) {
	var requestBody investRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	investment, err := m.InvestmentService.Invest(c, service.InvestInput{
		InvestorID:    requestBody.InvestorID,
		OpportunityID: requestBody.OpportunityID,
		Amount:        requestBody.Amount,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusCreated, investment)
}

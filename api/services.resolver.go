package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (m ApiHandler) listServices(c *gin.Context) {
	services, err := m.BrokerRepository.ListServices(c)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"services": services,
	})
}

type sendQueryRequest struct {
	ProviderAddress string `json:"providerAddress" binding:"required"`
	Prompt          string `json:"prompt"`
	Query           string `json:"query" binding:"required"`
}

func (m ApiHandler) sendQuery(c *gin.Context) {
	var requestBody sendQueryRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	prompt := requestBody.Prompt
	if prompt == "" {
		prompt = m.Provider.Prompt
	}

	resp, err := m.BrokerRepository.SendQuery(c, requestBody.ProviderAddress, prompt, requestBody.Query)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"response": resp,
	})
}

type settleFeeRequest struct {
	ProviderAddress string          `json:"providerAddress" binding:"required"`
	Fee             decimal.Decimal `json:"fee"`
}

func (m ApiHandler) settleFee(c *gin.Context) {
	var requestBody settleFeeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	if err := m.BrokerRepository.SettleFee(c, requestBody.ProviderAddress, requestBody.Fee); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Fee settled successfully",
	})
}

package api

import (
	"net/http"

	"launchpad/internal/domain"

	"github.com/gin-gonic/gin"
)

type addAgentRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Prompt       string `json:"prompt" binding:"required"`
	Creator      string `json:"creator"`
	VaultAddress string `json:"vaultAddress"`
	Commission   string `json:"commission"`
	ImageURL     string `json:"imageUrl"`
}

func (m ApiHandler) addAgent(c *gin.Context) {
	var requestBody addAgentRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	in := domain.Agent{
		Name:         requestBody.Name,
		Description:  requestBody.Description,
		Prompt:       requestBody.Prompt,
		Creator:      requestBody.Creator,
		VaultAddress: requestBody.VaultAddress,
		Commission:   requestBody.Commission,
		ImageURL:     requestBody.ImageURL,
	}
	if err := in.Validate(); err != nil {
		returnErrorJson(err, c)
		return
	}

	agent, err := m.AgentRepository.Add(c, in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(http.StatusCreated, agent)
}

func (m ApiHandler) listAgents(c *gin.Context) {
	c.JSON(http.StatusOK, m.AgentRepository.List(c))
}

func (m ApiHandler) listOpportunities(c *gin.Context) {
	c.JSON(http.StatusOK, m.CatalogRepository.List())
}

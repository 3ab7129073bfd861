package api

import (
	"net/http"

	"launchpad/internal/logger"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getAccount(c *gin.Context) {
	balance, err := m.BrokerRepository.GetBalance(c)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"account": balance,
	})
}

type availableService struct {
	ProviderAddress string `json:"providerAddress"`
	ServiceType     string `json:"serviceType"`
	Endpoint        string `json:"endpoint"`
	Model           string `json:"model"`
	ProviderName    string `json:"providerName"`
}

type apiSummaryResponse struct {
	Name              string             `json:"name"`
	Version           string             `json:"version"`
	Documentation     string             `json:"documentation"`
	Endpoints         map[string]string  `json:"endpoints"`
	AvailableServices []availableService `json:"availableServices,omitempty"`
	Error             string             `json:"error,omitempty"`
}

func (m ApiHandler) getApiSummary(c *gin.Context) {
	out := apiSummaryResponse{
		Name:          apiName,
		Version:       apiVersion,
		Documentation: "/docs",
		Endpoints: map[string]string{
			"account":  apiPrefix + "/account",
			"services": apiPrefix + "/services",
			"wallet":   apiPrefix + "/wallet",
		},
	}

	services, err := m.BrokerRepository.ListServices(c)
	if err != nil {
		logger.FromContext(c).Errorf("failed to fetch services: %v", err)
		out.Error = "Failed to fetch available services"
		c.JSON(http.StatusInternalServerError, out)
		return
	}

	out.AvailableServices = []availableService{}
	for _, s := range services {
		out.AvailableServices = append(out.AvailableServices, availableService{
			ProviderAddress: s.ProviderAddress,
			ServiceType:     s.ServiceType,
			Endpoint:        s.Endpoint,
			Model:           s.Model,
			ProviderName:    s.ProviderName,
		})
	}

	c.JSON(http.StatusOK, out)
}

func (m ApiHandler) getDocs(c *gin.Context) {
	routes := []route{}
	for _, r := range m.routes() {
		routes = append(routes, r.route)
	}

	c.JSON(http.StatusOK, gin.H{
		"name":    apiName,
		"version": apiVersion,
		"routes":  routes,
	})
}

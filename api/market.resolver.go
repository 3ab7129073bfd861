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

func (m ApiHandler) getDapps(c *gin.Context) {
	if analyze, _ := strconv.ParseBool(c.Query("analyze")); analyze {
		content, err := m.MarketService.DappInsight(c)
		if err != nil {
			returnExternalError(err, c, "Failed to fetch dapps from Dappradar")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"originalData": content,
		})
		return
	}

	dapps, err := m.MarketService.GetDapps(c)
	if err != nil {
		returnExternalError(err, c, "Failed to fetch dapps from Dappradar")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"originalData": dapps,
	})
}

func (m ApiHandler) getFunds(c *gin.Context) {
	fundID := service.DefaultFundID
	if v := c.Query("fundId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid fundId %q", v), c, http.StatusBadRequest)
			return
		}
		fundID = id
	}

	content, err := m.MarketService.FundInsight(c, fundID)
	if err != nil {
		notFound := domain.NotFoundError{}
		if errors.As(err, &notFound) {
			returnErrorJsonCode(err, c, http.StatusNotFound)
			return
		}
		returnExternalError(err, c, "Failed to fetch funds from CryptoRank")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"originalData": content,
	})
}

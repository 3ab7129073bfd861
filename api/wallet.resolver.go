package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type connectWalletRequest struct {
	PrivateKey string `json:"privateKey"`
}

// connectWallet only checks that a key was supplied. Signing happens in the
// broker gateway, which holds its own key, so the supplied key is never
// stored or logged.
func (m ApiHandler) connectWallet(c *gin.Context) {
	var requestBody connectWalletRequest
	// a missing or malformed body is treated as a missing key
	_ = c.ShouldBindJSON(&requestBody)

	if strings.TrimSpace(requestBody.PrivateKey) == "" {
		returnErrorJsonCode(errors.New("Private key is required"), c, http.StatusBadRequest)
		return
	}

	balance, err := m.BrokerRepository.GetBalance(c)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Wallet connected successfully",
		"balance": balance,
	})
}

func (m ApiHandler) disconnectWallet(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Wallet disconnected",
	})
}

func (m ApiHandler) getWalletStatus(c *gin.Context) {
	balance, err := m.BrokerRepository.GetBalance(c)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  "connected",
		"balance": balance,
	})
}

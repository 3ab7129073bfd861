package cryptorank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultBaseURL = "https://api.cryptorank.io/v2"

type Client struct {
	HttpClient *http.Client
	ApiKey     string
	BaseURL    string
}

func NewClient(apiKey string) Client {
	return Client{
		HttpClient: &http.Client{Timeout: 20 * time.Second},
		ApiKey:     apiKey,
		BaseURL:    DefaultBaseURL,
	}
}

type APIError struct {
	StatusCode int
	Body       string
}

func (e APIError) Error() string {
	return fmt.Sprintf("cryptorank returned status %d: %s", e.StatusCode, e.Body)
}

type Fund struct {
	ID   int     `json:"id"`
	Key  string  `json:"key"`
	Name string  `json:"name"`
	Tier *int    `json:"tier"`
	Type *string `json:"type"`
}

type fundsMapResponse struct {
	Data []Fund `json:"data"`
}

func (c Client) GetFunds(ctx context.Context) ([]Fund, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/funds/map", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.ApiKey)
	req.Header.Set("Accept", "application/json")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get funds: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return nil, APIError{
			StatusCode: response.StatusCode,
			Body:       string(responseBytes),
		}
	}

	responseJson := fundsMapResponse{}
	if err := json.Unmarshal(responseBytes, &responseJson); err != nil {
		return nil, fmt.Errorf("failed to decode funds: %w", err)
	}
	if responseJson.Data == nil {
		return []Fund{}, nil
	}

	return responseJson.Data, nil
}

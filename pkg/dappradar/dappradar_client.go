package dappradar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://apis.dappradar.com/v2"

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
	return fmt.Sprintf("dappradar returned status %d: %s", e.StatusCode, e.Body)
}

// GetDapps returns one page of the dapp listing for chain. The payload is
// passed through untouched.
func (c Client) GetDapps(ctx context.Context, chain string, page int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("chain", chain)
	params.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/dapps?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-KEY", c.ApiKey)
	req.Header.Set("Accept", "application/json")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get dapps: %w", err)
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

	if !json.Valid(responseBytes) {
		return nil, fmt.Errorf("dappradar returned invalid json")
	}

	return json.RawMessage(responseBytes), nil
}

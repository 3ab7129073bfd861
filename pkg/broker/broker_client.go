// Package broker is a thin client for the compute network broker gateway,
// the HTTP process that hosts the vendor SDK and holds the wallet key.
package broker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	HttpClient *http.Client
	Endpoint   string
}

func NewClient(endpoint string) Client {
	return Client{
		HttpClient: &http.Client{Timeout: 20 * time.Second},
		Endpoint:   strings.TrimRight(endpoint, "/"),
	}
}

// APIError carries the gateway's status and body for non-2xx responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e APIError) Error() string {
	return fmt.Sprintf("broker gateway returned status %d: %s", e.StatusCode, e.Body)
}

type LedgerResponse struct {
	Address string `json:"address"`
	// [balance, locked]
	LedgerInfo []json.Number `json:"ledgerInfo"`
	// [providerAddress, balance, pendingRefund] per provider
	Infers [][]any `json:"infers"`
}

type QueryRequest struct {
	ProviderAddress string `json:"providerAddress"`
	Prompt          string `json:"prompt"`
	Query           string `json:"query"`
}

type QueryResponse struct {
	Model   string  `json:"model"`
	Content string  `json:"content"`
	ChatID  *string `json:"chatId"`
}

type SettleFeeRequest struct {
	ProviderAddress string `json:"providerAddress"`
	// decimal string, token units
	Fee string `json:"fee"`
}

func (c Client) GetLedger(ctx context.Context) (*LedgerResponse, error) {
	out := LedgerResponse{}
	if err := c.do(ctx, http.MethodGet, "/ledger", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get ledger: %w", err)
	}
	return &out, nil
}

// ListServices returns the raw service tuples:
// [provider, serviceType, url, inputPrice, outputPrice, updatedAt, model, providerName]
func (c Client) ListServices(ctx context.Context) ([][]any, error) {
	out := [][]any{}
	if err := c.do(ctx, http.MethodGet, "/services", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return out, nil
}

func (c Client) SendQuery(ctx context.Context, req QueryRequest) (*QueryResponse, error) {
	out := QueryResponse{}
	if err := c.do(ctx, http.MethodPost, "/query", req, &out); err != nil {
		return nil, fmt.Errorf("failed to send query to %s: %w", req.ProviderAddress, err)
	}
	return &out, nil
}

func (c Client) SettleFee(ctx context.Context, req SettleFeeRequest) error {
	if err := c.do(ctx, http.MethodPost, "/settle-fee", req, nil); err != nil {
		return fmt.Errorf("failed to settle fee with %s: %w", req.ProviderAddress, err)
	}
	return nil
}

func (c Client) do(ctx context.Context, method, path string, body any, dest any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Endpoint+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return APIError{
			StatusCode: response.StatusCode,
			Body:       string(responseBytes),
		}
	}

	if dest == nil || len(responseBytes) == 0 {
		return nil
	}

	// token amounts overflow float64
	decoder := json.NewDecoder(bytes.NewReader(responseBytes))
	decoder.UseNumber()
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// BigInt is an arbitrary precision integer (token amounts in wei) that
// always serializes as a JSON string, since JSON numbers lose precision
// past 2^53 in most clients.
type BigInt struct {
	*big.Int
}

func NewBigInt(i int64) BigInt {
	return BigInt{big.NewInt(i)}
}

func ParseBigInt(s string) (BigInt, error) {
	i, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return BigInt{}, fmt.Errorf("invalid integer %q", s)
	}
	return BigInt{i}, nil
}

func (b BigInt) String() string {
	if b.Int == nil {
		return "0"
	}
	return b.Int.String()
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON accepts both "123" and 123.
func (b *BigInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		b.Int = nil
		return nil
	}
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	parsed, err := ParseBigInt(s)
	if err != nil {
		return err
	}
	b.Int = parsed.Int
	return nil
}

type ProviderBalance struct {
	ProviderAddress string `json:"providerAddress"`
	Balance         BigInt `json:"balance"`
	PendingRefund   BigInt `json:"pendingRefund"`
}

type LedgerBalance struct {
	Address   string            `json:"address"`
	Balance   BigInt            `json:"balance"`
	Locked    BigInt            `json:"locked"`
	Providers []ProviderBalance `json:"providers"`
}

type ServiceInfo struct {
	ProviderAddress string `json:"providerAddress"`
	ServiceType     string `json:"serviceType"`
	Endpoint        string `json:"endpoint"`
	InputPrice      BigInt `json:"inputPrice"`
	OutputPrice     BigInt `json:"outputPrice"`
	UpdatedAt       BigInt `json:"updatedAt"`
	Model           string `json:"model"`
	ProviderName    string `json:"providerName"`
}

type QueryResponse struct {
	ProviderAddress string `json:"providerAddress"`
	Model           string `json:"model"`
	Content         string `json:"content"`
	// set when the provider returns a verifiable response
	ChatID *string `json:"chatId,omitempty"`
}

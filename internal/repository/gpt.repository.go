package repository

import (
	"context"
	"errors"
	"fmt"

	"launchpad/internal/domain"

	"github.com/ayush6624/go-chatgpt"
	"github.com/shopspring/decimal"
)

const gptProviderName = "openai"

type gptBrokerRepositoryHandler struct {
	BrokerRepository
	GptClient *chatgpt.Client
}

// NewGptBrokerRepository answers queries through the OpenAI chat API and
// leaves everything else to base. Wraps whichever broker is in use, gateway
// or mock, when an OpenAI key is configured.
func NewGptBrokerRepository(base BrokerRepository, apiKey string) (BrokerRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptBrokerRepositoryHandler{
		BrokerRepository: base,
		GptClient:        client,
	}, nil
}

func (h gptBrokerRepositoryHandler) SendQuery(ctx context.Context, providerAddress, prompt, query string) (*domain.QueryResponse, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: prompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: query,
			},
		},
	})
	if err != nil {
		return nil, domain.NewExternalServiceError(gptProviderName, err, nil)
	}
	if len(res.Choices) == 0 {
		return nil, domain.NewExternalServiceError(gptProviderName, errors.New("no choices returned"), nil)
	}

	return &domain.QueryResponse{
		ProviderAddress: providerAddress,
		Model:           string(chatgpt.GPT35Turbo),
		Content:         res.Choices[0].Message.Content,
	}, nil
}

// OpenAI bills the API key directly, so there is nothing to settle.
func (h gptBrokerRepositoryHandler) SettleFee(ctx context.Context, providerAddress string, fee decimal.Decimal) error {
	if !fee.IsPositive() {
		return domain.NewValidationError("fee", "must be positive")
	}
	return nil
}

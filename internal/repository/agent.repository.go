package repository

import (
	"context"

	"launchpad/internal/domain"
	"launchpad/internal/storage"
)

type AgentRepository interface {
	Add(ctx context.Context, a domain.Agent) (*domain.Agent, error)
	Get(ctx context.Context, id string) (*domain.Agent, bool)
	List(ctx context.Context) []domain.Agent
}

type agentRepositoryHandler struct {
	agents *collection[domain.Agent, *domain.Agent]
}

func NewAgentRepository(store storage.Store) AgentRepository {
	return agentRepositoryHandler{
		agents: newCollection[domain.Agent](store, storage.KeyAgents),
	}
}

func (h agentRepositoryHandler) Add(ctx context.Context, a domain.Agent) (*domain.Agent, error) {
	return h.agents.Add(ctx, a)
}

func (h agentRepositoryHandler) Get(ctx context.Context, id string) (*domain.Agent, bool) {
	return h.agents.GetByID(ctx, id)
}

func (h agentRepositoryHandler) List(ctx context.Context) []domain.Agent {
	return h.agents.List(ctx)
}

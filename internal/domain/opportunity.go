package domain

// Opportunity is a fundable project from the static catalog.
type Opportunity struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Description    string    `json:"description" yaml:"description"`
	Category       string    `json:"category" yaml:"category"`
	RiskLevel      RiskLevel `json:"riskLevel" yaml:"riskLevel"`
	ExpectedReturn float64   `json:"expectedReturn" yaml:"expectedReturn"`
	MinInvestment  float64   `json:"minInvestment" yaml:"minInvestment"`
	TotalRaised    float64   `json:"totalRaised" yaml:"totalRaised"`
	TargetAmount   float64   `json:"targetAmount" yaml:"targetAmount"`
	Deadline       string    `json:"deadline" yaml:"deadline"`
	AgentID        *string   `json:"agentId,omitempty" yaml:"agentId,omitempty"`
	// percent of the allocation set, either fixed in the catalog or assigned
	// by the allocator
	Allocation     *int      `json:"allocation,omitempty" yaml:"allocation,omitempty"`
}

const AIAgentOpportunityID = "ai-agent"

// investing directly in the agent is not a catalog entry but has its own
// minimum ticket
const AIAgentMinInvestment = 20000

func UnknownOpportunity(id string) Opportunity {
	return Opportunity{
		ID:       id,
		Name:     "Unknown Opportunity",
		Category: "Unknown",
	}
}

func (o Opportunity) WithAllocation(percent int) Opportunity {
	o.Allocation = &percent
	return o
}

func (o Opportunity) IsUnknown() bool {
	return o.Name == "Unknown Opportunity" && o.Category == "Unknown"
}

// Package catalog declares the shared data-model shapes exchanged with the
// mesh backend: agents, workflows, tools, transactions, prompts, models,
// secrets, and users. These are passive contracts with no behavior attached;
// the dashboard renders them and nothing here mutates them.
package catalog

import "time"

// AgentStatus enumerates agent lifecycle states.
type AgentStatus string

const (
	AgentStatusDraft    AgentStatus = "draft"
	AgentStatusActive   AgentStatus = "active"
	AgentStatusPaused   AgentStatus = "paused"
	AgentStatusArchived AgentStatus = "archived"
)

// Agent is a deployable agent template.
type Agent struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Status      AgentStatus `json:"status"`
	Config      AgentConfig `json:"config"`
	Skills      []Skill     `json:"skills,omitempty"`
	Tools       []string    `json:"tools,omitempty"`
	OwnerID     string      `json:"owner_id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// AgentConfig is the nested runtime configuration of an agent.
type AgentConfig struct {
	Model        string  `json:"model"`
	SystemPrompt string  `json:"system_prompt,omitempty"`
	Temperature  float64 `json:"temperature"`
	MaxSteps     int     `json:"max_steps"`
	MaxTokens    int     `json:"max_tokens"`
}

// Skill is a named capability an agent advertises.
type Skill struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Level       int    `json:"level"`
}

// WorkflowStatus enumerates workflow marketplace states.
type WorkflowStatus string

const (
	WorkflowStatusPublished WorkflowStatus = "published"
	WorkflowStatusBeta      WorkflowStatus = "beta"
	WorkflowStatusRetired   WorkflowStatus = "retired"
)

// Workflow is a published multi-step composition of agents and tools.
type Workflow struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Status      WorkflowStatus `json:"status"`
	Steps       []WorkflowStep `json:"steps"`
	Installs    int            `json:"installs"`
	Rating      float64        `json:"rating"`
	AuthorID    string         `json:"author_id"`
	CreatedAt   time.Time      `json:"created_at"`
}

// WorkflowStep is one node in a workflow graph.
type WorkflowStep struct {
	Name    string `json:"name"`
	AgentID string `json:"agent_id,omitempty"`
	Tool    string `json:"tool,omitempty"`
	Retries int    `json:"retries"`
}

// Tool is a marketplace tool listing.
type Tool struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Version     string    `json:"version"`
	Installs    int       `json:"installs"`
	Verified    bool      `json:"verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionKind enumerates billing/usage transaction kinds.
type TransactionKind string

const (
	TransactionKindUsage  TransactionKind = "usage"
	TransactionKindTopUp  TransactionKind = "topup"
	TransactionKindRefund TransactionKind = "refund"
)

// Transaction is a usage or billing ledger entry.
type Transaction struct {
	ID        string          `json:"id"`
	Kind      TransactionKind `json:"kind"`
	AgentID   string          `json:"agent_id,omitempty"`
	Tokens    int             `json:"tokens"`
	AmountUSD float64         `json:"amount_usd"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Prompt is a reusable prompt template.
type Prompt struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Body      string    `json:"body"`
	Variables []string  `json:"variables,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Model is an inference model available to agents.
type Model struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Provider      string  `json:"provider"`
	ContextWindow int     `json:"context_window"`
	InputPerMTok  float64 `json:"input_per_mtok"`
	OutputPerMTok float64 `json:"output_per_mtok"`
	Deprecated    bool    `json:"deprecated"`
}

// Secret is metadata about a stored credential. Values never leave the
// backend; only the reference is exchanged.
type Secret struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Scope     string    `json:"scope"`
	CreatedAt time.Time `json:"created_at"`
	LastUsed  time.Time `json:"last_used,omitempty"`
}

// UserRole enumerates dashboard roles.
type UserRole string

const (
	UserRoleOwner  UserRole = "owner"
	UserRoleEditor UserRole = "editor"
	UserRoleViewer UserRole = "viewer"
)

// User is a dashboard account.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Stat is one headline statistic on the dashboard landing view.
type Stat struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
	Delta float64 `json:"delta"`
}

// ActivityKind enumerates activity feed entry kinds.
type ActivityKind string

const (
	ActivityKindRun     ActivityKind = "run"
	ActivityKindInstall ActivityKind = "install"
	ActivityKindPublish ActivityKind = "publish"
	ActivityKindAlert   ActivityKind = "alert"
)

// Activity is one entry in the dashboard activity feed.
type Activity struct {
	ID        string       `json:"id"`
	Kind      ActivityKind `json:"kind"`
	Summary   string       `json:"summary"`
	ActorID   string       `json:"actor_id,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

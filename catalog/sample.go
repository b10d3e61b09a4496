package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Sample holds the compiled-in data the dashboard renders. A backend would
// normally supply this; until one is wired in, the fixtures below stand in
// for it so every view has something real to draw.
type Sample struct {
	Agents       []Agent
	Workflows    []Workflow
	Tools        []Tool
	Models       []Model
	Prompts      []Prompt
	Secrets      []Secret
	Users        []User
	Transactions []Transaction
	Stats        []Stat
	Activity     []Activity
}

func id() string { return uuid.NewString() }

// NewSample builds the static fixture set. IDs are fresh per process;
// everything else is deterministic.
func NewSample() Sample {
	now := time.Now().UTC()
	owner := User{ID: id(), Name: "Ada Park", Email: "ada@mesh.dev", Role: UserRoleOwner, CreatedAt: now.AddDate(0, -8, 0)}
	editor := User{ID: id(), Name: "Sam Reyes", Email: "sam@mesh.dev", Role: UserRoleEditor, CreatedAt: now.AddDate(0, -3, 0)}

	triage := Agent{
		ID: id(), Name: "Ticket Triage", Status: AgentStatusActive,
		Description: "Routes inbound support tickets to the right queue",
		Config:      AgentConfig{Model: "sonnet-4", Temperature: 0.2, MaxSteps: 12, MaxTokens: 4096},
		Skills:      []Skill{{Name: "classification", Level: 3}, {Name: "summarisation", Level: 2}},
		Tools:       []string{"http-fetch", "queue-publish"},
		OwnerID:     owner.ID, CreatedAt: now.AddDate(0, -5, 0), UpdatedAt: now.AddDate(0, 0, -2),
	}
	scraper := Agent{
		ID: id(), Name: "Docs Scraper", Status: AgentStatusActive,
		Description: "Crawls product docs and refreshes the knowledge base",
		Config:      AgentConfig{Model: "haiku-4", Temperature: 0.0, MaxSteps: 30, MaxTokens: 2048},
		Skills:      []Skill{{Name: "extraction", Level: 3}},
		Tools:       []string{"http-fetch", "markdown-clean"},
		OwnerID:     editor.ID, CreatedAt: now.AddDate(0, -2, 0), UpdatedAt: now.AddDate(0, 0, -9),
	}
	reviewer := Agent{
		ID: id(), Name: "PR Reviewer", Status: AgentStatusPaused,
		Description: "First-pass review comments on pull requests",
		Config:      AgentConfig{Model: "opus-4", Temperature: 0.4, MaxSteps: 8, MaxTokens: 8192},
		Skills:      []Skill{{Name: "code-review", Level: 2}},
		Tools:       []string{"git-diff"},
		OwnerID:     owner.ID, CreatedAt: now.AddDate(0, -1, 0), UpdatedAt: now.AddDate(0, 0, -1),
	}

	workflows := []Workflow{
		{
			ID: id(), Name: "Support Escalation", Status: WorkflowStatusPublished,
			Description: "Triage, summarise, and escalate unresolved tickets",
			Steps: []WorkflowStep{
				{Name: "triage", AgentID: triage.ID, Retries: 2},
				{Name: "summarise", AgentID: triage.ID},
				{Name: "notify", Tool: "queue-publish", Retries: 1},
			},
			Installs: 412, Rating: 4.6, AuthorID: owner.ID, CreatedAt: now.AddDate(0, -4, 0),
		},
		{
			ID: id(), Name: "Docs Refresh Nightly", Status: WorkflowStatusPublished,
			Description: "Scrape docs, diff against the KB, publish changes",
			Steps: []WorkflowStep{
				{Name: "crawl", AgentID: scraper.ID, Retries: 3},
				{Name: "publish", Tool: "kb-upsert"},
			},
			Installs: 188, Rating: 4.1, AuthorID: editor.ID, CreatedAt: now.AddDate(0, -2, 0),
		},
		{
			ID: id(), Name: "Release Notes Draft", Status: WorkflowStatusBeta,
			Description: "Draft release notes from merged pull requests",
			Steps: []WorkflowStep{
				{Name: "collect", Tool: "git-log"},
				{Name: "draft", AgentID: reviewer.ID},
			},
			Installs: 37, Rating: 3.9, AuthorID: owner.ID, CreatedAt: now.AddDate(0, 0, -20),
		},
	}

	tools := []Tool{
		{ID: id(), Name: "http-fetch", Category: "network", Version: "1.4.2", Installs: 2031, Verified: true, Description: "Fetch a URL with retries and caching", CreatedAt: now.AddDate(-1, 0, 0)},
		{ID: id(), Name: "queue-publish", Category: "messaging", Version: "0.9.0", Installs: 840, Verified: true, Description: "Publish a message to a mesh queue", CreatedAt: now.AddDate(0, -7, 0)},
		{ID: id(), Name: "markdown-clean", Category: "text", Version: "2.1.0", Installs: 655, Verified: false, Description: "Normalise scraped HTML into markdown", CreatedAt: now.AddDate(0, -6, 0)},
		{ID: id(), Name: "git-diff", Category: "dev", Version: "1.0.3", Installs: 510, Verified: true, Description: "Structured diff of a pull request", CreatedAt: now.AddDate(0, -3, 0)},
		{ID: id(), Name: "kb-upsert", Category: "storage", Version: "0.5.1", Installs: 122, Verified: false, Description: "Upsert documents into the knowledge base", CreatedAt: now.AddDate(0, -1, 0)},
	}

	models := []Model{
		{ID: "opus-4", Name: "Opus 4", Provider: "anthropic", ContextWindow: 200_000, InputPerMTok: 15, OutputPerMTok: 75},
		{ID: "sonnet-4", Name: "Sonnet 4", Provider: "anthropic", ContextWindow: 200_000, InputPerMTok: 3, OutputPerMTok: 15},
		{ID: "haiku-4", Name: "Haiku 4", Provider: "anthropic", ContextWindow: 200_000, InputPerMTok: 0.8, OutputPerMTok: 4},
		{ID: "gpt-4o", Name: "GPT-4o", Provider: "openai", ContextWindow: 128_000, InputPerMTok: 2.5, OutputPerMTok: 10},
		{ID: "gemini-2-flash", Name: "Gemini 2 Flash", Provider: "google", ContextWindow: 1_000_000, InputPerMTok: 0.1, OutputPerMTok: 0.4},
		{ID: "claude-2", Name: "Claude 2", Provider: "anthropic", ContextWindow: 100_000, InputPerMTok: 8, OutputPerMTok: 24, Deprecated: true},
	}

	prompts := []Prompt{
		{ID: id(), Name: "triage-system", Body: "You route support tickets. Categories: {{categories}}.", Variables: []string{"categories"}, UpdatedAt: now.AddDate(0, 0, -4)},
		{ID: id(), Name: "release-notes", Body: "Summarise the following merged PRs for {{audience}}.", Variables: []string{"audience"}, UpdatedAt: now.AddDate(0, 0, -12)},
	}

	secrets := []Secret{
		{ID: id(), Name: "anthropic-api-key", Scope: "org", CreatedAt: now.AddDate(0, -8, 0), LastUsed: now.AddDate(0, 0, -1)},
		{ID: id(), Name: "github-token", Scope: "workflow:release-notes", CreatedAt: now.AddDate(0, -1, 0), LastUsed: now.AddDate(0, 0, -3)},
	}

	transactions := []Transaction{
		{ID: id(), Kind: TransactionKindTopUp, AmountUSD: 250, Note: "monthly credit", CreatedAt: now.AddDate(0, 0, -14)},
		{ID: id(), Kind: TransactionKindUsage, AgentID: triage.ID, Tokens: 1_240_000, AmountUSD: -18.60, CreatedAt: now.AddDate(0, 0, -6)},
		{ID: id(), Kind: TransactionKindUsage, AgentID: scraper.ID, Tokens: 3_900_000, AmountUSD: -7.80, CreatedAt: now.AddDate(0, 0, -3)},
		{ID: id(), Kind: TransactionKindRefund, AmountUSD: 4.20, Note: "failed runs 02/08", CreatedAt: now.AddDate(0, 0, -2)},
	}

	stats := []Stat{
		{Label: "Active agents", Value: 2, Delta: 0},
		{Label: "Runs (7d)", Value: 1382, Delta: 12.4},
		{Label: "Success rate", Value: 97.1, Unit: "%", Delta: 0.6},
		{Label: "Tokens (7d)", Value: 5.1, Unit: "M", Delta: -3.2},
		{Label: "Spend (7d)", Value: 26.4, Unit: "$", Delta: 4.8},
	}

	activity := []Activity{
		{ID: id(), Kind: ActivityKindRun, Summary: "Ticket Triage handled 214 tickets", ActorID: triage.ID, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: id(), Kind: ActivityKindInstall, Summary: "Support Escalation installed by acme-corp", CreatedAt: now.Add(-5 * time.Hour)},
		{ID: id(), Kind: ActivityKindPublish, Summary: "markdown-clean 2.1.0 published", ActorID: editor.ID, CreatedAt: now.Add(-26 * time.Hour)},
		{ID: id(), Kind: ActivityKindAlert, Summary: "PR Reviewer paused: budget threshold reached", ActorID: reviewer.ID, CreatedAt: now.Add(-30 * time.Hour)},
		{ID: id(), Kind: ActivityKindRun, Summary: "Docs Refresh Nightly completed in 4m12s", ActorID: scraper.ID, CreatedAt: now.Add(-31 * time.Hour)},
	}

	return Sample{
		Agents:       []Agent{triage, scraper, reviewer},
		Workflows:    workflows,
		Tools:        tools,
		Models:       models,
		Prompts:      prompts,
		Secrets:      secrets,
		Users:        []User{owner, editor},
		Transactions: transactions,
		Stats:        stats,
		Activity:     activity,
	}
}

// AgentByID returns the agent with the given ID, if present.
func (s Sample) AgentByID(agentID string) (Agent, bool) {
	for _, a := range s.Agents {
		if a.ID == agentID {
			return a, true
		}
	}
	return Agent{}, false
}

// ModelByID returns the model with the given ID, if present.
func (s Sample) ModelByID(modelID string) (Model, bool) {
	for _, m := range s.Models {
		if m.ID == modelID {
			return m, true
		}
	}
	return Model{}, false
}

// ActiveAgents counts agents in the active state.
func (s Sample) ActiveAgents() int {
	n := 0
	for _, a := range s.Agents {
		if a.Status == AgentStatusActive {
			n++
		}
	}
	return n
}

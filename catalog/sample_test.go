package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSampleIsInternallyConsistent(t *testing.T) {
	s := NewSample()

	require.NotEmpty(t, s.Agents)
	require.NotEmpty(t, s.Workflows)
	require.NotEmpty(t, s.Tools)
	require.NotEmpty(t, s.Stats)
	require.NotEmpty(t, s.Activity)

	toolNames := make(map[string]bool, len(s.Tools))
	for _, tool := range s.Tools {
		toolNames[tool.Name] = true
	}
	for _, a := range s.Agents {
		_, ok := s.ModelByID(a.Config.Model)
		assert.True(t, ok, "agent %s references unknown model %s", a.Name, a.Config.Model)
		for _, tool := range a.Tools {
			assert.True(t, toolNames[tool], "agent %s references unknown tool %s", a.Name, tool)
		}
	}
	for _, w := range s.Workflows {
		for _, step := range w.Steps {
			if step.AgentID == "" {
				continue
			}
			_, ok := s.AgentByID(step.AgentID)
			assert.True(t, ok, "workflow %s step %s references unknown agent", w.Name, step.Name)
		}
	}
}

func TestSampleIDsAreUnique(t *testing.T) {
	s := NewSample()
	seen := make(map[string]bool)
	for _, a := range s.Agents {
		require.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
	for _, w := range s.Workflows {
		require.False(t, seen[w.ID], "duplicate id %s", w.ID)
		seen[w.ID] = true
	}
	for _, tool := range s.Tools {
		require.False(t, seen[tool.ID], "duplicate id %s", tool.ID)
		seen[tool.ID] = true
	}
}

func TestActiveAgentsCountsOnlyActive(t *testing.T) {
	s := NewSample()
	active := 0
	for _, a := range s.Agents {
		if a.Status == AgentStatusActive {
			active++
		}
	}
	assert.Equal(t, active, s.ActiveAgents())
	assert.Greater(t, active, 0)
}

func TestAgentLookupMiss(t *testing.T) {
	s := NewSample()
	_, ok := s.AgentByID("missing")
	assert.False(t, ok)
}

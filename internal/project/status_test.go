package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ali44ashhad/contractor/internal/project"
)

func TestIsAllowedStatusTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"planning to in progress", project.StatusPlanning, project.StatusInProgress, true},
		{"planning to cancelled", project.StatusPlanning, project.StatusCancelled, true},
		{"planning cannot complete directly", project.StatusPlanning, project.StatusCompleted, false},
		{"planning cannot hold", project.StatusPlanning, project.StatusOnHold, false},
		{"in progress to on hold", project.StatusInProgress, project.StatusOnHold, true},
		{"in progress to completed", project.StatusInProgress, project.StatusCompleted, true},
		{"in progress to cancelled", project.StatusInProgress, project.StatusCancelled, true},
		{"in progress cannot go back to planning", project.StatusInProgress, project.StatusPlanning, false},
		{"on hold resumes", project.StatusOnHold, project.StatusInProgress, true},
		{"on hold to cancelled", project.StatusOnHold, project.StatusCancelled, true},
		{"on hold cannot complete directly", project.StatusOnHold, project.StatusCompleted, false},
		{"completed is terminal", project.StatusCompleted, project.StatusInProgress, false},
		{"cancelled is terminal", project.StatusCancelled, project.StatusPlanning, false},
		{"same status is not a transition", project.StatusInProgress, project.StatusInProgress, false},
		{"unknown from", "DRAFT", project.StatusInProgress, false},
		{"unknown to", project.StatusPlanning, "DRAFT", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, project.IsAllowedStatusTransition(tt.from, tt.to))
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{
		project.StatusPlanning,
		project.StatusInProgress,
		project.StatusOnHold,
		project.StatusCompleted,
		project.StatusCancelled,
	} {
		assert.True(t, project.IsValidStatus(status), status)
	}
	assert.False(t, project.IsValidStatus("planning"))
	assert.False(t, project.IsValidStatus(""))
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, project.IsTerminalStatus(project.StatusCompleted))
	assert.True(t, project.IsTerminalStatus(project.StatusCancelled))
	assert.False(t, project.IsTerminalStatus(project.StatusInProgress))
	assert.False(t, project.IsTerminalStatus(project.StatusOnHold))
}

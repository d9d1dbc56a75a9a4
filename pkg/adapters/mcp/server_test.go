package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/winnow"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	eng, err := winnow.New("", winnow.WithWords([]domain.Word{"crane", "crate", "slate"}))
	require.NoError(t, err)
	return NewServer(eng)
}

func TestHandleEvaluate(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.handleEvaluate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"guess":    "slate",
		"solution": "crate",
	})
	require.NoError(t, err)
	assert.Equal(t, "aaccc", resp.Feedback)
	assert.Equal(t, "__ATE", resp.Notation)
	assert.False(t, resp.AllCorrect)

	_, err = s.handleEvaluate(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"guess":    "xy",
		"solution": "crate",
	})
	assert.Error(t, err)
}

func TestHandleSuggest(t *testing.T) {
	s := newTestServer(t)

	advice, err := s.handleSuggest(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, 3, advice.Remaining)

	advice, err = s.handleSuggest(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"steps": `[{"guess":"crane","feedback":"cccac"}]`,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Word("crate"), advice.Guess)
	assert.Equal(t, 1, advice.Remaining)

	_, err = s.handleSuggest(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"steps": "not json",
	})
	assert.Error(t, err)
}

func TestHandleSolve(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.handleSolve(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"solution": "crate",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWon, resp.Outcome)
	assert.Equal(t, domain.Word("crate"), resp.FinalGuess)
	assert.Empty(t, resp.Reason)

	// Omitting the solution still plays a full game.
	resp, err = s.handleSolve(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWon, resp.Outcome)
}

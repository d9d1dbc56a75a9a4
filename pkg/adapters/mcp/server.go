// Package mcp exposes the solver to agent tooling over the Model Context
// Protocol.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/winnow"
	"github.com/aretw0/winnow/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Engine defines the solver surface required by the MCP server.
type Engine interface {
	Letters() int
	Words() []domain.Word
	RandomSolution() domain.Word
	Solve(ctx context.Context, solution string) (*domain.Result, error)
	Advise(ctx context.Context, steps []domain.Step) (*domain.Advice, error)
}

// EvaluateResponse reports the feedback one guess earns against a solution.
type EvaluateResponse struct {
	Feedback   string `json:"feedback" jsonschema_description:"Per-position marks: c correct, p present, a absent"`
	Notation   string `json:"notation" jsonschema_description:"Display form: upper-case correct, lower-case present, underscore absent"`
	AllCorrect bool   `json:"all_correct" jsonschema_description:"True when the guess is the solution"`
}

// SolveResponse reports a finished game.
type SolveResponse struct {
	Outcome    domain.Status  `json:"outcome" jsonschema_description:"Terminal status: won or lost"`
	Guesses    []domain.Word  `json:"guesses" jsonschema_description:"Words played, in order"`
	FinalGuess domain.Word    `json:"final_guess,omitempty" jsonschema_description:"Last word played"`
	History    domain.History `json:"history" jsonschema_description:"Per-guess feedback and surviving candidate counts"`
	Reason     string         `json:"reason,omitempty" jsonschema_description:"Why the game failed, when it ended through an error"`
}

// Server wraps the winnow Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("winnow-mcp", strings.TrimSpace(winnow.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: evaluate_guess
	evaluateTool := mcp.NewTool("evaluate_guess",
		mcp.WithDescription("Score a guess against a known solution and return the per-position feedback."),
		mcp.WithString("guess", mcp.Required(), mcp.Description("The word that was guessed")),
		mcp.WithString("solution", mcp.Required(), mcp.Description("The hidden word to score against")),
		mcp.WithOutputSchema[EvaluateResponse](),
	)
	s.mcpServer.AddTool(evaluateTool, mcp.NewStructuredToolHandler(s.handleEvaluate))

	// TOOL: suggest_guess
	suggestTool := mcp.NewTool("suggest_guess",
		mcp.WithDescription("Recommend the next guess for a game in progress, given the rounds observed so far."),
		mcp.WithString("steps", mcp.Description(`JSON array of observed rounds, e.g. [{"guess":"slate","feedback":"aacac"}] (optional)`)),
		mcp.WithOutputSchema[domain.Advice](),
	)
	s.mcpServer.AddTool(suggestTool, mcp.NewStructuredToolHandler(s.handleSuggest))

	// TOOL: solve_game
	solveTool := mcp.NewTool("solve_game",
		mcp.WithDescription("Play a full game against a solution and return every guess made. Omitting the solution picks a random word."),
		mcp.WithString("solution", mcp.Description("The hidden word to solve for (optional)")),
		mcp.WithOutputSchema[SolveResponse](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))
}

// Handler methods for structured tools

func (s *Server) handleEvaluate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (EvaluateResponse, error) {
	raw, _ := args["guess"].(string)
	guess, err := domain.ParseWord(raw, s.engine.Letters())
	if err != nil {
		return EvaluateResponse{}, fmt.Errorf("invalid guess: %w", err)
	}

	raw, _ = args["solution"].(string)
	solution, err := domain.ParseWord(raw, s.engine.Letters())
	if err != nil {
		return EvaluateResponse{}, fmt.Errorf("invalid solution: %w", err)
	}

	feedback, err := domain.Evaluate(guess, solution)
	if err != nil {
		return EvaluateResponse{}, fmt.Errorf("evaluate failed: %w", err)
	}

	return EvaluateResponse{
		Feedback:   feedback.Letters(),
		Notation:   feedback.Notation(guess),
		AllCorrect: feedback.AllCorrect(),
	}, nil
}

func (s *Server) handleSuggest(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Advice, error) {
	var steps []domain.Step
	if stepsStr, ok := args["steps"].(string); ok && stepsStr != "" {
		if err := json.Unmarshal([]byte(stepsStr), &steps); err != nil {
			return domain.Advice{}, fmt.Errorf("invalid steps: %w", err)
		}
	}

	advice, err := s.engine.Advise(ctx, steps)
	if err != nil {
		return domain.Advice{}, fmt.Errorf("advise failed: %w", err)
	}
	return *advice, nil
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SolveResponse, error) {
	solution, _ := args["solution"].(string)
	if solution == "" {
		solution = string(s.engine.RandomSolution())
	}

	result, err := s.engine.Solve(ctx, solution)
	if err != nil {
		return SolveResponse{}, fmt.Errorf("solve failed: %w", err)
	}

	resp := SolveResponse{
		Outcome:    result.Outcome,
		Guesses:    result.GuessesMade,
		FinalGuess: result.FinalGuess,
		History:    result.History,
	}
	if result.Reason != nil {
		resp.Reason = result.Reason.Error()
	}
	return resp, nil
}

func (s *Server) registerResources() {
	// EXPOSE: winnow://words
	s.mcpServer.AddResource(mcp.NewResource("winnow://words", "Accepted Word List",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Words())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal word list: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "winnow://words",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}

// Package dto holds the loosely-typed request shapes of the dashboard
// API, decoded leniently so hand-written clients are forgiven their types.
package dto

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// SessionOptions carries the knobs a client may send when creating a
// game. Zero values fall back to the server defaults.
type SessionOptions struct {
	// Solution fixes the hidden word; empty lets the server pick one.
	Solution string `json:"solution" mapstructure:"solution"`

	// Guesses overrides the guess limit.
	Guesses int `json:"guesses" mapstructure:"guesses"`

	// Pool selects the guess pool: "candidates" or "dictionary".
	Pool string `json:"pool" mapstructure:"pool"`

	// Opening fixes the first guess.
	Opening string `json:"opening" mapstructure:"opening"`

	// Assist starts a game without a solution; the client supplies
	// observed feedback for each guess.
	Assist bool `json:"assist" mapstructure:"assist"`
}

// DecodeSessionOptions converts a loosely-typed argument map (MCP tool
// arguments, decoded JSON) into SessionOptions. Numbers arriving as
// float64 or strings are accepted.
func DecodeSessionOptions(input map[string]any) (*SessionOptions, error) {
	var opts SessionOptions
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build options decoder: %w", err)
	}
	if err := decoder.Decode(input); err != nil {
		return nil, fmt.Errorf("failed to decode session options: %w", err)
	}
	return &opts, nil
}

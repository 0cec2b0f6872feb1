package ai

import (
	"context"
)

// Generator sends a prompt to a text-generation model and returns its raw reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

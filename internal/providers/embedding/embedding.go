package embedding

import (
	"context"
	"fmt"
	"strings"
)

type Provider interface {
	// Embed returns a fixed-dimension vector for the input text.
	Embed(ctx context.Context, input string) ([]float32, error)
	Close() error
}

// BuildInput concatenates the profile fields into the canonical embedding
// input. Previously indexed vectors were produced from this exact
// template; changing it silently invalidates similarity comparisons.
func BuildInput(bio, goals string, techStack []string) string {
	return fmt.Sprintf("%s. Goals: %s. Tech Stack: %s", bio, goals, strings.Join(techStack, ", "))
}

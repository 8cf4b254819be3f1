package embedding

import (
	"context"
	"fmt"

	"career-intel/internal/domain/profile"
)

// Provider is the black-box embedding backend: one vector per input
// string, all vectors of length Dimension. Implementations are injected
// so tests can substitute a deterministic backend.
type Provider interface {
	Dimension() int
	Encode(ctx context.Context, texts []string) ([][]float64, error)
}

// EmbedMany maps a skill token list to one vector: the arithmetic mean of
// the per-token embeddings. Empty input returns the zero vector of the
// provider's dimensionality without invoking the backend, whose behavior
// on empty input is undefined. A backend failure is returned as-is; it is
// a configuration problem for the caller, never silently defaulted.
func EmbedMany(ctx context.Context, p Provider, tokens []string) (profile.Vector, error) {
	if len(tokens) == 0 {
		return profile.ZeroVector(p.Dimension()), nil
	}

	rows, err := p.Encode(ctx, tokens)
	if err != nil {
		return nil, fmt.Errorf("embedding backend: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("embedding backend: no vectors for %d tokens", len(tokens))
	}

	dim := p.Dimension()
	mean := make(profile.Vector, dim)
	for _, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("embedding backend: got %d-dim vector, want %d", len(row), dim)
		}
		for i, v := range row {
			mean[i] += v
		}
	}
	n := float64(len(rows))
	for i := range mean {
		mean[i] /= n
	}
	return mean, nil
}

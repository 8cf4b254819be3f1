package embedding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultEmbedModel = "gemini-embedding-001"

// Gemini backs the Provider interface with the Gemini embedding API. The
// output dimensionality is fixed at construction and must match the
// dimensionality of any previously trained artifacts.
type Gemini struct {
	client    *genai.Client
	modelName string
	dim       int
}

// NewGemini builds the Gemini embedding backend. A missing API key or an
// unreachable backend is a fatal configuration error for the caller.
func NewGemini(ctx context.Context, apiKey, model string, dim int) (*Gemini, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if dim <= 0 {
		return nil, fmt.Errorf("invalid embedding dimension %d", dim)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultEmbedModel
	}

	return &Gemini{client: client, modelName: model, dim: dim}, nil
}

func (g *Gemini) Dimension() int {
	if g == nil {
		return 0
	}
	return g.dim
}

// Encode embeds each text as its own content so every skill token gets an
// independent vector.
func (g *Gemini) Encode(ctx context.Context, texts []string) ([][]float64, error) {
	if g == nil || g.client == nil {
		return nil, errors.New("gemini embedder is not initialized")
	}

	contents := make([]*genai.Content, 0, len(texts))
	for _, t := range texts {
		contents = append(contents, genai.Text(t)...)
	}

	cfg := &genai.EmbedContentConfig{
		OutputDimensionality: genai.Ptr(int32(g.dim)),
	}
	resp, err := g.client.Models.EmbedContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if resp == nil || len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embed content: expected %d embeddings, got %d", len(texts), embeddingCount(resp))
	}

	out := make([][]float64, 0, len(resp.Embeddings))
	for _, e := range resp.Embeddings {
		if e == nil || len(e.Values) != g.dim {
			return nil, fmt.Errorf("embed content: got %d-dim embedding, want %d", embeddingLen(e), g.dim)
		}
		row := make([]float64, g.dim)
		for i, v := range e.Values {
			row[i] = float64(v)
		}
		out = append(out, row)
	}
	return out, nil
}

func embeddingCount(resp *genai.EmbedContentResponse) int {
	if resp == nil {
		return 0
	}
	return len(resp.Embeddings)
}

func embeddingLen(e *genai.ContentEmbedding) int {
	if e == nil {
		return 0
	}
	return len(e.Values)
}

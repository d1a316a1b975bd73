package knowledgebase

import (
	"checkups/pkg/domain"
	"checkups/pkg/logger"
	"checkups/pkg/serrors"
	"checkups/pkg/upstream"
	"context"

	"go.uber.org/zap"
)

// Generator produces free text for a prompt.
//
//go:generate mockgen -package mockknowledgebase -source=engine.go -destination=mock/mockknowledgebase.go *
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Engine answers queries with a Generator and fulfills upstream.Client.
type Engine struct {
	generator Generator
}

// Ensure Engine conforms to the upstream.Client interface at compile time.
var _ upstream.Client = (*Engine)(nil)

// NewEngine returns an Engine backed by generator.
func NewEngine(generator Generator) *Engine {
	return &Engine{generator: generator}
}

// Search prompts the generator with the enhanced query and parses the answer.
// An answer without recognizable packages still yields one fallback package.
func (e *Engine) Search(ctx context.Context, query domain.Query) (domain.SearchResult, error) {
	answer, err := e.generator.Generate(ctx, EnhanceQuery(query))
	if err != nil {
		return domain.SearchResult{}, serrors.Wrap(serrors.ErrBadGateway, err, "could not generate answer")
	}

	packages := ParseAnswer(answer)
	logger.Debug(ctx, "parsed generated answer",
		zap.Int("answer_bytes", len(answer)),
		zap.Int("packages", len(packages)))

	return domain.Success(packages...), nil
}

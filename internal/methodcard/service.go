package methodcard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/professor-curador/curador-lambda/internal/config"
	"github.com/professor-curador/curador-lambda/internal/gemini"
)

var ErrInvalidCardType = errors.New("tipo de method card inválido")

type Service interface {
	GeneratePrompt(ctx context.Context, req PromptRequest) (*PromptResponse, error)
}

type service struct {
	provider gemini.Provider
}

func NewService(provider gemini.Provider) Service {
	return &service{provider: provider}
}

func (s *service) GeneratePrompt(ctx context.Context, req PromptRequest) (*PromptResponse, error) {
	log := config.WithContext(ctx)

	system, user, ok := BuildPrompt(req)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCardType, req.MethodCardType)
	}

	content, err := s.provider.Generate(ctx, system, user)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar prompt do method card %s: %w", req.MethodCardType, err)
	}

	log.WithField("method_card_type", req.MethodCardType).
		WithField("subtopic_id", req.SubtopicID).
		Info("Prompt de method card gerado com sucesso")

	return &PromptResponse{
		SubtopicID:     req.SubtopicID,
		MethodCardType: req.MethodCardType,
		Prompt:         strings.TrimSpace(content),
	}, nil
}

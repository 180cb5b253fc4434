package curriculum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/professor-curador/curador-lambda/internal/config"
	"github.com/professor-curador/curador-lambda/internal/gemini"
	"github.com/professor-curador/curador-lambda/internal/research"
	util "github.com/professor-curador/curador-lambda/internal/utils"
)

var ErrNoJSONFound = errors.New("não foi possível encontrar JSON na resposta do modelo")

type Service interface {
	GenerateCurriculum(ctx context.Context, topic string, sources []research.Source) (*GenerateResponse, error)
}

type service struct {
	provider gemini.Provider
}

func NewService(provider gemini.Provider) Service {
	return &service{provider: provider}
}

// cardSeed é o formato que o modelo devolve; ids e ordem são cunhados aqui,
// não pelo modelo.
type cardSeed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *service) GenerateCurriculum(ctx context.Context, topic string, sources []research.Source) (*GenerateResponse, error) {
	log := config.WithContext(ctx)

	content, err := s.provider.Generate(ctx, systemPrompt, BuildUserPrompt(topic, sources))
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar sub-tópicos: %w", err)
	}

	span, ok := util.ExtractJSONObject(content)
	if !ok {
		log.Errorf("Resposta do modelo sem JSON: %.200s", content)
		return nil, ErrNoJSONFound
	}

	var seeds struct {
		Block1 []cardSeed `json:"block1"`
		Block2 []cardSeed `json:"block2"`
	}
	if err := json.Unmarshal([]byte(span), &seeds); err != nil {
		log.WithError(err).Errorf("JSON do currículo inválido: %.200s", span)
		return nil, fmt.Errorf("erro ao analisar JSON do currículo: %w", err)
	}

	result := &GenerateResponse{
		Block1: mintCards(BlockFundamentals, seeds.Block1),
		Block2: mintCards(BlockAdvanced, seeds.Block2),
	}

	log.WithField("block1", len(result.Block1)).
		WithField("block2", len(result.Block2)).
		Info("Currículo gerado com sucesso")
	return result, nil
}

// mintCards atribui ids sequenciais "<bloco>-<índice>" e a ordem densa que o
// cliente espera na geração inicial.
func mintCards(blockID string, seeds []cardSeed) []Card {
	cards := make([]Card, 0, len(seeds))
	for i, seed := range seeds {
		title := seed.Title
		if title == "" {
			title = fmt.Sprintf("Habilidade %d", i+1)
		}
		cards = append(cards, Card{
			ID:          fmt.Sprintf("%s-%d", blockID, i),
			Title:       title,
			Description: seed.Description,
			Order:       i,
		})
	}
	return cards
}

package chatbot

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/professor-curador/curador-lambda/internal/config"
	"github.com/professor-curador/curador-lambda/internal/curriculum"
	"github.com/professor-curador/curador-lambda/internal/gemini"
	util "github.com/professor-curador/curador-lambda/internal/utils"
)

const feedbackCount = 3

var genericFeedbackQuestions = []string{
	"As mudanças atendem às suas expectativas?",
	"Há algo que você gostaria de ajustar ou melhorar?",
	"Precisa de mais alguma modificação no currículo?",
}

type Service interface {
	HandleTurn(ctx context.Context, req TurnRequest) (*TurnResponse, error)
}

type service struct {
	provider gemini.Provider
}

func NewService(provider gemini.Provider) Service {
	return &service{provider: provider}
}

// HandleTurn interpreta o comando, aplica as ações ao currículo recebido e
// gera as perguntas de feedback. Só a falha do oráculo vira erro; um lote
// que não deu para estruturar degrada para "nenhuma mudança".
func (s *service) HandleTurn(ctx context.Context, req TurnRequest) (*TurnResponse, error) {
	log := config.WithContext(ctx)

	actions, err := s.parseCommand(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("erro ao parsear comando: %w", err)
	}
	log.WithField("actions", len(actions)).Info("Comando interpretado")

	applied := curriculum.Apply(req.Curriculum, actions)

	response := &TurnResponse{
		Actions:    actions,
		Curriculum: &applied,
	}
	if len(actions) > 0 {
		response.FeedbackQuestions = s.feedbackQuestions(ctx, actions, req.Topic)
	}
	return response, nil
}

func (s *service) parseCommand(ctx context.Context, req TurnRequest) ([]curriculum.Action, error) {
	log := config.WithContext(ctx)

	content, err := s.provider.Generate(ctx, commandSystemPrompt, BuildCommandPrompt(req))
	if err != nil {
		return nil, err
	}

	span, ok := util.ExtractJSONArray(content)
	if !ok {
		log.Warnf("Resposta do modelo sem array de ações: %.200s", content)
		return []curriculum.Action{}, nil
	}

	return curriculum.DecodeActions([]byte(span)), nil
}

// feedbackQuestions devolve sempre exatamente 3 perguntas: completa listas
// curtas com uma pergunta genérica e cai no conjunto fixo quando o modelo
// falha. Feedback nunca derruba o turno.
func (s *service) feedbackQuestions(ctx context.Context, actions []curriculum.Action, topic string) []string {
	log := config.WithContext(ctx)

	content, err := s.provider.Generate(ctx, feedbackSystemPrompt, BuildFeedbackPrompt(actions, topic))
	if err != nil {
		log.WithError(err).Warn("Falha ao gerar perguntas de feedback; usando perguntas genéricas")
		return append([]string(nil), genericFeedbackQuestions...)
	}

	span, ok := util.ExtractJSONArray(content)
	if !ok {
		return append([]string(nil), genericFeedbackQuestions...)
	}

	var questions []string
	if err := json.Unmarshal([]byte(span), &questions); err != nil || len(questions) == 0 {
		return append([]string(nil), genericFeedbackQuestions...)
	}

	for len(questions) < feedbackCount {
		questions = append(questions, "Há algo mais que você gostaria de ajustar no currículo?")
	}
	return questions[:feedbackCount]
}

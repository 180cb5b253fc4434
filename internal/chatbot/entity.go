package chatbot

import (
	"github.com/professor-curador/curador-lambda/internal/curriculum"
	"github.com/professor-curador/curador-lambda/internal/research"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type TurnRequest struct {
	Message         string                `json:"message"`
	Topic           string                `json:"topic,omitempty"`
	ResearchSources []research.Source     `json:"research_sources,omitempty"`
	Curriculum      curriculum.Curriculum `json:"curriculum"`
	ChatHistory     []ChatMessage         `json:"chat_history,omitempty"`
}

// TurnResponse devolve as ações interpretadas e o currículo já com elas
// aplicadas; o cliente substitui o estado local pelo retornado.
type TurnResponse struct {
	Actions           []curriculum.Action    `json:"actions"`
	Curriculum        *curriculum.Curriculum `json:"curriculum,omitempty"`
	Message           string                 `json:"message,omitempty"`
	Error             string                 `json:"error,omitempty"`
	FeedbackQuestions []string               `json:"feedback_questions,omitempty"`
}

package container

import (
	"context"

	"github.com/professor-curador/curador-lambda/internal/chatbot"
	"github.com/professor-curador/curador-lambda/internal/config"
	"github.com/professor-curador/curador-lambda/internal/curriculum"
	"github.com/professor-curador/curador-lambda/internal/gemini"
	"github.com/professor-curador/curador-lambda/internal/methodcard"
	"github.com/professor-curador/curador-lambda/internal/research"
)

type Container struct {
	ResearchContainer   *research.ResearchContainer
	CurriculumContainer *curriculum.CurriculumContainer
	MethodCardContainer *methodcard.MethodCardContainer
	ChatbotContainer    *chatbot.ChatbotContainer
}

func New() *Container {
	config.Init()

	provider := gemini.NewProvider(context.Background())

	return &Container{
		ResearchContainer:   research.NewResearchContainer(provider),
		CurriculumContainer: curriculum.NewCurriculumContainer(provider),
		MethodCardContainer: methodcard.NewMethodCardContainer(provider),
		ChatbotContainer:    chatbot.NewChatbotContainer(provider),
	}
}

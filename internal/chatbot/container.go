package chatbot

import "github.com/professor-curador/curador-lambda/internal/gemini"

type ChatbotContainer struct {
	Service Service
	Handler *Handler
}

func NewChatbotContainer(provider gemini.Provider) *ChatbotContainer {
	service := NewService(provider)
	handler := NewHandler(service)

	return &ChatbotContainer{
		Service: service,
		Handler: handler,
	}
}

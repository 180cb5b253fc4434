package research

import "github.com/professor-curador/curador-lambda/internal/gemini"

type ResearchContainer struct {
	Service Service
	Handler *Handler
}

func NewResearchContainer(provider gemini.Provider) *ResearchContainer {
	service := NewService(provider)
	handler := NewHandler(service)

	return &ResearchContainer{
		Service: service,
		Handler: handler,
	}
}

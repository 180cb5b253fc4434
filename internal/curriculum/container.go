package curriculum

import "github.com/professor-curador/curador-lambda/internal/gemini"

type CurriculumContainer struct {
	Service Service
	Handler *Handler
}

func NewCurriculumContainer(provider gemini.Provider) *CurriculumContainer {
	service := NewService(provider)
	handler := NewHandler(service)

	return &CurriculumContainer{
		Service: service,
		Handler: handler,
	}
}

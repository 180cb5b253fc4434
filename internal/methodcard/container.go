package methodcard

import "github.com/professor-curador/curador-lambda/internal/gemini"

type MethodCardContainer struct {
	Service Service
	Handler *Handler
}

func NewMethodCardContainer(provider gemini.Provider) *MethodCardContainer {
	service := NewService(provider)
	handler := NewHandler(service)

	return &MethodCardContainer{
		Service: service,
		Handler: handler,
	}
}

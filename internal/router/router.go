package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/professor-curador/curador-lambda/internal/chatbot"
	"github.com/professor-curador/curador-lambda/internal/curriculum"
	"github.com/professor-curador/curador-lambda/internal/methodcard"
	"github.com/professor-curador/curador-lambda/internal/middlewares"
	"github.com/professor-curador/curador-lambda/internal/research"
)

type RouterConfig struct {
	ResearchHandler   *research.Handler
	CurriculumHandler *curriculum.Handler
	MethodCardHandler *methodcard.Handler
	ChatbotHandler    *chatbot.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/research", research.Routes(cfg.ResearchHandler))
		r.Mount("/generate-curriculum", curriculum.Routes(cfg.CurriculumHandler))
		r.Mount("/generate-method-card-prompt", methodcard.Routes(cfg.MethodCardHandler))
		r.Mount("/chatbot", chatbot.Routes(cfg.ChatbotHandler))
	})

	return r
}

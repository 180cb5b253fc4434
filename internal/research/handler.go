package research

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/professor-curador/curador-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ResearchTopic(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req TopicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para pesquisa")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Topic) == "" {
		log.Warn("Pesquisa sem tópico")
		http.Error(w, "topic is required", http.StatusBadRequest)
		return
	}

	sources, err := h.service.ResearchTopic(r.Context(), req.Topic)
	if err != nil {
		log.WithError(err).Error("Erro ao pesquisar fontes do tópico")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, SourcesResponse{Sources: sources})
}

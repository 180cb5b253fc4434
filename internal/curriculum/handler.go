package curriculum

import (
	"encoding/json"
	"errors"
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

func (h *Handler) GenerateCurriculum(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para gerar currículo")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Currículo já montado pelo cliente volta como está.
	if len(req.Block1) > 0 || len(req.Block2) > 0 {
		config.JSON(w, http.StatusOK, GenerateResponse{Block1: req.Block1, Block2: req.Block2})
		return
	}

	if strings.TrimSpace(req.Topic) == "" {
		log.Warn("Geração de currículo sem tópico")
		http.Error(w, "topic is required", http.StatusBadRequest)
		return
	}

	result, err := h.service.GenerateCurriculum(r.Context(), req.Topic, req.ResearchSources)
	if err != nil {
		log.WithError(err).Error("Erro ao gerar currículo")
		if errors.Is(err, ErrNoJSONFound) {
			http.Error(w, "model response did not contain a curriculum", http.StatusInternalServerError)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

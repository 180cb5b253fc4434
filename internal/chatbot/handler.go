package chatbot

import (
	"encoding/json"
	"net/http"

	"github.com/professor-curador/curador-lambda/internal/config"
	"github.com/professor-curador/curador-lambda/internal/curriculum"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) HandleTurn(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para o chatbot")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.HandleTurn(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Erro ao processar turno do chatbot")
		config.JSON(w, http.StatusInternalServerError, TurnResponse{
			Actions: []curriculum.Action{},
			Error:   err.Error(),
		})
		return
	}

	config.JSON(w, http.StatusOK, response)
}

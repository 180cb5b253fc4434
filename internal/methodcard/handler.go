package methodcard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/professor-curador/curador-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GeneratePrompt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req PromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Corpo da requisição inválido para method card")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if !req.MethodCardType.Valid() {
		log.Warnf("Tipo de method card inválido: %s", req.MethodCardType)
		http.Error(w, "invalid method_card_type", http.StatusBadRequest)
		return
	}

	result, err := h.service.GeneratePrompt(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCardType) {
			http.Error(w, "invalid method_card_type", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Erro ao gerar prompt do method card")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

package curriculum

import "encoding/json"

type ActionType string

const (
	ActionAdd     ActionType = "add"
	ActionEdit    ActionType = "edit"
	ActionRemove  ActionType = "remove"
	ActionReorder ActionType = "reorder"
)

// Action é uma mutação estruturada sobre o currículo, no formato que o
// modelo é instruído a emitir. Campos opcionais ficam como ponteiros para
// distinguir "ausente" de "vazio" no patch de edição.
type Action struct {
	Type        ActionType `json:"type"`
	BlockID     string     `json:"blockId,omitempty"`
	CardID      string     `json:"cardId,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Position    *int       `json:"position,omitempty"`
	CardIDs     []string   `json:"cardIds,omitempty"`
}

// DecodeActions valida um array JSON de ações vindo do texto do modelo.
// A saída do oráculo é melhor-esforço: elementos malformados (tipo fora do
// conjunto, campo com tipo errado, campo obrigatório ausente) são descartados
// um a um sem derrubar o lote, e um array indecodificável vira lista vazia.
func DecodeActions(raw []byte) []Action {
	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil
	}

	actions := make([]Action, 0, len(elements))
	for _, element := range elements {
		var action Action
		if err := json.Unmarshal(element, &action); err != nil {
			continue
		}
		if !action.wellFormed() {
			continue
		}
		actions = append(actions, action)
	}
	return actions
}

func (a Action) wellFormed() bool {
	switch a.Type {
	case ActionAdd:
		return IsValidBlockID(a.BlockID) && a.Title != nil && a.Description != nil
	case ActionEdit:
		return a.CardID != ""
	case ActionRemove:
		return a.CardID != ""
	case ActionReorder:
		return IsValidBlockID(a.BlockID) && a.CardIDs != nil
	default:
		return false
	}
}

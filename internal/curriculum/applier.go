package curriculum

import (
	"fmt"

	"github.com/google/uuid"
)

// Apply executa uma sequência validada de ações sobre o currículo e devolve
// o novo estado, sem tocar no original. As ações valem na ordem dada: uma
// edição enxerga o card criado por um add anterior do mesmo lote.
//
// Inconsistências de negócio (id inexistente, posição fora do intervalo)
// são absorvidas como no-op: a lista de ações vem do modelo e é apenas
// melhor-esforço, então o serviço prefere degradar a recusar o lote.
func Apply(cur Curriculum, actions []Action) Curriculum {
	cur.Block1 = append([]Card(nil), cur.Block1...)
	cur.Block2 = append([]Card(nil), cur.Block2...)

	for _, action := range actions {
		switch action.Type {
		case ActionAdd:
			applyAdd(&cur, action)
		case ActionEdit:
			applyEdit(&cur, action)
		case ActionRemove:
			applyRemove(&cur, action)
		case ActionReorder:
			applyReorder(&cur, action)
		}
	}
	return cur
}

func blockOf(cur *Curriculum, blockID string) *[]Card {
	switch blockID {
	case BlockFundamentals:
		return &cur.Block1
	case BlockAdvanced:
		return &cur.Block2
	}
	return nil
}

// findCard procura o card nos dois blocos: o prefixo do id é só convenção,
// então a busca nunca depende do formato.
func findCard(cur *Curriculum, cardID string) (*[]Card, int) {
	for _, block := range []*[]Card{&cur.Block1, &cur.Block2} {
		for i := range *block {
			if (*block)[i].ID == cardID {
				return block, i
			}
		}
	}
	return nil, -1
}

func renumber(cards []Card) {
	for i := range cards {
		cards[i].Order = i
	}
}

func containsID(cards []Card, id string) bool {
	for i := range cards {
		if cards[i].ID == id {
			return true
		}
	}
	return false
}

// NewCardID cunha um id inédito para o bloco. O contrato é unicidade, não o
// formato: o sufixo aleatório evita qualquer contador mutável compartilhado.
func NewCardID(blockID string, cards []Card) string {
	for {
		id := fmt.Sprintf("%s-%s", blockID, uuid.NewString()[:8])
		if !containsID(cards, id) {
			return id
		}
	}
}

func applyAdd(cur *Curriculum, action Action) {
	block := blockOf(cur, action.BlockID)
	if block == nil {
		return
	}

	card := Card{
		ID:    NewCardID(action.BlockID, *block),
		Title: *action.Title,
	}
	if action.Description != nil {
		card.Description = *action.Description
	}

	position := len(*block)
	if action.Position != nil {
		position = *action.Position
		if position < 0 {
			position = 0
		}
		if position > len(*block) {
			position = len(*block)
		}
	}

	*block = append(*block, Card{})
	copy((*block)[position+1:], (*block)[position:])
	(*block)[position] = card
	renumber(*block)
}

func applyEdit(cur *Curriculum, action Action) {
	block, i := findCard(cur, action.CardID)
	if block == nil {
		return
	}
	if action.Title != nil {
		(*block)[i].Title = *action.Title
	}
	if action.Description != nil {
		(*block)[i].Description = *action.Description
	}
}

func applyRemove(cur *Curriculum, action Action) {
	block, i := findCard(cur, action.CardID)
	if block == nil {
		return
	}
	*block = append((*block)[:i], (*block)[i+1:]...)
	renumber(*block)
}

// applyReorder projeta os cards do bloco na ordem pedida. Ids repetidos
// valem pela primeira ocorrência e ids desconhecidos são ignorados; cards
// que a lista omitiu são mantidos no final, na ordem atual, para que um
// reorder desatualizado do modelo nunca apague nada.
func applyReorder(cur *Curriculum, action Action) {
	block := blockOf(cur, action.BlockID)
	if block == nil {
		return
	}

	byID := make(map[string]Card, len(*block))
	for _, card := range *block {
		byID[card.ID] = card
	}

	reordered := make([]Card, 0, len(*block))
	seen := make(map[string]bool, len(action.CardIDs))
	for _, id := range action.CardIDs {
		card, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		reordered = append(reordered, card)
	}
	for _, card := range *block {
		if !seen[card.ID] {
			reordered = append(reordered, card)
		}
	}

	renumber(reordered)
	*block = reordered
}

package curriculum

import "github.com/professor-curador/curador-lambda/internal/research"

const (
	BlockFundamentals = "block1"
	BlockAdvanced     = "block2"
)

func IsValidBlockID(id string) bool {
	return id == BlockFundamentals || id == BlockAdvanced
}

// Card é uma habilidade do currículo. Order é um rank denso começando em
// zero, sempre rederivado da posição no bloco após qualquer mutação.
type Card struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// Curriculum é o estado completo trocado com o cliente a cada turno. O
// serviço não guarda nada entre requisições.
type Curriculum struct {
	Topic  string `json:"topic,omitempty"`
	Block1 []Card `json:"block1"`
	Block2 []Card `json:"block2"`
}

type GenerateRequest struct {
	Topic           string            `json:"topic"`
	ResearchSources []research.Source `json:"research_sources"`
	Block1          []Card            `json:"block1"`
	Block2          []Card            `json:"block2"`
}

type GenerateResponse struct {
	Block1 []Card `json:"block1"`
	Block2 []Card `json:"block2"`
}

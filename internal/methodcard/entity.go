package methodcard

import (
	"github.com/professor-curador/curador-lambda/internal/curriculum"
	"github.com/professor-curador/curador-lambda/internal/research"
)

type CardType string

const (
	CardTypeVideo     CardType = "video"
	CardTypeTheory    CardType = "theory"
	CardTypeCaseStudy CardType = "case_study"
	CardTypePractice  CardType = "practice"
	CardTypeQuiz      CardType = "quiz"
)

// CardInfo descreve um dos cinco method cards e a ferramenta externa em que
// o prompt gerado será colado.
type CardInfo struct {
	Name        string `json:"name"`
	Tool        string `json:"tool"`
	Description string `json:"description"`
}

var Cards = map[CardType]CardInfo{
	CardTypeVideo: {
		Name:        "Apresentação em Vídeo",
		Tool:        "inVideo AI",
		Description: "Gera prompt para criar vídeo educativo de 60-90 segundos",
	},
	CardTypeTheory: {
		Name:        "Guia Teórico",
		Tool:        "NotebookLM",
		Description: "Gera prompt para criar guia de estudo analítico",
	},
	CardTypeCaseStudy: {
		Name:        "Estudo de Caso (Podcast)",
		Tool:        "ElevenLabs",
		Description: "Gera roteiro de podcast estilo true crime educativo",
	},
	CardTypePractice: {
		Name:        "Visualização Interativa",
		Tool:        "Google Colab",
		Description: "Gera código Python para laboratório virtual interativo",
	},
	CardTypeQuiz: {
		Name:        "Quiz de Diagnóstico",
		Tool:        "Google Forms",
		Description: "Gera questões de múltipla escolha em formato markdown",
	},
}

func (t CardType) Valid() bool {
	_, ok := Cards[t]
	return ok
}

type PromptRequest struct {
	Topic               string            `json:"topic"`
	SubtopicID          string            `json:"subtopic_id"`
	SubtopicTitle       string            `json:"subtopic_title"`
	SubtopicDescription string            `json:"subtopic_description"`
	BlockID             string            `json:"block_id"`
	PreviousSubtopics   []curriculum.Card `json:"previous_subtopics"`
	ResearchSources     []research.Source `json:"research_sources"`
	MethodCardType      CardType          `json:"method_card_type"`
}

type PromptResponse struct {
	SubtopicID     string   `json:"subtopic_id"`
	MethodCardType CardType `json:"method_card_type"`
	Prompt         string   `json:"prompt"`
}

package research

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/professor-curador/curador-lambda/internal/config"
	"github.com/professor-curador/curador-lambda/internal/gemini"
	util "github.com/professor-curador/curador-lambda/internal/utils"
)

const maxSources = 12

type Service interface {
	ResearchTopic(ctx context.Context, topic string) ([]Source, error)
}

type service struct {
	provider gemini.Provider
}

func NewService(provider gemini.Provider) Service {
	return &service{provider: provider}
}

func (s *service) ResearchTopic(ctx context.Context, topic string) ([]Source, error) {
	log := config.WithContext(ctx)

	content, err := s.provider.Generate(ctx, systemPrompt, BuildUserPrompt(topic))
	if err != nil {
		return nil, fmt.Errorf("erro ao pesquisar tópico: %w", err)
	}

	if span, ok := util.ExtractJSONArray(content); ok {
		var sources []Source
		if err := json.Unmarshal([]byte(span), &sources); err == nil {
			log.WithField("sources", len(sources)).Info("Fontes de pesquisa extraídas do JSON")
			return sources, nil
		}
		log.Warn("JSON de fontes inválido; usando parser de texto")
	}

	sources := ParseSourcesFromText(content)
	log.WithField("sources", len(sources)).Info("Fontes de pesquisa extraídas por heurística de texto")
	return sources, nil
}

var fieldKeywords = []string{"título", "title", "autor", "author", "tipo", "type", "descrição", "description", "relevância", "relevance"}

// ParseSourcesFromText é o parser de último recurso para quando o modelo não
// devolve JSON: varre o texto linha a linha procurando rótulos conhecidos e
// monta fontes com o que encontrar, limitado a maxSources.
func ParseSourcesFromText(text string) []Source {
	var sources []Source
	var current *Source

	flush := func() {
		if current != nil {
			sources = append(sources, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lower := strings.ToLower(line)

		switch {
		case strings.Contains(lower, "título") || strings.Contains(lower, "title") ||
			strings.HasPrefix(line, "-"):
			flush()
			current = &Source{
				Title: stripLabels(line, "-", "Título:", "Title:"),
				Type:  "livro",
			}
		case current == nil:
			continue
		case strings.Contains(lower, "autor") || strings.Contains(lower, "author"):
			current.Authors = stripLabels(line, "Autor:", "Autores:", "Author:", "Authors:")
		case strings.Contains(lower, "tipo") || strings.Contains(lower, "type"):
			current.Type = strings.ToLower(stripLabels(line, "Tipo:", "Type:"))
		case strings.Contains(lower, "descrição") || strings.Contains(lower, "description"):
			current.Description = stripLabels(line, "Descrição:", "Description:")
		case strings.Contains(lower, "relevância") || strings.Contains(lower, "relevance"):
			current.Relevance = stripLabels(line, "Relevância:", "Relevance:")
		case !containsAnyKeyword(lower):
			if current.Description == "" {
				current.Description = line
			} else if current.Relevance == "" {
				current.Relevance = line
			}
		}
	}
	flush()

	for i := range sources {
		if sources[i].Title == "" {
			sources[i].Title = fmt.Sprintf("Fonte %d", i+1)
		}
		if sources[i].Authors == "" {
			sources[i].Authors = "Vários"
		}
		if sources[i].Type == "" {
			sources[i].Type = "livro"
		}
	}

	if len(sources) > maxSources {
		sources = sources[:maxSources]
	}
	return sources
}

func stripLabels(line string, labels ...string) string {
	for _, label := range labels {
		line = strings.ReplaceAll(line, label, "")
	}
	return strings.TrimSpace(line)
}

func containsAnyKeyword(lower string) bool {
	for _, keyword := range fieldKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

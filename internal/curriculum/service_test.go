package curriculum_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/professor-curador/curador-lambda/internal/curriculum"
	"github.com/professor-curador/curador-lambda/internal/research"
)

type fakeProvider struct {
	response   string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeProvider) Generate(ctx context.Context, system, user string) (string, error) {
	f.lastSystem = system
	f.lastUser = user
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestGenerateCurriculum(t *testing.T) {
	t.Run("CunhaIdsSequenciaisEOrdemDensa", func(t *testing.T) {
		provider := &fakeProvider{response: `Claro! Aqui está o currículo:
{
  "block1": [
    {"title": "Ler diagramas de fase", "description": "base para tudo"},
    {"title": "Aplicar a primeira lei", "description": "constrói sobre a anterior"}
  ],
  "block2": [
    {"title": "Modelar ciclos reais", "description": "habilidade avançada"}
  ]
}
Espero que ajude!`}

		service := curriculum.NewService(provider)
		result, err := service.GenerateCurriculum(context.Background(), "Termodinâmica", nil)
		if err != nil {
			t.Fatalf("GenerateCurriculum falhou: %v", err)
		}

		if len(result.Block1) != 2 || len(result.Block2) != 1 {
			t.Fatalf("Tamanhos incorretos: block1=%d block2=%d", len(result.Block1), len(result.Block2))
		}
		for i, card := range result.Block1 {
			wantID := []string{"block1-0", "block1-1"}[i]
			if card.ID != wantID || card.Order != i {
				t.Errorf("Card %d: esperado id %s order %d, recebido %+v", i, wantID, i, card)
			}
		}
		if result.Block2[0].ID != "block2-0" {
			t.Errorf("Id do bloco 2 incorreto: %s", result.Block2[0].ID)
		}
	})

	t.Run("TituloVazioGanhaFallback", func(t *testing.T) {
		provider := &fakeProvider{response: `{"block1": [{"description": "sem título"}], "block2": []}`}

		service := curriculum.NewService(provider)
		result, err := service.GenerateCurriculum(context.Background(), "Qualquer", nil)
		if err != nil {
			t.Fatalf("GenerateCurriculum falhou: %v", err)
		}
		if result.Block1[0].Title != "Habilidade 1" {
			t.Errorf("Título vazio deveria virar 'Habilidade 1'. Recebido: %s", result.Block1[0].Title)
		}
	})

	t.Run("FontesEntramNoPrompt", func(t *testing.T) {
		provider := &fakeProvider{response: `{"block1": [], "block2": []}`}
		sources := []research.Source{{Title: "Física Térmica", Authors: "Schroeder", Type: "livro"}}

		service := curriculum.NewService(provider)
		if _, err := service.GenerateCurriculum(context.Background(), "Termodinâmica", sources); err != nil {
			t.Fatalf("GenerateCurriculum falhou: %v", err)
		}
		if !strings.Contains(provider.lastUser, "Física Térmica por Schroeder (livro)") {
			t.Error("As fontes de pesquisa deveriam aparecer no prompt do usuário.")
		}
	})

	t.Run("SemJSONEhErroDuro", func(t *testing.T) {
		provider := &fakeProvider{response: "desculpe, não consegui montar o currículo"}

		service := curriculum.NewService(provider)
		_, err := service.GenerateCurriculum(context.Background(), "Termodinâmica", nil)
		if !errors.Is(err, curriculum.ErrNoJSONFound) {
			t.Errorf("Esperado ErrNoJSONFound, recebido: %v", err)
		}
	})

	t.Run("FalhaDoOraculoPropaga", func(t *testing.T) {
		wantErr := errors.New("oráculo fora do ar")
		provider := &fakeProvider{err: wantErr}

		service := curriculum.NewService(provider)
		if _, err := service.GenerateCurriculum(context.Background(), "Termodinâmica", nil); !errors.Is(err, wantErr) {
			t.Errorf("Erro do oráculo deveria propagar. Recebido: %v", err)
		}
	})
}

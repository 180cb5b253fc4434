package methodcard_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/professor-curador/curador-lambda/internal/curriculum"
	"github.com/professor-curador/curador-lambda/internal/methodcard"
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

func sampleRequest(cardType methodcard.CardType) methodcard.PromptRequest {
	return methodcard.PromptRequest{
		Topic:               "Termodinâmica",
		SubtopicID:          "block1-2",
		SubtopicTitle:       "Entropia",
		SubtopicDescription: "A segunda lei e a seta do tempo",
		BlockID:             curriculum.BlockFundamentals,
		PreviousSubtopics: []curriculum.Card{
			{ID: "block1-0", Title: "Calor", Order: 0},
			{ID: "block1-1", Title: "Temperatura", Order: 1},
		},
		ResearchSources: []research.Source{
			{Title: "Física Térmica", Authors: "Schroeder", Type: "livro"},
		},
		MethodCardType: cardType,
	}
}

func TestGeneratePrompt(t *testing.T) {
	t.Run("TodosOsTiposProduzemPrompt", func(t *testing.T) {
		for cardType := range methodcard.Cards {
			t.Run(string(cardType), func(t *testing.T) {
				provider := &fakeProvider{response: "  prompt gerado pelo modelo  "}
				service := methodcard.NewService(provider)

				resp, err := service.GeneratePrompt(context.Background(), sampleRequest(cardType))
				if err != nil {
					t.Fatalf("GeneratePrompt falhou para %s: %v", cardType, err)
				}

				if resp.Prompt != "prompt gerado pelo modelo" {
					t.Errorf("Prompt deveria vir sem espaços nas bordas: %q", resp.Prompt)
				}
				if resp.MethodCardType != cardType || resp.SubtopicID != "block1-2" {
					t.Errorf("Resposta deveria ecoar tipo e subtópico: %+v", resp)
				}
				if !strings.Contains(provider.lastUser, "Entropia") {
					t.Errorf("Prompt do usuário deveria citar o subtópico, recebido: %.200s", provider.lastUser)
				}
				if provider.lastSystem == "" {
					t.Error("Prompt de sistema não deveria ser vazio")
				}
			})
		}
	})

	t.Run("ContextoCarregaAnterioresEFontes", func(t *testing.T) {
		provider := &fakeProvider{response: "ok"}
		service := methodcard.NewService(provider)

		if _, err := service.GeneratePrompt(context.Background(), sampleRequest(methodcard.CardTypeVideo)); err != nil {
			t.Fatalf("GeneratePrompt falhou: %v", err)
		}

		for _, want := range []string{"Calor", "Temperatura", "Física Térmica"} {
			if !strings.Contains(provider.lastUser, want) {
				t.Errorf("Prompt do usuário deveria conter %q", want)
			}
		}
	})

	t.Run("TipoInvalidoEhRejeitado", func(t *testing.T) {
		service := methodcard.NewService(&fakeProvider{response: "ok"})

		_, err := service.GeneratePrompt(context.Background(), sampleRequest(methodcard.CardType("podcast")))
		if !errors.Is(err, methodcard.ErrInvalidCardType) {
			t.Errorf("Tipo desconhecido deveria falhar com ErrInvalidCardType, recebido: %v", err)
		}
	})

	t.Run("FalhaDoOraculoPropaga", func(t *testing.T) {
		wantErr := errors.New("oráculo fora do ar")
		service := methodcard.NewService(&fakeProvider{err: wantErr})

		if _, err := service.GeneratePrompt(context.Background(), sampleRequest(methodcard.CardTypeQuiz)); !errors.Is(err, wantErr) {
			t.Errorf("Erro do oráculo deveria propagar. Recebido: %v", err)
		}
	})
}

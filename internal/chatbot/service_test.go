package chatbot_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/professor-curador/curador-lambda/internal/chatbot"
	"github.com/professor-curador/curador-lambda/internal/curriculum"
)

// fakeProvider devolve uma resposta por chamada, na ordem: primeiro o
// comando, depois o feedback.
type fakeProvider struct {
	responses []string
	err       error
	prompts   []string
}

func (f *fakeProvider) Generate(ctx context.Context, system, user string) (string, error) {
	f.prompts = append(f.prompts, user)
	if f.err != nil {
		return "", f.err
	}
	call := len(f.prompts) - 1
	if call >= len(f.responses) {
		return "", errors.New("resposta não configurada")
	}
	return f.responses[call], nil
}

func sampleCurriculum() curriculum.Curriculum {
	return curriculum.Curriculum{
		Topic: "Termodinâmica",
		Block1: []curriculum.Card{
			{ID: "block1-0", Title: "Calor", Description: "Transferência de energia", Order: 0},
			{ID: "block1-1", Title: "Temperatura", Description: "Medida de agitação", Order: 1},
		},
		Block2: []curriculum.Card{
			{ID: "block2-0", Title: "Entropia", Description: "Segunda lei", Order: 0},
		},
	}
}

func TestHandleTurn(t *testing.T) {
	t.Run("AcoesInterpretadasSaoAplicadas", func(t *testing.T) {
		provider := &fakeProvider{responses: []string{
			`[{"type": "remove", "cardId": "block1-1"}]`,
			`["O que achou da remoção?", "Quer trocar algo mais?", "O bloco 1 ficou claro?"]`,
		}}
		service := chatbot.NewService(provider)

		resp, err := service.HandleTurn(context.Background(), chatbot.TurnRequest{
			Message:    "remova o card de temperatura",
			Topic:      "Termodinâmica",
			Curriculum: sampleCurriculum(),
		})
		if err != nil {
			t.Fatalf("HandleTurn falhou: %v", err)
		}

		if len(resp.Actions) != 1 || resp.Actions[0].Type != curriculum.ActionRemove {
			t.Fatalf("Esperada 1 ação remove, recebido %+v", resp.Actions)
		}
		if resp.Curriculum == nil {
			t.Fatal("Resposta deveria carregar o currículo aplicado")
		}
		if len(resp.Curriculum.Block1) != 1 || resp.Curriculum.Block1[0].ID != "block1-0" {
			t.Errorf("Remoção não aplicada: %+v", resp.Curriculum.Block1)
		}
		if len(resp.FeedbackQuestions) != 3 {
			t.Errorf("Esperadas 3 perguntas de feedback, recebidas %d", len(resp.FeedbackQuestions))
		}
	})

	t.Run("RespostaSemArrayViraNenhumaMudanca", func(t *testing.T) {
		provider := &fakeProvider{responses: []string{
			"Desculpe, não entendi o pedido.",
		}}
		service := chatbot.NewService(provider)

		resp, err := service.HandleTurn(context.Background(), chatbot.TurnRequest{
			Message:    "faça algo",
			Curriculum: sampleCurriculum(),
		})
		if err != nil {
			t.Fatalf("HandleTurn falhou: %v", err)
		}

		if len(resp.Actions) != 0 {
			t.Errorf("Esperado lote vazio, recebido %+v", resp.Actions)
		}
		if len(resp.FeedbackQuestions) != 0 {
			t.Errorf("Sem ações não deveria haver feedback, recebido %v", resp.FeedbackQuestions)
		}
		if resp.Curriculum == nil || len(resp.Curriculum.Block1) != 2 {
			t.Errorf("Currículo deveria voltar inalterado: %+v", resp.Curriculum)
		}
		if len(provider.prompts) != 1 {
			t.Errorf("Oráculo não deveria ser chamado para feedback, chamadas: %d", len(provider.prompts))
		}
	})

	t.Run("FalhaDoOraculoEhErro", func(t *testing.T) {
		wantErr := errors.New("oráculo fora do ar")
		service := chatbot.NewService(&fakeProvider{err: wantErr})

		if _, err := service.HandleTurn(context.Background(), chatbot.TurnRequest{
			Message:    "remova tudo",
			Curriculum: sampleCurriculum(),
		}); !errors.Is(err, wantErr) {
			t.Errorf("Erro do oráculo deveria propagar. Recebido: %v", err)
		}
	})

	t.Run("FeedbackCurtoEhCompletadoAteTres", func(t *testing.T) {
		provider := &fakeProvider{responses: []string{
			`[{"type": "remove", "cardId": "block2-0"}]`,
			`["Ficou bom assim?"]`,
		}}
		service := chatbot.NewService(provider)

		resp, err := service.HandleTurn(context.Background(), chatbot.TurnRequest{
			Message:    "tire a entropia",
			Curriculum: sampleCurriculum(),
		})
		if err != nil {
			t.Fatalf("HandleTurn falhou: %v", err)
		}

		if len(resp.FeedbackQuestions) != 3 {
			t.Fatalf("Esperadas 3 perguntas, recebidas %d", len(resp.FeedbackQuestions))
		}
		if resp.FeedbackQuestions[0] != "Ficou bom assim?" {
			t.Errorf("Pergunta do modelo deveria vir primeiro: %v", resp.FeedbackQuestions)
		}
	})

	t.Run("FeedbackInvalidoCaiNasPerguntasGenericas", func(t *testing.T) {
		provider := &fakeProvider{responses: []string{
			`[{"type": "remove", "cardId": "block2-0"}]`,
			"não consegui formular perguntas",
		}}
		service := chatbot.NewService(provider)

		resp, err := service.HandleTurn(context.Background(), chatbot.TurnRequest{
			Message:    "tire a entropia",
			Curriculum: sampleCurriculum(),
		})
		if err != nil {
			t.Fatalf("HandleTurn falhou: %v", err)
		}

		if len(resp.FeedbackQuestions) != 3 {
			t.Fatalf("Esperadas 3 perguntas genéricas, recebidas %d", len(resp.FeedbackQuestions))
		}
		if resp.FeedbackQuestions[0] != "As mudanças atendem às suas expectativas?" {
			t.Errorf("Esperado conjunto genérico, recebido %v", resp.FeedbackQuestions)
		}
	})

	t.Run("PromptDeComandoCarregaCurriculoEHistorico", func(t *testing.T) {
		provider := &fakeProvider{responses: []string{"[]"}}
		service := chatbot.NewService(provider)

		_, err := service.HandleTurn(context.Background(), chatbot.TurnRequest{
			Message:    "adicione um card sobre gases",
			Topic:      "Termodinâmica",
			Curriculum: sampleCurriculum(),
			ChatHistory: []chatbot.ChatMessage{
				{Role: "user", Content: "olá"},
				{Role: "assistant", Content: "como posso ajudar?"},
			},
		})
		if err != nil {
			t.Fatalf("HandleTurn falhou: %v", err)
		}

		prompt := provider.prompts[0]
		for _, want := range []string{"block1-0", "Entropia", "adicione um card sobre gases", "como posso ajudar?"} {
			if !strings.Contains(prompt, want) {
				t.Errorf("Prompt de comando deveria conter %q", want)
			}
		}
	})
}

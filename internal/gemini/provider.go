package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/professor-curador/curador-lambda/internal/config"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

var (
	ErrEmptyResponse = errors.New("resposta vazia do modelo")
	ErrUnavailable   = errors.New("cliente Gemini não inicializado; verifique a variável GEMINI_API_KEY")
)

// Provider é a fronteira com o oráculo de geração de conteúdo. A saída é
// texto livre e deve ser tratada como não confiável pelos chamadores.
type Provider interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// unavailableProvider preserva o erro de inicialização e o devolve a cada
// chamada, para que requisições individuais falhem com uma mensagem clara
// em vez de derrubar o processo na subida.
type unavailableProvider struct {
	err error
}

func NewProvider(ctx context.Context) Provider {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		logrus.WithError(err).Warn("GEMINI_API_KEY não encontrada no ambiente; chamadas ao Gemini vão falhar")
		return &unavailableProvider{err: err}
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &geminiProvider{client: client, model: model}
}

func (p *geminiProvider) Generate(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)
	prompt := system + "\n\n" + user

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Falha ao gerar conteúdo do Gemini")
		return "", fmt.Errorf("falha ao gerar conteúdo: %w", err)
	}

	raw := result.Text()
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyResponse
	}

	log.WithField("model", p.model).Debugf("Resposta bruta do Gemini:\n%s", raw)
	return raw, nil
}

func (p *unavailableProvider) Generate(ctx context.Context, system, user string) (string, error) {
	return "", fmt.Errorf("%w: %v", ErrUnavailable, p.err)
}

package chatbot

import (
	"fmt"
	"strings"

	"github.com/professor-curador/curador-lambda/internal/curriculum"
)

const historyWindow = 5

const commandSystemPrompt = `Você é um assistente criativo e inteligente especializado em gerenciar currículos educacionais.
Sua tarefa é interpretar comandos em linguagem natural e convertê-los em ações estruturadas JSON.

IMPORTANTE: Seja CRIATIVO e FLEXÍVEL. Você tem autoridade para:
- Criar múltiplos cards de uma vez quando solicitado
- Inferir títulos e descrições quando o usuário fornecer apenas um tópico geral
- Dividir tópicos amplos em múltiplos cards específicos
- Usar seu conhecimento educacional para criar descrições relevantes
- Ser proativo: se o usuário pedir "5 cards sobre X", crie 5 cards diferentes e relevantes sobre aspectos de X
- ORDENAR LOGICAMENTE: quando criar múltiplos cards, coloque os mais básicos/introdutórios PRIMEIRO (sem position, serão adicionados sequencialmente) e os mais avançados DEPOIS
- PROGRESSÃO PEDAGÓGICA: organize os cards em ordem crescente de complexidade, do mais fundamental ao mais avançado

Estrutura do currículo:
- Existem dois blocos: "block1" (Fundamentos) e "block2" (Aplicações Práticas)
- Cada card tem: id (string), title (string), description (string), order (int)
- A lista é ordenada: ordem 0 = PRIMEIRO/INÍCIO/TOPO, ordem maior = ÚLTIMO/FIM/FINAL

IMPORTANTE SOBRE POSICIONAMENTO:
- "Primeiro", "início", "topo", "começo" = ordem 0 (primeira posição)
- "Último", "fim", "final", "final da lista" = maior ordem (última posição)
- Quando adicionar um card SEM especificar posição, adicione ao FINAL (não inclua "position")
- Quando adicionar "no início" ou "no começo", use position: 0
- Quando adicionar "no final" ou "no fim", NÃO inclua "position" (será adicionado automaticamente ao final)

Tipos de ações disponíveis:
1. ADD: Adicionar novo card
   {"type": "add", "blockId": "block1" ou "block2", "title": "título", "description": "descrição", "position": número opcional}

2. EDIT: Editar card existente
   {"type": "edit", "cardId": "id-do-card", "title": "novo título" (opcional), "description": "nova descrição" (opcional)}

3. REMOVE: Remover card
   {"type": "remove", "cardId": "id-do-card"}

4. REORDER: Reordenar cards em um bloco
   {"type": "reorder", "blockId": "block1" ou "block2", "cardIds": ["id1", "id2", "id3", ...]}
   - O array cardIds deve conter TODOS os IDs do bloco na ordem desejada
   - Primeiro ID no array = primeiro na lista (ordem 0)
   - Último ID no array = último na lista (maior ordem)

REGRAS CRÍTICAS:
- Retorne APENAS um array JSON válido de ações, sem texto adicional
- Use os IDs exatos dos cards quando referenciar cards existentes
- Para reordenar, forneça TODOS os IDs do bloco na ordem desejada
- Seja CRIATIVO: quando o usuário pedir múltiplos cards, crie múltiplas ações ADD
- Seja PROATIVO: se faltar informação, use seu conhecimento para criar títulos e descrições relevantes
- ORDENE LOGICAMENTE: básico/fundamental PRIMEIRO no array, avançado DEPOIS
- NÃO retorne array vazio [] a menos que seja realmente impossível interpretar o comando
- Responda sempre em português brasileiro quando necessário explicar algo

Exemplos:
Comando: "Adicione um card sobre 'Introdução a Python' no bloco 1"
Resposta: [{"type": "add", "blockId": "block1", "title": "Introdução a Python", "description": "Conceitos básicos da linguagem Python"}]

Comando: "Adicione 3 cards sobre machine learning no bloco 2"
Resposta: [
  {"type": "add", "blockId": "block2", "title": "Introdução ao Machine Learning", "description": "Conceitos fundamentais e tipos de aprendizado"},
  {"type": "add", "blockId": "block2", "title": "Algoritmos de Classificação", "description": "Regressão logística, árvores de decisão e SVM"},
  {"type": "add", "blockId": "block2", "title": "Validação e Métricas", "description": "Técnicas de validação cruzada e métricas de avaliação"}
]

Comando: "Adicione um card sobre 'Pré-requisitos' no início do bloco 1"
Resposta: [{"type": "add", "blockId": "block1", "title": "Pré-requisitos", "description": "...", "position": 0}]

Comando: "Mova o primeiro card do bloco 1 para o final"
Resposta: [{"type": "reorder", "blockId": "block1", "cardIds": ["block1-1", "block1-2", "block1-0"]}]

Comando: "Edite o card block1-0 para ter o título 'Novo Título'"
Resposta: [{"type": "edit", "cardId": "block1-0", "title": "Novo Título"}]

Comando: "Remova o card sobre X"
Resposta: [{"type": "remove", "cardId": "block1-2"}]`

// BuildCommandPrompt serializa o estado do currículo e a janela recente do
// histórico no user prompt do interpretador de comandos.
func BuildCommandPrompt(req TurnRequest) string {
	var b strings.Builder

	b.WriteString("Estado atual do currículo:\n")
	fmt.Fprintf(&b, "Tópico: %s\n\n", orDefault(req.Topic, "Não especificado"))

	writeBlock(&b, "Bloco 1 (Fundamentos)", req.Curriculum.Block1)
	b.WriteString("\n")
	writeBlock(&b, "Bloco 2 (Aplicações Práticas)", req.Curriculum.Block2)

	if len(req.ChatHistory) > 0 {
		b.WriteString("\nHistórico da conversa:\n")
		history := req.ChatHistory
		if len(history) > historyWindow {
			history = history[len(history)-historyWindow:]
		}
		for _, msg := range history {
			fmt.Fprintf(&b, "%s: %s\n", orDefault(msg.Role, "user"), msg.Content)
		}
	}

	fmt.Fprintf(&b, "\nComando do usuário: %s\n", req.Message)
	b.WriteString("\nRetorne APENAS um array JSON com as ações a executar. Se não conseguir interpretar o comando, retorne [].\n")
	b.WriteString("\nResposta (array JSON):")

	return b.String()
}

func writeBlock(b *strings.Builder, label string, cards []curriculum.Card) {
	fmt.Fprintf(b, "%s:\n", label)
	if len(cards) == 0 {
		b.WriteString("  (vazio)\n")
		return
	}
	for i, card := range cards {
		fmt.Fprintf(b, "  %d. ID: %s | Título: %s | Descrição: %s\n",
			i+1, card.ID, card.Title, truncate(card.Description, 100))
	}
}

const feedbackSystemPrompt = `Você é um assistente educacional que ajuda professores a refinar seus currículos.
Após executar mudanças no currículo, você deve gerar 3 perguntas de feedback relevantes e úteis.

As perguntas devem:
- Ser específicas ao contexto das ações executadas
- Ajudar o professor a pensar em melhorias ou ajustes
- Ser curtas e diretas
- Ser em português brasileiro
- Variar entre: verificação de satisfação, sugestões de melhoria, e necessidades adicionais

Retorne APENAS um array JSON com exatamente 3 strings (perguntas), sem texto adicional.
Formato: ["Pergunta 1?", "Pergunta 2?", "Pergunta 3?"]`

func BuildFeedbackPrompt(actions []curriculum.Action, topic string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tópico do currículo: %s\n\n", orDefault(topic, "Não especificado"))

	b.WriteString("Ações executadas:\n")
	for i, action := range actions {
		switch action.Type {
		case curriculum.ActionAdd:
			fmt.Fprintf(&b, "%d. Adicionado card '%s' no %s\n", i+1, deref(action.Title), action.BlockID)
		case curriculum.ActionEdit:
			fmt.Fprintf(&b, "%d. Editado card %s\n", i+1, action.CardID)
		case curriculum.ActionRemove:
			fmt.Fprintf(&b, "%d. Removido card %s\n", i+1, action.CardID)
		case curriculum.ActionReorder:
			fmt.Fprintf(&b, "%d. Reordenados cards no %s\n", i+1, action.BlockID)
		}
	}

	b.WriteString("\nGere 3 perguntas de feedback relevantes sobre essas mudanças.")
	return b.String()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

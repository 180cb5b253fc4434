package methodcard

import (
	"fmt"
	"strings"
)

// buildContext monta os blocos de contexto compartilhados pelos cinco
// templates: habilidades pré-requisitas já estudadas e até 5 fontes.
func (r PromptRequest) previousContext() string {
	if len(r.PreviousSubtopics) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\nHabilidades Pré-requisitas já estudadas:\n")
	for i, prev := range r.PreviousSubtopics {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, prev.Title, prev.Description)
	}
	return b.String()
}

func (r PromptRequest) sourcesContext() string {
	if len(r.ResearchSources) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\nFontes de Pesquisa Relevantes:\n")
	sources := r.ResearchSources
	if len(sources) > 5 {
		sources = sources[:5]
	}
	for i, s := range sources {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s por %s (%s)", s.Title, s.Authors, s.Type)
	}
	return b.String()
}

const videoSystemPrompt = `Você é um Diretor Criativo de Documentários Científicos e Pedagogo especializado. Crie prompts otimizados para ferramentas de geração de vídeo educacional. Responda sempre em português brasileiro.`

func buildVideoPrompt(r PromptRequest) (string, string) {
	user := fmt.Sprintf(`Atue como um Diretor Criativo de Documentários Científicos e Pedagogo.
Inspire-se em canais como 3blue1brown, Veritasium, Vsauce.
Escreva um roteiro detalhado para um vídeo curto (60 a 90 segundos) que introduza um novo tópico aos meus alunos.

TÓPICO DA AULA: %s
CONTEXTO DO CURSO: %s
DESCRIÇÃO DO SUBTÓPICO: %s
%s%s

Sua tarefa é escrever um "Prompt Otimizado" que será usado diretamente na ferramenta "InVideo AI".
A estrutura narrativa do vídeo deve seguir a lógica da "Curiosidade Investigativa":
1. **O Gancho (0-10s):** Comece com uma pergunta intrigante ou um fato contraintuitivo do mundo real conectado ao tema. (Misture curiosidade com um leve senso de urgência ou impacto).
2. **A Ponte (10-40s):** Conecte esse fato à teoria que está sendo estudada, de maneira divertida. Use analogias visuais.
3. **O Convite (40-90s):** Termine dizendo o que o aluno será capaz de fazer/resolver após dominar essa aula.

SAÍDA ESPERADA:
Escreva APENAS o prompt em inglês e inclua as configurações abaixo.
Settings: - Language: Portuguese (Brazil) - Voice: Male and professional - Subtitles: Portuguese (Brazil)
O prompt deve começar com: "Create a 60-second YouTube Short explaining [TOPIC] with a curious and energetic tone. Target audience: Students."

IMPORTANTE: Retorne APENAS o prompt final, sem explicações adicionais.`,
		r.SubtopicTitle, r.Topic, r.SubtopicDescription, r.previousContext(), r.sourcesContext())
	return videoSystemPrompt, user
}

const theorySystemPrompt = `Você é um especialista em criar prompts otimizados para o NotebookLM. Gere prompts diretos, claros e específicos que o NotebookLM usará para criar conteúdo educacional. O prompt gerado deve ser copiado e colado diretamente no NotebookLM. Responda sempre em português brasileiro.`

func buildTheoryPrompt(r PromptRequest) (string, string) {
	user := fmt.Sprintf(`Crie um prompt completo para o NotebookLM que gere um "Guia de Estudo Analítico" sobre o tópico abaixo.

TÓPICO: %s
CONTEXTO DO CURSO: %s
DESCRIÇÃO: %s
%s%s

INSTRUÇÕES:
O prompt que você vai gerar será usado DIRETAMENTE no NotebookLM. O NotebookLM lerá esse prompt e criará um guia de estudo completo para alunos de graduação.

Gere um prompt que instrua o NotebookLM a:

1. Assumir a persona de um Professor Pesquisador e Analista Crítico especializado em %s.

2. Criar um Guia de Estudo Analítico completo e estruturado que inclua:

   SEÇÃO 1 - Visão Geral e Relevância Estratégica:
   - Definir tecnicamente o tópico "%s"
   - Analisar sua importância estratégica fundamentando-se nas fontes disponíveis

   SEÇÃO 2 - Análise dos Pilares Teóricos:
   - Identificar e explicar os conceitos-chave (pilares teóricos) que sustentam o tópico
   - Descrever como esses conceitos se relacionam e dependem uns dos outros

   SEÇÃO 3 - Análise Crítica de Caso de Uso:
   - Selecionar um caso de uso ou aplicação prática relevante relacionado ao tópico
   - Analisar o problema que essa aplicação resolveu, o impacto gerado e os desafios enfrentados

   SEÇÃO 4 - Implicações e Desafios:
   - Discutir limitações, desafios de implementação e implicações técnicas do tópico

   SEÇÃO 5 - Referências Bibliográficas:
   - Listar todas as fontes utilizadas em formato acadêmico
   - Usar citações inline numéricas [1], [2], [3] ao longo do texto sempre que informações vierem diretamente das fontes

3. REGRAS IMPORTANTES:
   - Usar citações inline [1], [2], etc. sempre que citar fontes
   - Se uma seção não puder ser preenchida por falta de informações nas fontes, escrever o cabeçalho e declarar: "As fontes fornecidas não cobrem este ponto."
   - Usar linguagem acadêmica, técnica e precisa, adequada para alunos de graduação
   - O guia deve ser denso em informação e altamente didático

FORMATO DE SAÍDA:
Retorne APENAS o prompt pronto para ser usado no NotebookLM. O prompt deve começar diretamente com as instruções, como se você estivesse falando com o NotebookLM. Não inclua explicações ou metatexto. O professor vai copiar e colar seu prompt diretamente no NotebookLM.

Exemplo de início do prompt: "Crie um Guia de Estudo Analítico sobre [tópico] seguindo esta estrutura: [...]"`,
		r.SubtopicTitle, r.Topic, r.SubtopicDescription, r.previousContext(), r.sourcesContext(), r.Topic, r.SubtopicTitle)
	return theorySystemPrompt, user
}

const caseStudySystemPrompt = `Você é um Roteirista de Podcast Investigativo especializado em conteúdo educacional. Crie roteiros envolventes estilo true crime para ensinar conceitos técnicos. Responda sempre em português brasileiro.`

func buildCaseStudyPrompt(r PromptRequest) (string, string) {
	user := fmt.Sprintf(`Atue como um Roteirista de Podcast Investigativo (estilo "True Crime" ou "Discovery").
Preciso de um roteiro completo para um episódio curto (3 a 5 minutos) sobre um Estudo de Caso.

TÓPICO DA AULA: %s
CONTEXTO DO CURSO: %s
DESCRIÇÃO: %s
%s%s

Sua tarefa:
1. **Encontre um Caso:** Busque um acidente real, falha famosa ou desafio histórico ligado a esse tópico. (Se não houver um caso famoso direto, crie um cenário hipotético ultra-realista em uma indústria).
2. **Crie os Personagens:**
    * **Host (Alex):** Curioso, faz as perguntas que o público leigo faria.
    * **Especialista (Dra. Santos):** Especialista Sênior, explica a falha técnica usando os conceitos da disciplina (%s).
3. **Estrutura do Roteiro:**
    * **Abertura:** O som do desastre/problema. O contexto.
    * **A Investigação:** O Host pergunta "O que deu errado?". A Especialista explica os conceitos técnicos envolvidos.
    * **A Lição:** Como o problema é resolvido ou prevenido hoje.

SAÍDA OBRIGATÓRIA:
Escreva o roteiro em formato de diálogo teatral.
Inclua "Marcadores de Emoção" entre parênteses para guiar a IA de voz (ex: [Tom sério], [Surpreso], [Didático]).

IMPORTANTE: Retorne APENAS o roteiro completo, sem explicações adicionais.`,
		r.SubtopicTitle, r.Topic, r.SubtopicDescription, r.previousContext(), r.sourcesContext(), r.Topic)
	return caseStudySystemPrompt, user
}

const practiceSystemPrompt = `Você é um Professor Criativo e Engenheiro especializado em Visualizações Científicas Interativas. Crie experiências de aprendizado visualmente envolventes com código Python executável para Google Colab. Seja criativo, didático e inspire curiosidade. Responda sempre em português brasileiro.`

func buildPracticePrompt(r PromptRequest) (string, string) {
	user := fmt.Sprintf(`**Contexto:**
Você é um Professor Criativo especializado em criar experiências de aprendizado visualmente envolventes para a disciplina %s.
Sua missão é criar um laboratório virtual interativo ou visualização didática no Google Colab que ajude os alunos a compreenderem profundamente o conceito.

**Tópico da Aula:** %s
**Descrição:** %s
%s%s

**Sua Tarefa:**
Crie um código Python completo, executável e didático que demonstre visualmente o conceito estudado. Seja criativo e pense em formas interessantes de visualizar o fenômeno ou conceito - pode ser através de:
- Gráficos interativos e animações
- Simulações visuais
- Visualizações comparativas
- Aplicações interativas simples
- Demonstrações práticas do conceito em ação

**Orientações de Design:**
1. **Criatividade Visual:** Pense em formas engenhosas e claras de mostrar o conceito. Use analogias visuais, animações, ou múltiplas perspectivas quando apropriado.
2. **Didática:** Inclua comentários explicativos no código que ajudem o aluno a entender o que está acontecendo. Explique o "porquê", não apenas o "como".
3. **Bibliotecas Flexíveis:** Use as bibliotecas que fizerem mais sentido para a visualização (matplotlib, plotly, numpy, pandas, etc.). Não há obrigatoriedade de usar widgets ou sliders - o importante é que a visualização seja clara e educativa.
4. **Completude:** O código deve ser executável diretamente em uma célula do Google Colab, incluindo imports necessários.
5. **Interpretação:** Adicione comentários ou prints que expliquem o que a visualização mostra e como ela ajuda a entender o conceito.
6. **Robustez:** Trate erros matemáticos ou de entrada quando apropriado.

**Formato de Saída:**
Retorne APENAS o código Python puro, diretamente, sem blocos markdown, sem explicações antes ou depois, sem formatação markdown. Apenas o código executável que pode ser copiado e colado diretamente em uma célula do Colab.`,
		r.Topic, r.SubtopicTitle, r.SubtopicDescription, r.previousContext(), r.sourcesContext())
	return practiceSystemPrompt, user
}

const quizSystemPrompt = `Você é um Professor Universitário exigente, mas didático. Crie questões de múltipla escolha que testem compreensão prática, não memorização. Responda sempre em português brasileiro. Retorne APENAS texto simples (plain text), sem formatação Markdown, sem fórmulas LaTeX, sem símbolos especiais ou caracteres de formatação. Use apenas texto puro, fácil de ler, copiar e colar no Google Forms.`

func buildQuizPrompt(r PromptRequest) (string, string) {
	user := fmt.Sprintf(`Atue como um Professor Universitário exigente, mas didático.
Com base no conteúdo abaixo, crie um "Quiz de Diagnóstico" com 4 questões de múltipla escolha.

TÓPICO DA AULA: %s
CONTEXTO DO CURSO: %s
DESCRIÇÃO: %s
%s%s

REGRAS DE OURO PARA AS QUESTÕES:
1. Proibido Decorar: Não faça perguntas de definição (ex: "O que é X?").
2. Foco em Cenário: Crie situações-problema. Use frases como "Se a variável X dobrar...", "Em um cenário onde...", "Um profissional observou que...".
3. Distratores Inteligentes: As alternativas erradas não devem ser absurdas. Elas devem representar erros comuns de conceito que os alunos costumam cometer.
4. Aplicação Prática: Cada questão deve testar a capacidade de aplicar o conceito em uma situação real.

FORMATO DE SAÍDA (texto simples, sem Markdown):
Para cada questão, use este formato exato:

Questão 1:
[Enunciado com cenário prático, em texto simples, sem símbolos especiais ou formatação]

A) [Alternativa A - texto simples]
B) [Alternativa B - texto simples]
C) [Alternativa C - texto simples]
D) [Alternativa D - texto simples]

[Continue para as Questões 2, 3 e 4 no mesmo formato]

GABARITO:
Questão 1: [Letra correta: A, B, C ou D]
Questão 2: [Letra correta: A, B, C ou D]
Questão 3: [Letra correta: A, B, C ou D]
Questão 4: [Letra correta: A, B, C ou D]

EXPLICAÇÕES:
Questão 1: [Explicação da resposta correta e por que as outras estão erradas - texto simples, sem formatação]
Questão 2: [Explicação - texto simples]
Questão 3: [Explicação - texto simples]
Questão 4: [Explicação - texto simples]

REGRAS CRÍTICAS DE FORMATAÇÃO:
- Use APENAS texto simples (plain text)
- NÃO use Markdown (sem asteriscos, sem negrito, sem itálico, sem listas formatadas)
- NÃO use fórmulas LaTeX (sem símbolos matemáticos especiais, escreva por extenso ou use notação simples)
- NÃO use símbolos especiais ou caracteres de formatação
- Use apenas letras, números, vírgulas, pontos, dois pontos e parênteses
- Use quebras de linha simples para separar questões
- Texto deve ser fácil de copiar e colar diretamente no Google Forms`,
		r.SubtopicTitle, r.Topic, r.SubtopicDescription, r.previousContext(), r.sourcesContext())
	return quizSystemPrompt, user
}

// BuildPrompt seleciona o template do method card pedido. O booleano é falso
// para tipos fora do conjunto fechado.
func BuildPrompt(r PromptRequest) (system, user string, ok bool) {
	switch r.MethodCardType {
	case CardTypeVideo:
		system, user = buildVideoPrompt(r)
	case CardTypeTheory:
		system, user = buildTheoryPrompt(r)
	case CardTypeCaseStudy:
		system, user = buildCaseStudyPrompt(r)
	case CardTypePractice:
		system, user = buildPracticePrompt(r)
	case CardTypeQuiz:
		system, user = buildQuizPrompt(r)
	default:
		return "", "", false
	}
	return system, user, true
}

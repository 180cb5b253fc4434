package curriculum

import (
	"fmt"
	"strings"

	"github.com/professor-curador/curador-lambda/internal/research"
)

const systemPrompt = `Você é um especialista em design curricular baseado em competências. Crie habilidades progressivas e práticas que se constroem umas sobre as outras, focando em competências mensuráveis e aplicáveis. Responda sempre em português brasileiro.`

func BuildUserPrompt(topic string, sources []research.Source) string {
	sourcesSection := ""
	if len(sources) > 0 {
		var lines []string
		for _, s := range sources[:min(len(sources), 8)] {
			lines = append(lines, fmt.Sprintf("- %s por %s (%s)", s.Title, s.Authors, s.Type))
		}
		sourcesSection = fmt.Sprintf("\n\nFontes de pesquisa relevantes:\n%s\n", strings.Join(lines, "\n"))
	}

	return fmt.Sprintf(`Com base no tópico "%s"%s

Gere um currículo abrangente focado em HABILIDADES e COMPETÊNCIAS progressivas organizadas em DOIS blocos/módulos lógicos.

IMPORTANTE: Os sub-tópicos devem ser HABILIDADES específicas e práticas que se constroem progressivamente, não apenas tópicos teóricos. Cada habilidade deve ser:
- Uma competência mensurável e aplicável
- Baseada nas habilidades anteriores (construção progressiva)
- Específica para entender tópicos complexos e nichos do assunto
- Prática e acionável

Estrutura:
- Bloco 1 (Fundamentos): Habilidades básicas essenciais que são pré-requisitos
- Bloco 2 (Avançado): Habilidades complexas que se apoiam nas do Bloco 1

Para cada habilidade/sub-tópico, forneça:
- Um título claro descrevendo a habilidade específica
- Uma descrição explicando por que essa habilidade é importante e como se relaciona com as anteriores

Gere 6-10 habilidades por bloco (12-20 no total), garantindo progressão lógica e construção sobre habilidades anteriores.

Retorne APENAS um JSON válido com esta estrutura (sem texto adicional antes ou depois):
{
  "block1": [
    {"title": "Habilidade/Competência específica", "description": "Descrição explicando a habilidade e sua importância"},
    ...
  ],
  "block2": [
    {"title": "Habilidade/Competência específica", "description": "Descrição explicando a habilidade e como constrói sobre as anteriores"},
    ...
  ]
}

Responda sempre em português brasileiro.`, topic, sourcesSection)
}

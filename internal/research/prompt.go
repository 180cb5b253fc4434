package research

import "fmt"

const systemPrompt = `Você é um pesquisador acadêmico especialista. Forneça recomendações de fontes de pesquisa precisas e bem estruturadas. Responda sempre em português brasileiro.`

func BuildUserPrompt(topic string) string {
	return fmt.Sprintf(`Pesquise o tópico "%s" e forneça uma lista de 8-12 fontes de pesquisa de alta qualidade, incluindo:
- Livros acadêmicos
- Artigos de pesquisa
- Artigos de revisão
- Ensaios ou monografias importantes

Para cada fonte, forneça:
- Título
- Autor(es)
- Tipo (livro/artigo/ensaio)
- Breve descrição (1-2 frases)
- Por que é relevante

Formate como um array JSON com os campos: title, authors, type, description, relevance.
Seja específico e foque em obras fundamentais e contemporâneas. Responda em português brasileiro.`, topic)
}

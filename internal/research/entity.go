package research

// Source é uma fonte de pesquisa sugerida pelo modelo para embasar o
// currículo (livro, artigo ou ensaio).
type Source struct {
	Title       string `json:"title"`
	Authors     string `json:"authors"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Relevance   string `json:"relevance"`
}

type TopicRequest struct {
	Topic string `json:"topic"`
}

type SourcesResponse struct {
	Sources []Source `json:"sources"`
}

package util

import "strings"

// ExtractJSONSpan recorta o primeiro trecho entre open e close dentro de um
// texto livre: do primeiro open até o último close. Modelos de linguagem
// costumam cercar o JSON com explicações, então o recorte é proposital e
// a validação fica por conta do decode.
func ExtractJSONSpan(text string, open, close byte) (string, bool) {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

func ExtractJSONArray(text string) (string, bool) {
	return ExtractJSONSpan(text, '[', ']')
}

func ExtractJSONObject(text string) (string, bool) {
	return ExtractJSONSpan(text, '{', '}')
}

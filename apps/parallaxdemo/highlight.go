// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/parallaxdemo/highlight.go
// Summary: Chroma highlighting for <pre> blocks with enry language detection.

package parallaxdemo

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"
)

const defaultStyleName = "catppuccin-mocha"

// classifierCandidates bounds enry's classifier to languages a demo page is
// likely to embed.
var classifierCandidates = []string{
	"Go", "Python", "JavaScript", "TypeScript", "Shell", "Rust", "C",
	"HTML", "CSS", "JSON", "YAML", "SQL",
}

// Span is a run of text drawn with one style.
type Span struct {
	Text  string
	Style tcell.Style
}

// Highlighter colours preformatted blocks with a Chroma style.
type Highlighter struct {
	style *chroma.Style
	base  tcell.Style
}

// NewHighlighter resolves styleName, falling back to catppuccin-mocha.
func NewHighlighter(styleName string) *Highlighter {
	if styleName == "" {
		styleName = defaultStyleName
	}
	return &Highlighter{style: styles.Get(styleName), base: tcell.StyleDefault}
}

// Highlight tokenises lines as one block and returns the spans of each line.
// lang names a Chroma lexer; when empty the language is detected.
func (h *Highlighter) Highlight(lines []string, lang string) [][]Span {
	out := make([][]Span, len(lines))
	if len(lines) == 0 {
		return out
	}
	text := strings.Join(lines, "\n") + "\n"
	if lang == "" {
		lang = detectLanguage(text)
	}
	lexer := chroma.Coalesce(getLexer(lang, text))
	tokens, err := chroma.Tokenise(lexer, nil, text)
	if err != nil {
		for i, l := range lines {
			out[i] = []Span{{Text: l, Style: h.base}}
		}
		return out
	}

	row := 0
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		style := h.tokenStyle(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				row++
			}
			if part != "" && row < len(out) {
				out[row] = append(out[row], Span{Text: part, Style: style})
			}
		}
	}
	return out
}

func (h *Highlighter) tokenStyle(t chroma.TokenType) tcell.Style {
	entry := h.style.Get(t)
	st := h.base
	if entry.Colour.IsSet() {
		st = st.Foreground(tcell.NewRGBColor(int32(entry.Colour.Red()), int32(entry.Colour.Green()), int32(entry.Colour.Blue())))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}

// detectLanguage asks enry's classifier for the most likely language.
func detectLanguage(text string) string {
	lang, _ := enry.GetLanguageByClassifier([]byte(text), classifierCandidates)
	return lang
}

// getLexer returns a Chroma lexer by name, or auto-detects from content.
func getLexer(name, text string) chroma.Lexer {
	if name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

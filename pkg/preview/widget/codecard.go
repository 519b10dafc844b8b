package widget

import (
	"fmt"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/0010capacity/oxinot/pkg/preview"
)

// CodeCard renders a closed fenced code block as a card with a language
// header and one element per code line.
type CodeCard struct {
	base

	code string
	lang string
}

// NewCodeCard creates a code card. When the fence carried no info
// string, the language is detected from the code content; detection
// failures fall back to "text".
func NewCodeCard(delegate preview.RenderDelegate, code, lang string) *CodeCard {
	if lang == "" {
		lang = detectLanguage(code)
	}
	w := &CodeCard{code: code, lang: lang}
	w.delegate = delegate
	return w
}

// Language returns the resolved language tag.
func (w *CodeCard) Language() string {
	return w.lang
}

// Code returns the fenced content with the fences stripped.
func (w *CodeCard) Code() string {
	return w.code
}

// Eq compares by content identity: code text plus language. Object
// identity would remount the card on every rebuild and flicker.
func (w *CodeCard) Eq(other preview.Widget) bool {
	o, ok := other.(*CodeCard)
	return ok && o.code == w.code && o.lang == w.lang
}

// Mount builds the card synchronously; a code card needs no async data.
func (w *CodeCard) Mount() (preview.Element, error) {
	if w.delegate == nil {
		return nil, fmt.Errorf("code card (%s): no render delegate", w.lang)
	}

	host := w.delegate.CreateElement("code-card")
	host.SetClass("cm-code-card")

	header := host.AppendChild("header")
	header.SetText(w.lang)
	header.SetClass("cm-code-lang")

	for _, line := range strings.Split(w.code, "\n") {
		el := host.AppendChild("code-line")
		el.SetText(line)
	}

	if !w.markMounted(host) {
		host.Remove()
		return nil, fmt.Errorf("code card (%s): mount in state %s", w.lang, w.State())
	}
	return host, nil
}

// Destroy tears the card's line elements down through the delegate.
func (w *CodeCard) Destroy() {
	w.destroy(func(host preview.Element) {
		if host != nil {
			host.Clear()
			host.Remove()
		}
	})
}

// detectLanguage guesses a language tag for untagged fences.
func detectLanguage(code string) string {
	if strings.TrimSpace(code) == "" {
		return "text"
	}

	content := []byte(code)
	if lang, ok := enry.GetLanguageByShebang(content); ok {
		return strings.ToLower(lang)
	}

	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript",
		"Rust", "C", "C++", "Java", "SQL", "JSON", "YAML", "HTML", "CSS",
	}
	if lang, ok := enry.GetLanguageByClassifier(content, candidates); ok && lang != "" {
		return strings.ToLower(lang)
	}
	return "text"
}

package service

import (
	"fmt"
	"strings"
)

const unsupportedFormat = "// Code generation for %s is not implemented yet."

// Renderer turns a ToolSpec into a placeholder source skeleton.
// It holds no state and is safe for concurrent use.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render never fails: missing fields take defaults and unknown languages
// produce a single placeholder line.
func (r *Renderer) Render(spec ToolSpec) string {
	spec.SetDefaults()

	var t target
	switch lang := ParseLanguage(spec.Language).(type) {
	case Python:
		t = lang
	case JavaScript:
		t = lang
	case Unsupported:
		return fmt.Sprintf(unsupportedFormat, lang.Value)
	default:
		return fmt.Sprintf(unsupportedFormat, spec.Language)
	}

	width := t.indentWidth()
	if spec.CodeStyle == CodeStyleCompact {
		width /= 2
	}
	l := layout{indent: strings.Repeat(" ", width)}
	if spec.IncludeComments {
		l.marker = t.commentToken() + " "
	}

	text := l.format(t.lines(newTemplate(spec)))
	if spec.CodeStyle == CodeStyleVerbose {
		text = annotate(text, t.definitionPrefixes(), l.marker)
	}
	return strings.TrimSpace(dedent(text))
}

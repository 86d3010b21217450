package service

import "strings"

// Line is one slot of a skeleton. Depth counts indentation levels and
// Comment lines get the target's comment marker when comments are enabled.
type Line struct {
	Depth   int
	Text    string
	Comment bool
}

func blank() Line                      { return Line{} }
func code(depth int, text string) Line { return Line{Depth: depth, Text: text} }
func comment(depth int, text string) Line {
	return Line{Depth: depth, Text: text, Comment: true}
}

// Template holds the values every target substitutes into its skeleton
type Template struct {
	Name        string
	Description string
	Frameworks  []string
	InputType   string
	OutputType  string
	Features    []string
}

func newTemplate(spec ToolSpec) Template {
	return Template{
		Name:        spec.Name,
		Description: spec.Description,
		Frameworks:  splitList(spec.Frameworks),
		InputType:   spec.InputType,
		OutputType:  spec.OutputType,
		Features:    nonEmpty(splitList(spec.AdditionalFeatures)),
	}
}

// listLiteral wraps each token in double quotes without escaping it
func listLiteral(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = `"` + t + `"`
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func featureLines(features []string) []Line {
	lines := make([]Line, 0, len(features))
	for _, f := range features {
		lines = append(lines, comment(0, "- "+f))
	}
	return lines
}

type layout struct {
	indent string
	marker string
}

func (l layout) format(lines []Line) string {
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line.Text == "" && !line.Comment {
			continue
		}
		b.WriteString(strings.Repeat(l.indent, line.Depth))
		if line.Comment {
			b.WriteString(l.marker)
		}
		b.WriteString(line.Text)
	}
	return b.String()
}

package service

import "strings"

const (
	DefaultToolName    = "MyTool"
	DefaultDescription = "A custom tool"
	DefaultLanguage    = "python"
	DefaultIOType      = "string"
)

// CodeStyle selects indentation width and whether the verbose pass runs
type CodeStyle string

const (
	CodeStyleStandard CodeStyle = "standard"
	CodeStyleCompact  CodeStyle = "compact"
	CodeStyleVerbose  CodeStyle = "verbose"
)

// ParseCodeStyle resolves unknown or empty values to CodeStyleStandard
func ParseCodeStyle(s string) CodeStyle {
	switch CodeStyle(s) {
	case CodeStyleCompact, CodeStyleVerbose:
		return CodeStyle(s)
	default:
		return CodeStyleStandard
	}
}

// Field marks a ToolSpec field as explicitly provided
type Field uint16

const (
	FieldName Field = 1 << iota
	FieldDescription
	FieldLanguage
	FieldFrameworks
	FieldInputType
	FieldOutputType
	FieldAdditionalFeatures
	FieldIncludeComments
	FieldCodeStyle
)

// ToolSpec describes the tool whose skeleton should be generated.
// Empty fields are replaced by defaults in SetDefaults unless their bit is
// set in Explicit, in which case the empty value is substituted as is.
type ToolSpec struct {
	Name               string
	Description        string
	Language           string
	Frameworks         string
	InputType          string
	OutputType         string
	AdditionalFeatures string
	IncludeComments    bool
	CodeStyle          CodeStyle
	Explicit           Field
}

func (s *ToolSpec) SetDefaults() {
	defaultString(&s.Name, DefaultToolName, s.Explicit&FieldName != 0)
	defaultString(&s.Description, DefaultDescription, s.Explicit&FieldDescription != 0)
	defaultString(&s.Language, DefaultLanguage, s.Explicit&FieldLanguage != 0)
	defaultString(&s.InputType, DefaultIOType, s.Explicit&FieldInputType != 0)
	defaultString(&s.OutputType, DefaultIOType, s.Explicit&FieldOutputType != 0)
	s.CodeStyle = ParseCodeStyle(string(s.CodeStyle))
}

func defaultString(v *string, def string, explicit bool) {
	if *v == "" && !explicit {
		*v = def
	}
}

// splitList splits a comma separated value, keeping empty tokens.
// An empty input yields no tokens at all.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func nonEmpty(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

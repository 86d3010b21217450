package service

// Language is the closed set of generation targets: Python, JavaScript
// and Unsupported. Only types in this package can implement it.
type Language interface {
	Name() string
	isLanguage()
}

// Python targets a class skeleton with a guarded __main__ block
type Python struct{}

// JavaScript targets an ES class skeleton with a top-level instantiation
type JavaScript struct{}

// Unsupported carries the requested language verbatim
type Unsupported struct {
	Value string
}

func (Python) Name() string        { return "python" }
func (JavaScript) Name() string    { return "javascript" }
func (u Unsupported) Name() string { return u.Value }

func (Python) isLanguage()      {}
func (JavaScript) isLanguage()  {}
func (Unsupported) isLanguage() {}

// ParseLanguage matches exactly and case-sensitively
func ParseLanguage(s string) Language {
	switch s {
	case "python":
		return Python{}
	case "javascript":
		return JavaScript{}
	default:
		return Unsupported{Value: s}
	}
}

// target is the rendering strategy of a supported language
type target interface {
	Language
	commentToken() string
	indentWidth() int
	definitionPrefixes() []string
	lines(t Template) []Line
}

var (
	_ target = Python{}
	_ target = JavaScript{}
)

// IsSupported reports whether l renders a full skeleton
func IsSupported(l Language) bool {
	_, ok := l.(target)
	return ok
}

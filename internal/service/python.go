package service

import "fmt"

func (Python) commentToken() string { return "#" }
func (Python) indentWidth() int     { return 2 }

func (Python) definitionPrefixes() []string {
	return []string{"class ", "def ", "if __name__"}
}

func (Python) lines(t Template) []Line {
	lines := []Line{
		comment(0, t.Name),
		comment(0, t.Description),
		blank(),
		code(0, fmt.Sprintf("class %s:", t.Name)),
		code(1, "def __init__(self):"),
		code(2, "self.frameworks = "+listLiteral(t.Frameworks)),
		blank(),
		code(1, fmt.Sprintf("def process_input(self, input_data: %s) -> %s:", t.InputType, t.OutputType)),
		comment(2, "TODO: Implement input processing logic"),
		code(2, "pass"),
		blank(),
		code(1, fmt.Sprintf("def generate_output(self) -> %s:", t.OutputType)),
		comment(2, "TODO: Implement output generation logic"),
		code(2, "pass"),
		blank(),
		comment(0, "Additional features:"),
	}
	lines = append(lines, featureLines(t.Features)...)
	return append(lines,
		blank(),
		code(0, `if __name__ == "__main__":`),
		code(1, fmt.Sprintf("tool = %s()", t.Name)),
		comment(1, "TODO: Add main execution logic here"),
	)
}

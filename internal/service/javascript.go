package service

import "fmt"

func (JavaScript) commentToken() string { return "//" }
func (JavaScript) indentWidth() int     { return 4 }

func (JavaScript) definitionPrefixes() []string {
	return []string{"class ", "constructor(", "processInput(", "generateOutput(", "function "}
}

func (JavaScript) lines(t Template) []Line {
	lines := []Line{
		comment(0, t.Name),
		comment(0, t.Description),
		blank(),
		code(0, fmt.Sprintf("class %s {", t.Name)),
		code(1, "constructor() {"),
		code(2, fmt.Sprintf("this.frameworks = %s;", listLiteral(t.Frameworks))),
		code(1, "}"),
		blank(),
		code(1, "processInput(inputData) {"),
		comment(2, "TODO: Implement input processing logic"),
		code(1, "}"),
		blank(),
		code(1, "generateOutput() {"),
		comment(2, "TODO: Implement output generation logic"),
		code(1, "}"),
		code(0, "}"),
		blank(),
		comment(0, "Additional features:"),
	}
	lines = append(lines, featureLines(t.Features)...)
	return append(lines,
		blank(),
		comment(0, "Main execution"),
		code(0, fmt.Sprintf("const tool = new %s();", t.Name)),
		comment(0, "TODO: Add main execution logic here"),
	)
}

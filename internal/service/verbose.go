package service

import "strings"

// verboseNotes are consumed in order, one per definition line
var verboseNotes = [...]string{
	"Defines the primary structure of the tool.",
	"Sets up the state the tool depends on.",
	"Handles the incoming data for the tool.",
	"Builds the result returned by the tool.",
	"Runs the tool when executed directly.",
	"Extends the tool with additional behavior.",
}

// annotate inserts a note above every line whose trimmed text starts with
// one of prefixes, until verboseNotes runs out. Matching is by prefix only,
// so nested definitions count as well.
func annotate(text string, prefixes []string, marker string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines)+len(verboseNotes))
	next := 0
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if next < len(verboseNotes) && hasAnyPrefix(trimmed, prefixes) {
			indent := line[:len(line)-len(trimmed)]
			out = append(out, indent+marker+verboseNotes[next])
			next++
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

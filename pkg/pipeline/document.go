package pipeline

import "strings"

// Document is the text of a pipeline file, split into lines.
type Document struct {
	Path  string
	Text  string
	Lines []string
}

// NewDocument splits text into lines. "\n" and "\r\n" both end a line and a
// trailing line break does not start a new, empty line.
func NewDocument(path, text string) *Document {
	var lines []string
	if text != "" {
		lines = strings.Split(strings.TrimSuffix(text, "\n"), "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return &Document{Path: path, Text: text, Lines: lines}
}

// eachLine calls fn with every line and its 1-based number.
func (d *Document) eachLine(fn func(number int, line string)) {
	for i, line := range d.Lines {
		fn(i+1, line)
	}
}

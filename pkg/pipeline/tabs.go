package pipeline

import (
	"strings"

	"github.com/pto-track/pipecheck/pkg/logger"
)

var tabsLog = logger.New("pipeline:tabs")

// checkTabs warns about every line containing a horizontal tab.
func checkTabs(doc *Document) []Finding {
	var findings []Finding
	doc.eachLine(func(number int, line string) {
		if strings.Contains(line, "\t") {
			findings = append(findings, newLineFinding(SeverityWarning, number, "TAB character found (YAML prefers spaces)."))
		}
	})
	tabsLog.Printf("Tab scan complete: lines=%d, warnings=%d", len(doc.Lines), len(findings))
	return findings
}

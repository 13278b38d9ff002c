package pipeline

import (
	"strings"

	"github.com/pto-track/pipecheck/pkg/constants"
	"github.com/pto-track/pipecheck/pkg/logger"
)

var conditionsLog = logger.New("pipeline:conditions")

// checkConditions reports condition lines whose parentheses do not balance.
// Only the text after the first marker on the same physical line is counted.
func checkConditions(doc *Document) []Finding {
	var findings []Finding
	doc.eachLine(func(number int, line string) {
		_, condition, found := strings.Cut(line, constants.ConditionMarker)
		if !found {
			return
		}
		opens := strings.Count(condition, "(")
		closes := strings.Count(condition, ")")
		if opens != closes {
			conditionsLog.Printf("Unbalanced condition on line %d: opens=%d, closes=%d", number, opens, closes)
			findings = append(findings, newLineFinding(SeverityError, number, "Unbalanced parentheses in condition: %s", strings.TrimSpace(condition)))
		}
	})
	return findings
}

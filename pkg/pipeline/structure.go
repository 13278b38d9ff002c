package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/pto-track/pipecheck/pkg/logger"
)

var structureLog = logger.New("pipeline:structure")

// errMultipleDocuments mirrors the message YAML loaders give for a stream
// that holds more than one document where one is expected.
var errMultipleDocuments = errors.New("expected a single document in the stream")

// parseErrorPosition matches the "[line:column]" prefix of goccy/go-yaml errors.
var parseErrorPosition = regexp.MustCompile(`^\[(\d+):(\d+)\]`)

// DocumentParser turns pipeline text into a YAML syntax tree.
// The tree must carry source positions for its nodes.
type DocumentParser interface {
	Parse(src []byte) (*ast.File, error)
}

// YAMLParser is the goccy/go-yaml backed DocumentParser.
//
// The parser's built-in duplicate key rejection is switched off; duplicates
// are detected by the key guard so that every mapping is checked the same
// way and the report names the key and line.
type YAMLParser struct{}

// Parse implements DocumentParser.
func (YAMLParser) Parse(src []byte) (*ast.File, error) {
	return parser.ParseBytes(src, 0, parser.AllowDuplicateMapKey())
}

// checkStructure parses the document and runs the duplicate key guard.
// The first failure, of either kind, becomes the only finding.
func checkStructure(p DocumentParser, doc *Document) []Finding {
	file, err := p.Parse([]byte(doc.Text))
	if err == nil {
		err = guardDocuments(file)
	}
	if err == nil {
		structureLog.Print("Structural parse complete: no errors")
		return nil
	}

	structureLog.Printf("Structural parse failed: %v", err)
	message, line := describeParseError(err)
	return []Finding{{
		Severity: SeverityError,
		Line:     line,
		Message:  "YAML parse error: " + message,
	}}
}

// describeParseError reduces a parser error to one line and its 1-based
// source line, when known.
func describeParseError(err error) (string, int) {
	var dup *DuplicateKeyError
	if errors.As(err, &dup) {
		return dup.Error(), dup.Line
	}

	message := strings.TrimSpace(err.Error())
	if first, _, ok := strings.Cut(message, "\n"); ok {
		message = strings.TrimSpace(first)
	}

	line := 0
	if m := parseErrorPosition.FindStringSubmatch(message); m != nil {
		line, _ = strconv.Atoi(m[1])
	}
	return message, line
}

// guardDocuments runs the key guard over every document of the stream.
func guardDocuments(file *ast.File) error {
	if file == nil {
		return nil
	}

	bodies := 0
	for _, doc := range file.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}
		bodies++
		if bodies > 1 {
			return errMultipleDocuments
		}
		if err := guardNode(doc.Body); err != nil {
			return err
		}
	}
	return nil
}

// guardNode walks node depth-first in document order. Within a mapping each
// key is checked before its value is descended into, so the reported
// duplicate is the first one a loader building the tree would meet.
func guardNode(node ast.Node) error {
	switch n := node.(type) {
	case *ast.MappingNode:
		return guardMapping(n.Values)
	case *ast.MappingValueNode:
		return guardMapping([]*ast.MappingValueNode{n})
	case *ast.SequenceNode:
		for _, value := range n.Values {
			if err := guardNode(value); err != nil {
				return err
			}
		}
	case *ast.TagNode:
		return guardNode(n.Value)
	case *ast.AnchorNode:
		return guardNode(n.Value)
	case *ast.DocumentNode:
		return guardNode(n.Body)
	}
	return nil
}

func guardMapping(values []*ast.MappingValueNode) error {
	seen := make(map[string]struct{}, len(values))
	for _, mv := range values {
		if mv == nil {
			continue
		}
		if _, merge := mv.Key.(*ast.MergeKeyNode); !merge && mv.Key != nil {
			id, display := keyIdentity(mv.Key)
			if _, dup := seen[id]; dup {
				line := 0
				if tk := mv.Key.GetToken(); tk != nil && tk.Position != nil {
					line = tk.Position.Line
				}
				structureLog.Printf("Duplicate key %q at line %d", display, line)
				return &DuplicateKeyError{Key: display, Line: line}
			}
			seen[id] = struct{}{}
		}
		if err := guardNode(mv.Value); err != nil {
			return err
		}
	}
	return nil
}

// keyIdentity returns the identity of a key's constructed value and the text
// used to name it. Keys are equal when they construct to the same typed
// value: "1" and 1 differ, true and True do not.
func keyIdentity(node ast.Node) (id string, display string) {
	switch n := node.(type) {
	case nil:
		return "null:", "null"
	case *ast.StringNode:
		return "str:" + n.Value, n.Value
	case *ast.LiteralNode:
		if n.Value != nil {
			return "str:" + n.Value.Value, n.Value.Value
		}
	case *ast.IntegerNode:
		text := fmt.Sprint(n.Value)
		return "int:" + text, text
	case *ast.FloatNode:
		text := strconv.FormatFloat(n.Value, 'g', -1, 64)
		return "float:" + text, text
	case *ast.BoolNode:
		text := strconv.FormatBool(n.Value)
		return "bool:" + text, text
	case *ast.NullNode:
		return "null:", "null"
	case *ast.TagNode:
		return keyIdentity(n.Value)
	case *ast.AnchorNode:
		return keyIdentity(n.Value)
	case *ast.MappingKeyNode:
		return keyIdentity(n.Value)
	}
	text := node.String()
	return "node:" + text, text
}

package parser

import (
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/fplint/pkg/token"
)

// ErrFileTooLarge is returned when the source exceeds the configured size limit.
var ErrFileTooLarge = errors.New("file too large")

// SyntaxError reports the first syntax error found in a source file.
type SyntaxError struct {
	Pos     token.Position
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages
const (
	errUnexpected = "unexpected %q"
	errMissing    = "missing %s"
	errUnknown    = "invalid syntax"
)

func newSyntaxError(root *sitter.Node, source []byte) *SyntaxError {
	bad := firstErrorNode(root)
	if bad == nil {
		return &SyntaxError{Pos: startPos(root), Message: errUnknown}
	}

	msg := errUnknown
	switch {
	case bad.IsMissing():
		msg = fmt.Sprintf(errMissing, bad.Type())
	case bad.IsError():
		text := bad.Content(source)
		if len(text) > 20 {
			text = text[:20] + "..."
		}
		if text != "" {
			msg = fmt.Sprintf(errUnexpected, text)
		}
	}
	return &SyntaxError{Pos: startPos(bad), Message: msg}
}

// firstErrorNode finds the first ERROR or MISSING node in source order.
func firstErrorNode(n *sitter.Node) *sitter.Node {
	if n == nil {
		return nil
	}
	if n.IsError() || n.IsMissing() {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if found := firstErrorNode(n.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

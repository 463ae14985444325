// Package parser turns JavaScript and TypeScript source into jsast trees using tree-sitter.
//
// The lint engine never parses; this package is the host side that produces the
// read-only, parent-linked tree the rules inspect.
package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/leapstack-labs/fplint/pkg/jsast"
)

// Language selects the tree-sitter grammar.
type Language string

// Supported grammars.
const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageTSX        Language = "tsx"
)

// DefaultMaxFileSize bounds the size of a single source file.
const DefaultMaxFileSize = 10 * 1024 * 1024

// Extensions lists every file extension the parser understands.
var Extensions = []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".mts", ".cts", ".tsx"}

// LanguageForPath returns the grammar for a file based on its extension.
// Unknown extensions fall back to JavaScript.
func LanguageForPath(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsx":
		return LanguageTSX
	case ".ts", ".mts", ".cts":
		return LanguageTypeScript
	default:
		return LanguageJavaScript
	}
}

// IsSourceFile reports whether path has a supported extension.
func IsSourceFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Parser converts source text into jsast trees.
// A Parser is safe for concurrent use; each Parse call creates its own tree-sitter parser.
type Parser struct {
	maxFileSize int
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxFileSize sets the largest accepted source size in bytes.
func WithMaxFileSize(size int) Option {
	return func(p *Parser) {
		p.maxFileSize = size
	}
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{maxFileSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses source with the default parser.
func Parse(ctx context.Context, source []byte, lang Language) (*jsast.Node, error) {
	return New().Parse(ctx, source, lang)
}

// ParseString is a convenience wrapper for JavaScript source held in a string.
func ParseString(source string) (*jsast.Node, error) {
	return Parse(context.Background(), []byte(source), LanguageJavaScript)
}

// Parse converts source into a parent-linked Program node.
// When the source contains syntax errors the converted tree is returned together
// with a *SyntaxError describing the first one.
func (p *Parser) Parse(ctx context.Context, source []byte, lang Language) (*jsast.Node, error) {
	if p.maxFileSize > 0 && len(source) > p.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, len(source), p.maxFileSize)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	tsParser := sitter.NewParser()
	tsParser.SetLanguage(grammar(lang))

	tree, err := tsParser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	c := &converter{src: source}
	program := jsast.Link(c.convert(root))

	if root.HasError() {
		return program, newSyntaxError(root, source)
	}
	return program, nil
}

func grammar(lang Language) *sitter.Language {
	switch lang {
	case LanguageTypeScript:
		return typescript.GetLanguage()
	case LanguageTSX:
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

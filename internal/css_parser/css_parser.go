// Package css_parser is the Parser: it consumes a token cursor from
// internal/css_lexer plus a ParserOptions record and produces a
// css_ast.SelectorList. The full stylesheet/at-rule/declaration engine
// this parser would sit inside in a real compiler is an external
// collaborator and is not reimplemented here.
package css_parser

import (
	"fmt"
	"strings"

	"github.com/vladinator1000/cssselect/internal/css_ast"
	"github.com/vladinator1000/cssselect/internal/css_lexer"
	"github.com/vladinator1000/cssselect/internal/logger"
)

// CSSModulesConfig enables the ":local()"/":global()" functional
// pseudo-classes. Pattern and DashedIdents are carried only for
// attribution to the (external) identifier-renaming table; neither
// affects selector parsing itself.
type CSSModulesConfig struct {
	Pattern      string
	DashedIdents bool
}

// Options is the ParserOptions record.
type Options struct {
	Nesting       bool
	CustomMedia   bool // consumed elsewhere; inert to this subsystem
	CSSModules    *CSSModulesConfig
	ErrorRecovery bool
	Filename      string
}

type parser struct {
	log      logger.Log
	source   string
	filename string
	tokens   []css_lexer.Token
	index    int
	options  Options
}

// Parse tokenizes contents and parses it as a top-level, comma-separated
// selector list. Ok is false if a syntactic error aborted the parse;
// diagnostics (including demoted warnings) are reported through log.
func Parse(log logger.Log, filename string, contents string, options Options) (css_ast.SelectorList, bool) {
	tokens := css_lexer.Tokenize(log, filename, contents).Tokens
	p := &parser{log: log, source: contents, filename: filename, tokens: tokens, options: options}
	p.skipWhitespace()
	list, ok := p.parseSelectorList(selectorListOpts{})
	if !ok {
		return css_ast.SelectorList{}, false
	}
	p.skipWhitespace()
	if !p.peek(css_lexer.TEndOfFile) {
		p.unexpected()
		return css_ast.SelectorList{}, false
	}
	return css_ast.SelectorList{Selectors: list}, true
}

// ---- token cursor ----

func (p *parser) at(index int) css_lexer.Token {
	if index < len(p.tokens) {
		return p.tokens[index]
	}
	return css_lexer.Token{Kind: css_lexer.TEndOfFile}
}

func (p *parser) current() css_lexer.Token { return p.at(p.index) }

func (p *parser) advance() {
	if p.index < len(p.tokens) {
		p.index++
	}
}

func (p *parser) peek(kind css_lexer.T) bool { return p.current().Kind == kind }

func (p *parser) eat(kind css_lexer.T) bool {
	if p.peek(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(kind css_lexer.T) bool {
	if p.eat(kind) {
		return true
	}
	p.unexpected()
	return false
}

func (p *parser) decoded() string {
	return p.current().DecodedText(p.source)
}

func (p *parser) unexpected() {
	t := p.current()
	if t.Kind == css_lexer.TEndOfFile {
		p.log.AddError(t.Range, p.filename, "Unexpected end of input")
	} else {
		raw := p.source[t.Range.Loc.Start:t.Range.End()]
		p.log.AddError(t.Range, p.filename, fmt.Sprintf("Unexpected %q", raw))
	}
}

// warnUnsupportedPseudo demotes an unrecognized pseudo-class/element name
// to a warning: the syntax is still valid, it's just unrecognized, so
// parsing always continues with a Custom/CustomFunction component
// regardless of this diagnostic. Only names that don't begin with "-"
// warn (a leading dash reads as an intentional, if unrecognized,
// vendor-prefixed extension), and only when ErrorRecovery opted in to
// surfacing the diagnostic at all.
func (p *parser) warnUnsupportedPseudo(r logger.Range, name string) {
	if strings.HasPrefix(name, "-") || !p.options.ErrorRecovery {
		return
	}
	p.log.AddWarningWithID(logger.MsgID_CSS_UnsupportedPseudoClassOrElement, r, p.filename,
		fmt.Sprintf("Unsupported pseudo-class or pseudo-element %q", name))
}

func (p *parser) skipWhitespace() bool {
	had := false
	for p.peek(css_lexer.TWhitespace) {
		p.advance()
		had = true
	}
	return had
}

func (p *parser) isSelectorBoundary() bool {
	switch p.current().Kind {
	case css_lexer.TEndOfFile, css_lexer.TComma, css_lexer.TCloseParen, css_lexer.TOpenBrace:
		return true
	}
	return false
}

func (p *parser) tryCombinator() (css_ast.Combinator, bool) {
	switch p.current().Kind {
	case css_lexer.TDelimGreaterThan:
		p.advance()
		return css_ast.Child, true
	case css_lexer.TDelimPlus:
		p.advance()
		return css_ast.NextSibling, true
	case css_lexer.TDelimTilde:
		p.advance()
		return css_ast.LaterSibling, true
	}
	return 0, false
}

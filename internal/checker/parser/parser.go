package parser

import (
	"fmt"
	"strings"

	"github.com/arnavsurve/minipas/internal/checker/scope"
	"github.com/arnavsurve/minipas/internal/checker/symbols"
	"github.com/arnavsurve/minipas/internal/checker/token"
)

// blockKind tags an open compound statement on the block stack.
type blockKind int

const (
	blockWhile blockKind = iota
	blockIf
	blockBegin
)

func (k blockKind) String() string {
	switch k {
	case blockWhile:
		return "while"
	case blockIf:
		return "if"
	case blockBegin:
		return "begin"
	}
	return "unknown"
}

// Parser validates one token sequence: a declaration section between 'var'
// and 'begin', then a statement section closed by the matching 'end'. Each
// phase is fail-fast: the first defect aborts that phase, so a run carries at
// most one diagnostic per phase.
type Parser struct {
	tokens []token.Token
	pos    int

	table  *scope.Table
	blocks []blockKind // open-block stack, LIFO

	errors     []string
	terminated bool // statement section consumed its closing 'end'
}

func NewParser(tokens []token.Token) *Parser {
	return &Parser{
		tokens: tokens,
		table:  scope.NewTable(),
		errors: []string{},
	}
}

// --- Token Handling ---

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Type: token.TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) advance() {
	p.pos++
}

// curLiteralOrNone names the current token in a diagnostic, or "none" when
// the stream is exhausted.
func (p *Parser) curLiteralOrNone() string {
	if p.atEnd() {
		return "none"
	}
	return p.cur().Literal
}

// --- Error Handling ---

func (p *Parser) addErrorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *Parser) Errors() []string {
	return p.errors
}

// SymbolTable exposes the table built by the declaration phase.
func (p *Parser) SymbolTable() *scope.Table {
	return p.table
}

// Terminated reports whether the statement section consumed the 'end' that
// closes it.
func (p *Parser) Terminated() bool {
	return p.terminated
}

// --- Program Validation ---

// Parse validates the whole token sequence. Phase ordering: leading 'var',
// declarations, 'begin', statements, terminating 'end'. A phase only runs if
// every phase before it was clean.
func (p *Parser) Parse() {
	if p.cur().Type != token.TokenVar {
		p.addErrorf("Program must start with 'var'")
		return
	}
	p.advance() // consume 'var'

	p.parseDeclarations()
	if len(p.errors) > 0 {
		return
	}
	if p.cur().Type != token.TokenBegin {
		p.addErrorf("Missing 'begin' after definition body")
		return
	}
	p.advance() // consume 'begin'

	p.parseStatements()
	if len(p.errors) == 0 && !p.terminated {
		p.addErrorf("Missing 'end' at program termination")
	}
}

// --- Declaration Section ---

// parseDeclarations consumes declarations up to 'begin', populating the
// symbol table. Each declaration is a comma-separated identifier list, a
// colon, one of the three type keywords, and a semicolon.
func (p *Parser) parseDeclarations() {
	for !p.atEnd() && p.cur().Type != token.TokenBegin {
		tok := p.cur()
		if tok.Type == token.TokenError {
			p.addErrorf("Invalid identifier: %s", tok.Literal)
			return
		}
		if tok.Type != token.TokenIdent {
			p.addErrorf("Expected identifier, found: %s", tok.Literal)
			return
		}
		names := []string{tok.Literal}
		p.advance()

		for p.cur().Type == token.TokenComma {
			p.advance()
			if p.cur().Type != token.TokenIdent {
				p.addErrorf("Expected identifier after comma")
				return
			}
			names = append(names, p.cur().Literal)
			p.advance()
		}
		if p.cur().Type == token.TokenIdent {
			p.addErrorf("Missing comma between identifiers")
			return
		}

		if p.cur().Type != token.TokenColon {
			p.addErrorf("Missing ':' after variable(s)")
			return
		}
		p.advance()

		if p.atEnd() || !p.cur().IsTypeKeyword() {
			p.addErrorf("Expected type (integer, longint, bool), found: %s", p.curLiteralOrNone())
			return
		}
		varType := symbols.VarType(strings.ToLower(p.cur().Literal))
		p.advance()

		// Insert in source order; the first conflict aborts, leaving the
		// identifiers before it defined. Partial batches are not rolled back.
		for _, name := range names {
			if err := p.table.Define(name, symbols.SymbolInfo{Type: varType}); err != nil {
				p.addErrorf("Repeated definition of variable: %s", name)
				return
			}
		}

		if p.cur().Type != token.TokenSemicolon {
			p.addErrorf("Missing ';' after variable declaration")
			return
		}
		p.advance()
	}
}

// --- Statement Section ---

// parseStatements validates the realization body. The section's own 'begin'
// seeds the block stack, so the 'end' whose pop empties the stack is the
// section terminator. Every other popped 'end' must be followed by ';'.
func (p *Parser) parseStatements() {
	p.blocks = []blockKind{blockBegin}

	for !p.atEnd() {
		tok := p.cur()
		switch tok.Type {
		case token.TokenError:
			p.addErrorf("Invalid token in realization: %s", tok.Literal)
			return

		case token.TokenIdent:
			if !p.parseAssignment() {
				return
			}

		case token.TokenWhile:
			p.advance()
			p.blocks = append(p.blocks, blockWhile)
			if !p.parseCondition("while") {
				return
			}
			if p.cur().Type != token.TokenDo {
				p.addErrorf("Missing 'do' after 'while' condition")
				return
			}
			p.advance()

		case token.TokenIf:
			p.advance()
			p.blocks = append(p.blocks, blockIf)
			if !p.parseCondition("if") {
				return
			}
			if p.cur().Type != token.TokenThen {
				p.addErrorf("Missing 'then' after 'if' condition")
				return
			}
			p.advance()

		case token.TokenBegin:
			p.blocks = append(p.blocks, blockBegin)
			p.advance()

		case token.TokenEnd:
			if len(p.blocks) == 0 {
				p.addErrorf("Unmatched 'end'")
				return
			}
			kind := p.blocks[len(p.blocks)-1]
			p.blocks = p.blocks[:len(p.blocks)-1]
			p.advance()
			if len(p.blocks) == 0 {
				// This 'end' closes the statement section. No trailing
				// semicolon at this level.
				p.terminated = true
				return
			}
			if p.cur().Type != token.TokenSemicolon {
				p.addErrorf("Missing ';' after 'end' of %s block", kind)
				return
			}
			p.advance()

		case token.TokenElse:
			// 'else' is positional: legal only while the innermost open
			// block is an 'if'.
			if len(p.blocks) == 0 || p.blocks[len(p.blocks)-1] != blockIf {
				p.addErrorf("'else' without matching 'if'")
				return
			}
			p.advance()

		default:
			// Includes 'for', which is lexed but never part of the grammar.
			p.addErrorf("Unexpected token in realization: %s", tok.Literal)
			return
		}
	}

	if len(p.blocks) > 0 {
		p.addErrorf("Missing 'end' to close %s block", p.blocks[len(p.blocks)-1])
	}
}

// parseAssignment validates 'ident := (number | ident) ;'. Both sides must
// name declared variables.
func (p *Parser) parseAssignment() bool {
	name := p.cur().Literal
	if _, ok := p.table.Lookup(name); !ok {
		p.addErrorf("Undefined variable: %s", name)
		return false
	}
	p.advance()

	if p.cur().Type != token.TokenAssign {
		p.addErrorf("Missing ':=' after identifier: %s", name)
		return false
	}
	p.advance()

	if p.atEnd() || (p.cur().Type != token.TokenNumber && p.cur().Type != token.TokenIdent) {
		p.addErrorf("Expected number or identifier after ':=', found: %s", p.curLiteralOrNone())
		return false
	}
	if p.cur().Type == token.TokenIdent {
		if _, ok := p.table.Lookup(p.cur().Literal); !ok {
			p.addErrorf("Undefined variable in assignment: %s", p.cur().Literal)
			return false
		}
	}
	p.advance()

	if p.cur().Type != token.TokenSemicolon {
		p.addErrorf("Missing ';' after assignment")
		return false
	}
	p.advance()
	return true
}

// parseCondition consumes '(' and the opaque balanced-parenthesis span after
// a 'while' or 'if', through the matching ')'. Tokens inside the span are
// not checked against any grammar.
func (p *Parser) parseCondition(construct string) bool {
	if p.cur().Type != token.TokenLParen {
		p.addErrorf("Missing '(' after '%s'", construct)
		return false
	}
	p.advance()

	depth := 1
	for !p.atEnd() && depth > 0 {
		switch p.cur().Type {
		case token.TokenLParen:
			depth++
		case token.TokenRParen:
			depth--
		}
		p.advance()
	}
	if depth > 0 {
		p.addErrorf("Unclosed condition in '%s' statement", construct)
		return false
	}
	return true
}

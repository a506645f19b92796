package lexer

import (
	"strings"

	"github.com/arnavsurve/minipas/internal/checker/token"
)

type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokenize scans the whole source and returns the token sequence. The EOF
// sentinel is not included; an empty source yields an empty slice.
func Tokenize(input string) []token.Token {
	l := NewLexer(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.TokenEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// readChar advances the lexer's position and updates the current character.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NULL (EOF)
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++
}

// Returns the next character without consuming it
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	switch {
	case l.ch == 0:
		return token.Token{Type: token.TokenEOF, Literal: ""}
	case isLetter(l.ch):
		return l.readWord()
	case isDigit(l.ch):
		return l.readNumber()
	default:
		return l.readOperator()
	}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\n' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// readWord consumes a maximal run bounded by whitespace and delimiter
// characters, then classifies it as a keyword, an identifier, or an Error
// token carrying the raw run. Keyword matching folds case; the literal keeps
// the original spelling.
func (l *Lexer) readWord() token.Token {
	start := l.position
	for l.ch != 0 && !isWhitespace(l.ch) && !isDelimiter(l.ch) {
		l.readChar()
	}
	run := l.input[start:l.position]

	if tokType, ok := keywords[strings.ToLower(run)]; ok {
		return token.Token{Type: tokType, Literal: run}
	}

	// An identifier must start with a letter and contain only letters and
	// digits. Anything else in the run makes the whole run an Error token —
	// tokenization continues past it.
	if !isLetter(run[0]) {
		return token.Token{Type: token.TokenError, Literal: run}
	}
	for i := 0; i < len(run); i++ {
		if !isLetter(run[i]) && !isDigit(run[i]) {
			return token.Token{Type: token.TokenError, Literal: run}
		}
	}

	return token.Token{Type: token.TokenIdent, Literal: run}
}

func (l *Lexer) readNumber() token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.TokenNumber, Literal: l.input[start:l.position]}
}

// readOperator recognizes operators and delimiters by maximal munch with one
// character of lookahead. A lone '=' is not a valid token and becomes an
// Error, as does any unrecognized character.
func (l *Lexer) readOperator() token.Token {
	ch := l.ch
	switch ch {
	case '+':
		l.readChar()
		return token.Token{Type: token.TokenPlus, Literal: "+"}
	case '-':
		l.readChar()
		return token.Token{Type: token.TokenMinus, Literal: "-"}
	case '*':
		l.readChar()
		return token.Token{Type: token.TokenAsterisk, Literal: "*"}
	case '/':
		l.readChar()
		return token.Token{Type: token.TokenSlash, Literal: "/"}
	case ';':
		l.readChar()
		return token.Token{Type: token.TokenSemicolon, Literal: ";"}
	case '(':
		l.readChar()
		return token.Token{Type: token.TokenLParen, Literal: "("}
	case ')':
		l.readChar()
		return token.Token{Type: token.TokenRParen, Literal: ")"}
	case ',':
		l.readChar()
		return token.Token{Type: token.TokenComma, Literal: ","}
	case ':':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.TokenAssign, Literal: ":="}
		}
		l.readChar()
		return token.Token{Type: token.TokenColon, Literal: ":"}
	case '<':
		switch l.peekChar() {
		case '>':
			l.readChar()
			l.readChar()
			return token.Token{Type: token.TokenNe, Literal: "<>"}
		case '=':
			l.readChar()
			l.readChar()
			return token.Token{Type: token.TokenLe, Literal: "<="}
		}
		l.readChar()
		return token.Token{Type: token.TokenLt, Literal: "<"}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.TokenGe, Literal: ">="}
		}
		l.readChar()
		return token.Token{Type: token.TokenGt, Literal: ">"}
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.TokenEq, Literal: "=="}
		}
		l.readChar()
		// Standalone '=' is invalid; assignment is ':='
		return token.Token{Type: token.TokenError, Literal: "="}
	}
	l.readChar()
	return token.Token{Type: token.TokenError, Literal: string(ch)}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\n' || ch == '\t' || ch == '\r'
}

// isDelimiter reports whether ch terminates an identifier/keyword run.
func isDelimiter(ch byte) bool {
	switch ch {
	case ';', ':', ',', '(', ')', '+', '-', '*', '/', '<', '>', '=':
		return true
	}
	return false
}

// keywords maps case-folded lexemes to their corresponding token types.
var keywords = map[string]token.TokenType{
	"var":     token.TokenVar,
	"integer": token.TokenInteger,
	"longint": token.TokenLongint,
	"bool":    token.TokenBool,
	"if":      token.TokenIf,
	"then":    token.TokenThen,
	"else":    token.TokenElse,
	"while":   token.TokenWhile,
	"do":      token.TokenDo,
	"for":     token.TokenFor,
	"begin":   token.TokenBegin,
	"end":     token.TokenEnd,
	"and":     token.TokenAnd,
	"or":      token.TokenOr,
}

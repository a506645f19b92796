package lexer

import (
	"testing"

	"github.com/arnavsurve/minipas/internal/checker/token"
)

// tokenCase is a single (type, literal) expectation used in table-driven tests.
type tokenCase struct {
	expectedType    token.TokenType
	expectedLiteral string
}

// runCases calls NextToken for each case in want and fails the test on mismatch.
func runCases(t *testing.T, input string, want []tokenCase) {
	t.Helper()
	l := NewLexer(input)
	for i, tc := range want {
		tok := l.NextToken()
		if tok.Type != tc.expectedType {
			t.Errorf("case %d: type mismatch - got %s, want %s (literal %q)", i, tok.Type, tc.expectedType, tok.Literal)
		}
		if tok.Literal != tc.expectedLiteral {
			t.Errorf("case %d: literal mismatch - got %q, want %q", i, tok.Literal, tc.expectedLiteral)
		}
	}
}

func TestLexerKeywords(t *testing.T) {
	input := `var integer longint bool if then else while do for begin end and or`

	want := []tokenCase{
		{token.TokenVar, "var"},
		{token.TokenInteger, "integer"},
		{token.TokenLongint, "longint"},
		{token.TokenBool, "bool"},
		{token.TokenIf, "if"},
		{token.TokenThen, "then"},
		{token.TokenElse, "else"},
		{token.TokenWhile, "while"},
		{token.TokenDo, "do"},
		{token.TokenFor, "for"},
		{token.TokenBegin, "begin"},
		{token.TokenEnd, "end"},
		{token.TokenAnd, "and"},
		{token.TokenOr, "or"},
		{token.TokenEOF, ""},
	}

	runCases(t, input, want)
}

// Keywords match case-insensitively but the token keeps the source spelling.
func TestLexerKeywordCaseFolding(t *testing.T) {
	input := `VAR Begin WHILE eNd`

	want := []tokenCase{
		{token.TokenVar, "VAR"},
		{token.TokenBegin, "Begin"},
		{token.TokenWhile, "WHILE"},
		{token.TokenEnd, "eNd"},
		{token.TokenEOF, ""},
	}

	runCases(t, input, want)
}

func TestLexerOperators(t *testing.T) {
	input := `+ - * / := < > <> >= <= == ; : ( ) ,`

	want := []tokenCase{
		{token.TokenPlus, "+"},
		{token.TokenMinus, "-"},
		{token.TokenAsterisk, "*"},
		{token.TokenSlash, "/"},
		{token.TokenAssign, ":="},
		{token.TokenLt, "<"},
		{token.TokenGt, ">"},
		{token.TokenNe, "<>"},
		{token.TokenGe, ">="},
		{token.TokenLe, "<="},
		{token.TokenEq, "=="},
		{token.TokenSemicolon, ";"},
		{token.TokenColon, ":"},
		{token.TokenLParen, "("},
		{token.TokenRParen, ")"},
		{token.TokenComma, ","},
		{token.TokenEOF, ""},
	}

	runCases(t, input, want)
}

// Maximal munch with one character of lookahead: adjacent operator characters
// pair up greedily, and the next character is left for the following token.
func TestLexerMaximalMunch(t *testing.T) {
	input := `i:=0`

	want := []tokenCase{
		{token.TokenIdent, "i"},
		{token.TokenAssign, ":="},
		{token.TokenNumber, "0"},
		{token.TokenEOF, ""},
	}

	runCases(t, input, want)
}

// A lone '=' is not a token in this language; it becomes an Error token
// without aborting tokenization of the rest of the source.
func TestLexerLoneEquals(t *testing.T) {
	input := `i=0;`

	want := []tokenCase{
		{token.TokenIdent, "i"},
		{token.TokenError, "="},
		{token.TokenNumber, "0"},
		{token.TokenSemicolon, ";"},
		{token.TokenEOF, ""},
	}

	runCases(t, input, want)
}

// An identifier run is bounded only by whitespace and delimiter characters;
// a run containing a non-alphanumeric character becomes a single Error token
// carrying the whole run.
func TestLexerIllegalIdentifierRun(t *testing.T) {
	input := `i#:integer`

	want := []tokenCase{
		{token.TokenError, "i#"},
		{token.TokenColon, ":"},
		{token.TokenInteger, "integer"},
		{token.TokenEOF, ""},
	}

	runCases(t, input, want)
}

// A digit starts a number run; a following letter starts a fresh run. '9i'
// is therefore a Number then an Ident, not one Error token.
func TestLexerDigitThenLetter(t *testing.T) {
	input := `9i:integer`

	want := []tokenCase{
		{token.TokenNumber, "9"},
		{token.TokenIdent, "i"},
		{token.TokenColon, ":"},
		{token.TokenInteger, "integer"},
		{token.TokenEOF, ""},
	}

	runCases(t, input, want)
}

func TestLexerUnknownCharacter(t *testing.T) {
	input := `i := @;`

	want := []tokenCase{
		{token.TokenIdent, "i"},
		{token.TokenAssign, ":="},
		{token.TokenError, "@"},
		{token.TokenSemicolon, ";"},
		{token.TokenEOF, ""},
	}

	runCases(t, input, want)
}

func TestLexerProgram(t *testing.T) {
	input := "Var i,J1:integer;\nBegin\n  i:=0;\n  J1:=i;\nEnd"

	want := []tokenCase{
		{token.TokenVar, "Var"},
		{token.TokenIdent, "i"},
		{token.TokenComma, ","},
		{token.TokenIdent, "J1"},
		{token.TokenColon, ":"},
		{token.TokenInteger, "integer"},
		{token.TokenSemicolon, ";"},
		{token.TokenBegin, "Begin"},
		{token.TokenIdent, "i"},
		{token.TokenAssign, ":="},
		{token.TokenNumber, "0"},
		{token.TokenSemicolon, ";"},
		{token.TokenIdent, "J1"},
		{token.TokenAssign, ":="},
		{token.TokenIdent, "i"},
		{token.TokenSemicolon, ";"},
		{token.TokenEnd, "End"},
		{token.TokenEOF, ""},
	}

	runCases(t, input, want)
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("i:=0;")
	if len(tokens) != 4 {
		t.Fatalf("Tokenize expected=4 tokens, got=%d", len(tokens))
	}
	for _, tok := range tokens {
		if tok.Type == token.TokenEOF {
			t.Errorf("Tokenize must not include the EOF sentinel")
		}
	}
}

func TestTokenizeEmptySource(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") expected no tokens, got=%d", len(got))
	}
	if got := Tokenize(" \t\r\n"); len(got) != 0 {
		t.Errorf("Tokenize(whitespace) expected no tokens, got=%d", len(got))
	}
}

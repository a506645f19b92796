package token

type TokenType string

const (
	// Keywords (matched case-insensitively on the lexeme)
	TokenVar     TokenType = "VAR"     // var
	TokenInteger TokenType = "INTEGER" // integer
	TokenLongint TokenType = "LONGINT" // longint
	TokenBool    TokenType = "BOOL"    // bool
	TokenIf      TokenType = "IF"      // if
	TokenThen    TokenType = "THEN"    // then
	TokenElse    TokenType = "ELSE"    // else
	TokenWhile   TokenType = "WHILE"   // while
	TokenDo      TokenType = "DO"      // do
	TokenFor     TokenType = "FOR"     // for (lexed, never accepted by the grammar)
	TokenBegin   TokenType = "BEGIN"   // begin
	TokenEnd     TokenType = "END"     // end
	TokenAnd     TokenType = "AND"     // and
	TokenOr      TokenType = "OR"      // or

	// Operators
	TokenPlus     TokenType = "PLUS"     // +
	TokenMinus    TokenType = "MINUS"    // -
	TokenAsterisk TokenType = "ASTERISK" // *
	TokenSlash    TokenType = "SLASH"    // /
	TokenAssign   TokenType = "ASSIGN"   // :=
	TokenLt       TokenType = "LT"       // <
	TokenGt       TokenType = "GT"       // >
	TokenNe       TokenType = "NE"       // <>
	TokenGe       TokenType = "GE"       // >=
	TokenLe       TokenType = "LE"       // <=
	TokenEq       TokenType = "EQ"       // ==

	// Delimiters
	TokenSemicolon TokenType = "SEMICOLON" // ;
	TokenColon     TokenType = "COLON"     // :
	TokenLParen    TokenType = "LPAREN"    // (
	TokenRParen    TokenType = "RPAREN"    // )
	TokenComma     TokenType = "COMMA"     // ,

	// Literals & Identifiers
	TokenIdent  TokenType = "IDENT"  // Identifier (e.g. variable name)
	TokenNumber TokenType = "NUMBER" // 43

	// Special
	TokenEOF   TokenType = "EOF"
	TokenError TokenType = "ERROR" // illegal lexeme; carries the raw run
)

// Token is an immutable (kind, lexeme) pair. The literal keeps the original
// source casing even for keywords.
type Token struct {
	Type    TokenType
	Literal string
}

// IsTypeKeyword reports whether the token names one of the declared types
// (integer, longint, bool).
func (t Token) IsTypeKeyword() bool {
	return t.Type == TokenInteger || t.Type == TokenLongint || t.Type == TokenBool
}

// Package token defines lexical tokens for MiniLang.
package token

//go:generate stringer -type=Token -linecomment

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota // <illegal>
	EOF                  // EOF

	// Operators and delimiters
	operatorStart
	ADD // +
	SUB // -
	MUL // *
	DIV // /

	ASSIGN     // =
	EQUALS     // ==
	NOT_EQUALS // !=
	GREATER    // >
	LESS       // <

	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;
	COMMA     // ,
	operatorEnd

	// Keywords
	keywordStart
	CONST      // CONST
	SUBROUTINE // SUBROUTINE
	DO         // DO
	END        // END
	IF         // IF
	THEN       // THEN
	ELSE       // ELSE
	WHILE      // WHILE
	RETURN     // RETURN
	PRINT      // PRINT
	TRUE       // TRUE
	FALSE      // FALSE
	VOID       // VOID
	INT        // INT
	BOOL       // BOOL
	STRING     // STRING
	AND        // AND
	OR         // OR
	NOT        // NOT
	keywordEnd

	// Literals
	NAME       // name
	INT_LIT    // integer
	STRING_LIT // string
)

// IsOperator returns true if the token is an operator or delimiter.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsKeyword returns true if the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsLiteral returns true if the token is a name or literal.
func (t Token) IsLiteral() bool {
	return t == NAME || t == INT_LIT || t == STRING_LIT
}

// IsType returns true if the token is a type keyword.
// VOID counts as a type everywhere a type is expected.
func (t Token) IsType() bool {
	return t == VOID || t == INT || t == BOOL || t == STRING
}

// keywords maps reserved word spellings to their token types.
// MiniLang reserved words are case-sensitive and upper-case only.
var keywords = map[string]Token{
	"CONST":      CONST,
	"SUBROUTINE": SUBROUTINE,
	"DO":         DO,
	"END":        END,
	"IF":         IF,
	"THEN":       THEN,
	"ELSE":       ELSE,
	"WHILE":      WHILE,
	"RETURN":     RETURN,
	"PRINT":      PRINT,
	"TRUE":       TRUE,
	"FALSE":      FALSE,
	"VOID":       VOID,
	"INT":        INT,
	"BOOL":       BOOL,
	"STRING":     STRING,
	"AND":        AND,
	"OR":         OR,
	"NOT":        NOT,
}

// LookupIdent returns the token type for a given identifier.
// Returns a keyword token if the spelling is reserved, otherwise NAME.
func LookupIdent(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return NAME
}

// LookupKeyword returns the token type for a reserved word, or ILLEGAL
// if the string is not reserved.
func LookupKeyword(name string) Token {
	if tok, ok := keywords[name]; ok {
		return tok
	}
	return ILLEGAL
}

// Package lexer provides MiniLang source code tokenization.
package lexer

import (
	"fmt"

	"github.com/kolkov/minilang/token"
)

// Lexer tokenizes MiniLang source code.
type Lexer struct {
	src     []byte         // Source code
	ch      byte           // Current character (0 at EOF)
	offset  int            // Current byte offset
	pos     token.Position // Current position
	nextPos token.Position // Position of next character

	issues []Issue // Illegal characters seen so far
}

// Issue records an illegal character encountered during scanning.
// Illegal characters are reported and skipped; they never abort a scan.
type Issue struct {
	Pos  token.Position
	Char byte
}

// String returns the diagnostic message for the issue.
func (i Issue) String() string {
	return fmt.Sprintf("illegal character %q at line %d", string(i.Char), i.Pos.Line)
}

// New creates a new Lexer for the given source code.
func New(src []byte) *Lexer {
	l := &Lexer{
		src: src,
		nextPos: token.Position{
			Line:   1,
			Column: 1,
		},
	}
	l.next() // Initialize first character
	return l
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string) *Lexer {
	return New([]byte(src))
}

// NewFile creates a Lexer whose token positions carry the given
// filename. The filename is only used in diagnostics.
func NewFile(src []byte, filename string) *Lexer {
	l := New(src)
	l.pos.Filename = filename
	l.nextPos.Filename = filename
	return l
}

// Token represents a scanned token with its position and value.
type Token struct {
	Type  token.Token
	Pos   token.Position
	Value string
}

// Issues returns the illegal characters recorded so far.
// The slice grows as Scan proceeds through the input.
func (l *Lexer) Issues() []Issue {
	return l.issues
}

// Scan scans and returns the next token.
// Illegal characters are recorded via Issues, skipped one byte at a
// time, and scanning continues with the following character.
func (l *Lexer) Scan() Token {
	for {
		l.skipWhitespace()

		// Record position
		pos := l.pos

		// EOF
		if l.ch == 0 {
			return Token{Type: token.EOF, Pos: pos}
		}

		switch l.ch {
		case '+':
			l.next()
			return Token{Type: token.ADD, Pos: pos, Value: "+"}

		case '-':
			l.next()
			return Token{Type: token.SUB, Pos: pos, Value: "-"}

		case '*':
			l.next()
			return Token{Type: token.MUL, Pos: pos, Value: "*"}

		case '/':
			l.next()
			return Token{Type: token.DIV, Pos: pos, Value: "/"}

		case '=':
			l.next()
			if l.ch == '=' {
				l.next()
				return Token{Type: token.EQUALS, Pos: pos, Value: "=="}
			}
			return Token{Type: token.ASSIGN, Pos: pos, Value: "="}

		case '!':
			// Only "!=" is a token; a lone "!" is an illegal character.
			l.next()
			if l.ch == '=' {
				l.next()
				return Token{Type: token.NOT_EQUALS, Pos: pos, Value: "!="}
			}
			l.report(pos, '!')

		case '>':
			l.next()
			return Token{Type: token.GREATER, Pos: pos, Value: ">"}

		case '<':
			l.next()
			return Token{Type: token.LESS, Pos: pos, Value: "<"}

		case '(':
			l.next()
			return Token{Type: token.LPAREN, Pos: pos, Value: "("}
		case ')':
			l.next()
			return Token{Type: token.RPAREN, Pos: pos, Value: ")"}
		case ';':
			l.next()
			return Token{Type: token.SEMICOLON, Pos: pos, Value: ";"}
		case ',':
			l.next()
			return Token{Type: token.COMMA, Pos: pos, Value: ","}

		case '"':
			tok, ok := l.scanString(pos)
			if ok {
				return tok
			}
			// Unterminated string: the opening quote was reported as an
			// illegal character and scanning resumed one byte after it.

		default:
			if isDigit(l.ch) {
				return l.scanNumber(pos)
			}
			if isIdentStart(l.ch) {
				return l.scanIdent(pos)
			}
			ch := l.ch
			l.next()
			l.report(pos, ch)
		}
	}
}

// report records an illegal character; the offending byte has already
// been consumed by the caller.
func (l *Lexer) report(pos token.Position, ch byte) {
	l.issues = append(l.issues, Issue{Pos: pos, Char: ch})
}

// scanState snapshots scanner progress so an unterminated string can
// re-scan from just after its opening quote.
type scanState struct {
	ch      byte
	offset  int
	pos     token.Position
	nextPos token.Position
}

func (l *Lexer) save() scanState {
	return scanState{ch: l.ch, offset: l.offset, pos: l.pos, nextPos: l.nextPos}
}

func (l *Lexer) restore(s scanState) {
	l.ch = s.ch
	l.offset = s.offset
	l.pos = s.pos
	l.nextPos = s.nextPos
}

// scanString scans a double-quoted string literal. The token value is the
// raw inter-quote text: backslash escapes are accepted but not decoded.
// Returns ok=false if the string is unterminated (newline or EOF before
// the closing quote); in that case the opening quote is reported as an
// illegal character and the scanner resumes one byte after it.
func (l *Lexer) scanString(pos token.Position) (Token, bool) {
	l.next() // consume opening quote
	resume := l.save()
	start := l.pos.Offset
	if l.ch == 0 {
		start = len(l.src)
	}

	for l.ch != 0 && l.ch != '"' && l.ch != '\n' {
		if l.ch == '\\' {
			l.next() // skip escape introducer
			if l.ch == 0 || l.ch == '\n' {
				break
			}
		}
		l.next()
	}

	if l.ch != '"' {
		l.report(pos, '"')
		l.restore(resume)
		return Token{}, false
	}

	value := string(l.src[start:l.pos.Offset])
	l.next() // consume closing quote
	return Token{Type: token.STRING_LIT, Pos: pos, Value: value}, true
}

// scanNumber scans an unsigned decimal integer literal.
func (l *Lexer) scanNumber(pos token.Position) Token {
	start := pos.Offset // Use position offset to include first character
	for isDigit(l.ch) {
		l.next()
	}
	return Token{Type: token.INT_LIT, Pos: pos, Value: string(l.src[start:l.endOffset()])}
}

func (l *Lexer) scanIdent(pos token.Position) Token {
	start := pos.Offset // Use position offset to include first character
	for isIdentContinue(l.ch) {
		l.next()
	}
	name := string(l.src[start:l.endOffset()])
	return Token{Type: token.LookupIdent(name), Pos: pos, Value: name}
}

// endOffset returns the correct end offset for slicing l.src.
// At EOF, l.pos is not updated, so we use len(l.src); otherwise l.pos.Offset.
func (l *Lexer) endOffset() int {
	if l.ch == 0 {
		return len(l.src)
	}
	return l.pos.Offset
}

// skipWhitespace discards spaces and tabs; newlines only advance the
// line counter. Carriage returns are not whitespace here and surface
// as illegal characters.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' {
		l.next()
	}
}

func (l *Lexer) next() {
	if l.offset >= len(l.src) {
		l.ch = 0
		return
	}

	l.pos = l.nextPos

	l.ch = l.src[l.offset]
	l.offset++
	l.nextPos.Column++
	l.nextPos.Offset = l.offset

	if l.ch == '\n' {
		l.nextPos.Line++
		l.nextPos.Column = 1
	}
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

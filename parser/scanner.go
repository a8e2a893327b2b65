package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/antlr4-go/antlr/v4"
	"github.com/hashicorp/go-set/v3"
)

type Kind int

const (
	EOF Kind = iota
	Number
	Ident
	Keyword
	Punct
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case Number:
		return "number"
	case Ident:
		return "identifier"
	case Keyword:
		return "keyword"
	case Punct:
		return "punctuation"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords never scan as identifiers
var keywords = set.From([]string{"fn", "return"})

// Token is a lexeme of the source, with the byte offsets it spans
type Token struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

func (t Token) String() string {
	if t.Kind == EOF {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s '%s'", t.Kind, t.Text)
}

// scanner splits source text into tokens:
//
//	a run of word characters that is all ASCII digits is a Number
//	any other run of word characters is an Ident, or a Keyword
//	each of ( ) { } , is a Punct on its own
//	a run of other symbol characters is an Ident, except a lone = which is a Punct
//	// starts a comment up to the end of the line
type scanner struct {
	src   string
	input antlr.CharStream
	// offset is the byte offset of the next character in src, while input indexes runes.
	// An invalid byte is one rune in input and one byte in src.
	offset int
}

func newScanner(src string) *scanner {
	return &scanner{src: src, input: antlr.NewInputStream(src)}
}

func (s *scanner) peek() int { return s.input.LA(1) }

func (s *scanner) consume() {
	_, size := utf8.DecodeRuneInString(s.src[s.offset:])
	s.offset += size
	s.input.Consume()
}

// scanAll returns every token of the input, always terminated by an EOF token
func (s *scanner) scanAll() []Token {
	var tokens []Token
	for {
		tok := s.next()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens
		}
	}
}

func (s *scanner) next() Token {
	s.skipSpaceAndComments()
	c := s.peek()
	if c == antlr.TokenEOF {
		return Token{Kind: EOF, Start: s.offset, End: s.offset}
	}
	startOffset := s.offset
	kind := Ident
	switch {
	case isPunct(c):
		s.consume()
		kind = Punct
	case isWord(c):
		digitsOnly := true
		for isWord(s.peek()) {
			digitsOnly = digitsOnly && isDigit(s.peek())
			s.consume()
		}
		if digitsOnly {
			kind = Number
		}
	default:
		for s.peek() != antlr.TokenEOF && isSymbol(s.peek()) && !s.atComment() {
			s.consume()
		}
	}
	text := s.src[startOffset:s.offset]
	switch {
	case kind == Ident && keywords.Contains(text):
		kind = Keyword
	case kind == Ident && text == "=":
		kind = Punct
	}
	return Token{Kind: kind, Text: text, Start: startOffset, End: s.offset}
}

func (s *scanner) skipSpaceAndComments() {
	for {
		c := s.peek()
		switch {
		case c == antlr.TokenEOF:
			return
		case unicode.IsSpace(rune(c)):
			s.consume()
		case s.atComment():
			for s.peek() != antlr.TokenEOF && s.peek() != '\n' {
				s.consume()
			}
		default:
			return
		}
	}
}

func (s *scanner) atComment() bool {
	return s.input.LA(1) == '/' && s.input.LA(2) == '/'
}

func isPunct(c int) bool {
	switch c {
	case '(', ')', '{', '}', ',':
		return true
	}
	return false
}

func isWord(c int) bool {
	if c == antlr.TokenEOF {
		return false
	}
	r := rune(c)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isDigit only accepts ASCII digits, the ones a Number literal can be parsed from
func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func isSymbol(c int) bool {
	return !isWord(c) && !isPunct(c) && !unicode.IsSpace(rune(c))
}

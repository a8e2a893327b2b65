package parser

// Stream is a cursor over the tokens of one source file
type Stream struct {
	tokens []Token
	index  int
}

// NewStream scans src into a Stream
func NewStream(src string) *Stream {
	return &Stream{tokens: newScanner(src).scanAll()}
}

// Peek returns the next token without consuming it
func (s *Stream) Peek() Token {
	return s.tokens[s.index]
}

// PeekKind reports whether the next token is of kind k
func (s *Stream) PeekKind(k Kind) bool {
	return s.Peek().Kind == k
}

// PeekText reports whether the next token is a keyword or punctuation spelled exactly text
func (s *Stream) PeekText(text string) bool {
	tok := s.Peek()
	return (tok.Kind == Keyword || tok.Kind == Punct) && tok.Text == text
}

// Take consumes the next token if it is a keyword or punctuation spelled exactly text
func (s *Stream) Take(text string) (Token, bool) {
	if !s.PeekText(text) {
		return Token{}, false
	}
	return s.advance(), true
}

// TakeKind consumes the next token if it is of kind k
func (s *Stream) TakeKind(k Kind) (Token, bool) {
	if !s.PeekKind(k) {
		return Token{}, false
	}
	return s.advance(), true
}

func (s *Stream) advance() Token {
	tok := s.tokens[s.index]
	if tok.Kind != EOF {
		s.index++
	}
	return tok
}

// Save returns a mark that Restore can rewind the stream to
func (s *Stream) Save() int {
	return s.index
}

func (s *Stream) Restore(mark int) {
	s.index = mark
}

// Done reports whether every token has been consumed
func (s *Stream) Done() bool {
	return s.PeekKind(EOF)
}

package tree

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the bracket notation.
const (
	tokEOF = iota
	tokOpen
	tokClose
	tokAtom
)

// token is a lexeme of the bracket notation, together with its byte offset.
type token struct {
	kind   int
	lexeme string
	offset int
}

var (
	lexerOnce sync.Once // monitors one-time DFA compilation
	lexer     *lexmachine.Lexer
	lexerErr  error
)

// bracketLexer returns the lexer for bracket notation. The DFA is compiled
// once and shared; scanners created from it are independent.
func bracketLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`\(`), makeToken(tokOpen))
		lexer.Add([]byte(`\)`), makeToken(tokClose))
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexer.Add([]byte(`[^\(\) \t\n\r]+`), makeToken(tokAtom))
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// skip is a lexer action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(kind int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(kind, string(m.Bytes), m), nil
	}
}

// tokenize splits bracket notation into tokens. The result is terminated by
// a tokEOF token.
func tokenize(text string) ([]token, error) {
	lx, err := bracketLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(text))
	if err != nil {
		return nil, err
	}
	toks := make([]token, 0, len(text)/4)
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				return nil, errors.Wrapf(ErrMalformedTree, "unexpected input at offset %d", ui.FailTC)
			}
			return nil, err
		}
		t := tok.(*lexmachine.Token)
		toks = append(toks, token{kind: t.Type, lexeme: string(t.Lexeme), offset: t.TC})
	}
	return append(toks, token{kind: tokEOF, offset: len(text)}), nil
}

package sexpr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types.
const (
	tokEOF int = iota
	tokLParen
	tokRParen
	tokLBrack
	tokRBrack
	tokNumber
	tokString
	tokIdent
	tokOperator
)

var tokenNames = [...]string{"end of input", "'('", "')'", "'['", "']'",
	"number", "string", "identifier", "operator"}

// The tokens representing literal one-char lexemes
var literals = map[string]int{"(": tokLParen, ")": tokRParen, "[": tokLBrack, "]": tokRBrack}

// Operators, longest first
var operators = []string{">>>", "===", "!==", "<<", ">>", "==", "!=", "<=", ">=",
	"||", "&&", "+", "-", "*", "/", "%", "^", "|", "&", "<", ">", "!", "~", ","}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time initialization

func initLexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`;[^\n]*\n?`), skip) // skip comments
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexer.Add([]byte(`\"([^\\\"]|\\.)*\"`), makeToken(tokString))
		lexer.Add([]byte(`\-?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][\+\-]?[0-9]+)?`), makeToken(tokNumber))
		lexer.Add([]byte(`([a-z]|[A-Z]|_|\$)([a-z]|[A-Z]|[0-9]|_|\$)*`), makeToken(tokIdent))
		for lit, id := range literals {
			lexer.Add([]byte(`\`+lit), makeToken(id))
		}
		for _, op := range operators {
			r := "\\" + strings.Join(strings.Split(op, ""), "\\")
			lexer.Add([]byte(r), makeToken(tokOperator))
		}
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

type token struct {
	typ    int
	lexeme string
	col    int
}

func (t token) String() string {
	if t.typ == tokEOF {
		return tokenNames[tokEOF]
	}
	return fmt.Sprintf("%s '%s' at column %d", tokenNames[t.typ], t.lexeme, t.col)
}

// tokenize splits input into tokens. The last token is always tokEOF.
func tokenize(input string) ([]token, error) {
	lx, err := initLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var toks []token
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return nil, fmt.Errorf("%w: unexpected input at column %d", ErrSyntax, ui.StartColumn)
			}
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		lt := tok.(*lexmachine.Token)
		toks = append(toks, token{typ: lt.Type, lexeme: string(lt.Lexeme), col: lt.StartColumn})
	}
	toks = append(toks, token{typ: tokEOF})
	tracer().Debugf("s-expr input has %d tokens", len(toks))
	return toks, nil
}

package keylang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token classes produced by the scanner. Literals and keywords scan as IDs
// of their own, looked up through tokenIds.
const (
	EOF int = iota
	ID
	NUM
	STRING
)

var literals []string       // the tokens representing literal strings
var keywords []string       // the keyword tokens
var tokenIds map[string]int // a map from token names to their int IDs

var lexer *lexmachine.Lexer // the compiled scanner DFA, shared by all scanners

func init() {
	literals = []string{
		"{",
		"}",
		",",
		"=",
	}
	keywords = []string{
		"put",
		"get",
		"has",
		"del",
		"clear",
		"size",
		"keys",
		"values",
		"entries",
		"help",
		"quit",
	}
	tokenIds = map[string]int{
		"EOF":    EOF,
		"ID":     ID,
		"NUM":    NUM,
		"STRING": STRING,
	}
	id := STRING + 1
	for _, lit := range literals {
		tokenIds[lit] = id
		id++
	}
	for _, kw := range keywords {
		tokenIds[kw] = id
		id++
	}
	lexer = lexmachine.NewLexer()
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		lexer.Add([]byte(r), makeToken(lit, tokenIds[lit]))
	}
	for _, kw := range keywords { // keywords go in before the ID class wins ties
		lexer.Add([]byte(kw), makeToken(kw, tokenIds[kw]))
	}
	lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_|-)*`), makeToken("ID", ID))
	lexer.Add([]byte(`[0-9]+`), makeToken("NUM", NUM))
	lexer.Add([]byte(`\"[^"]*\"`), makeToken("STRING", STRING))
	lexer.Add([]byte(`//[^\n]*\n?`), skip)
	lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
	if err := lexer.Compile(); err != nil {
		panic("keylang: cannot compile the scanner DFA: " + err.Error())
	}
}

// Token is the scanner's output unit.
type Token struct {
	Kind   int    // one of the token IDs above
	Lexeme string // the matched text
	Start  int    // 1-based input column of the match
}

// Scanner turns one line of command input into a stream of tokens.
// Create one per input with NewScanner.
type Scanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

// NewScanner creates a scanner for the given input.
func NewScanner(input string) (*Scanner, error) {
	s, err := lexer.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{scanner: s, Error: logError}, nil
}

// SetErrorHandler sets an error handler for the scanner.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		sc.Error = logError
		return
	}
	sc.Error = h
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken returns the next token of the input. Unrecognized input is
// reported through the error handler and skipped. At the end of the input
// an EOF token is returned.
func (sc *Scanner) NextToken() Token {
	tok, err, eof := sc.scanner.Next()
	for err != nil {
		sc.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			sc.scanner.TC = ui.FailTC
		}
		tok, err, eof = sc.scanner.Next()
	}
	if eof {
		return Token{Kind: EOF}
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("token %d | '%s'", token.Type, string(token.Lexeme))
	return Token{
		Kind:   token.Type,
		Lexeme: string(token.Lexeme),
		Start:  token.StartColumn,
	}
}

// skip is a scanner action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a scanner action which wraps a scanned match into a token.
func makeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

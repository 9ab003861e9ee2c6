package keylang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 Norbert Pillmayer <norbert@pillmayer.com>
*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/setmap"
)

// Command is one parsed command line. Key is the parsed key-set literal for
// keyed commands and nil otherwise; Value is set for 'put' only.
//
// The grammar is deliberately small:
//
//	command  ::=  'put' keyset '=' element
//	           |  ( 'get' | 'has' | 'del' ) keyset
//	           |  'clear' | 'size' | 'keys' | 'values' | 'entries'
//	           |  'help' | 'quit'
//	           |  ID
//	keyset   ::=  '{' [ element { ',' element } ] '}'
//	element  ::=  ID | NUM | STRING
//
// An ID in command position parses as an op-only Command. The parser does not
// police the vocabulary; unknown command words are rejected by the session.
type Command struct {
	Op    string
	Key   *setmap.KeySet[string]
	Value string
}

// ParseCommand parses a single command line.
func ParseCommand(line string) (*Command, error) {
	sc, err := NewScanner(line)
	if err != nil {
		return nil, err
	}
	p := &parser{scanner: sc}
	sc.SetErrorHandler(func(e error) {
		logError(e)
		p.badInput = true
	})
	p.advance()
	cmd, err := p.command()
	if err != nil {
		return nil, err
	}
	if p.badInput {
		return nil, fmt.Errorf("input contains unrecognizable characters")
	}
	if p.tok.Kind != EOF {
		return nil, fmt.Errorf("unexpected input after command: '%s'", p.tok.Lexeme)
	}
	return cmd, nil
}

// parser holds one token of lookahead onto the scanner's token stream.
type parser struct {
	scanner  *Scanner
	tok      Token // lookahead
	badInput bool  // did the scanner stumble over unrecognizable input?
}

func (p *parser) advance() {
	p.tok = p.scanner.NextToken()
}

func (p *parser) command() (*Command, error) {
	t := p.tok
	switch t.Kind {
	case tokenIds["put"]:
		p.advance()
		key, err := p.keyset()
		if err != nil {
			return nil, err
		}
		if err := p.expect("="); err != nil {
			return nil, err
		}
		value, err := p.element()
		if err != nil {
			return nil, err
		}
		return &Command{Op: t.Lexeme, Key: key, Value: value}, nil
	case tokenIds["get"], tokenIds["has"], tokenIds["del"]:
		p.advance()
		key, err := p.keyset()
		if err != nil {
			return nil, err
		}
		return &Command{Op: t.Lexeme, Key: key}, nil
	case tokenIds["clear"], tokenIds["size"], tokenIds["keys"],
		tokenIds["values"], tokenIds["entries"], tokenIds["help"], tokenIds["quit"]:
		p.advance()
		return &Command{Op: t.Lexeme}, nil
	case ID:
		// unknown command word; the session rejects it, loudly under the
		// keylang-strict config flag
		p.advance()
		return &Command{Op: t.Lexeme}, nil
	case EOF:
		return nil, fmt.Errorf("empty command")
	}
	return nil, fmt.Errorf("not a command: '%s'", t.Lexeme)
}

// keyset parses a key-set literal in braces. Element order and duplicates
// are immaterial, as setmap.Key normalizes both away.
func (p *parser) keyset() (*setmap.KeySet[string], error) {
	if err := p.expect("{"); err != nil {
		return nil, err
	}
	var elements []string
	if p.tok.Kind != tokenIds["}"] {
		el, err := p.element()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
		for p.tok.Kind == tokenIds[","] {
			p.advance()
			if el, err = p.element(); err != nil {
				return nil, err
			}
			elements = append(elements, el)
		}
	}
	if err := p.expect("}"); err != nil {
		return nil, err
	}
	return setmap.Key(elements...), nil
}

func (p *parser) element() (string, error) {
	switch p.tok.Kind {
	case ID, NUM:
		el := p.tok.Lexeme
		p.advance()
		return el, nil
	case STRING:
		el := strings.Trim(p.tok.Lexeme, `"`)
		p.advance()
		return el, nil
	}
	return "", fmt.Errorf("expected a key element, found '%s'", p.tok.Lexeme)
}

func (p *parser) expect(lit string) error {
	if p.tok.Kind != tokenIds[lit] {
		if p.tok.Kind == EOF {
			return fmt.Errorf("expected '%s', found end of input", lit)
		}
		return fmt.Errorf("expected '%s', found '%s' at column %d", lit, p.tok.Lexeme, p.tok.Start)
	}
	p.advance()
	return nil
}

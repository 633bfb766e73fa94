package lambda

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenLambda
	TokenDot
	TokenLParen
	TokenRParen
	TokenIllegal
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return "identifier"
	case TokenLambda:
		return "'λ'"
	case TokenDot:
		return "'.'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	default:
		return "illegal character"
	}
}

type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

// ParseError reports invalid surface syntax at a byte offset of the input.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Msg, e.Pos)
}

// Parser builds terms from source text. Identifiers that are defined in
// the environment, and not bound by an enclosing lambda, become references.
type Parser struct {
	input   string
	pos     int
	current Token
	env     *Environment
	bound   map[string]int
}

func NewParser(input string, env *Environment) *Parser {
	p := &Parser{input: input, env: env, bound: make(map[string]int)}
	p.next()
	return p
}

func (p *Parser) next() {
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		p.current = Token{Type: TokenEOF, Pos: p.pos}
		return
	}

	start := p.pos
	ch := p.input[p.pos]
	switch {
	case isLetter(ch):
		p.pos++
		for p.pos < len(p.input) && (isAlpha(p.input[p.pos]) || isDigit(p.input[p.pos])) {
			p.pos++
		}
		p.current = Token{Type: TokenIdent, Literal: p.input[start:p.pos], Pos: start}
	case ch == '\\':
		p.current = Token{Type: TokenLambda, Literal: "\\", Pos: start}
		p.pos++
	case ch == '.':
		p.current = Token{Type: TokenDot, Literal: ".", Pos: start}
		p.pos++
	case ch == '(':
		p.current = Token{Type: TokenLParen, Literal: "(", Pos: start}
		p.pos++
	case ch == ')':
		p.current = Token{Type: TokenRParen, Literal: ")", Pos: start}
		p.pos++
	default:
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		p.pos += size
		if r == 'λ' {
			p.current = Token{Type: TokenLambda, Literal: "λ", Pos: start}
			return
		}
		p.current = Token{Type: TokenIllegal, Literal: string(r), Pos: start}
	}
}

func (p *Parser) skipWhitespace() {
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += size
	}
}

func isLetter(ch byte) bool {
	return isAlpha(ch) || ch == '_'
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.current.Pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) unexpected() error {
	if p.current.Type == TokenIllegal {
		return p.errorf("unexpected character %q", p.current.Literal)
	}
	return p.errorf("unexpected %v", p.current.Type)
}

// Parse parses a complete expression; trailing input is an error.
func (p *Parser) Parse() (Term, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, p.unexpected()
	}
	return term, nil
}

// Term ::= App
func (p *Parser) parseTerm() (Term, error) {
	return p.parseApp()
}

// App ::= Atom Atom*
//
// A lambda in argument position extends as far right as possible, so it
// ends the application chain.
func (p *Parser) parseApp() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current.Type {
		case TokenIdent, TokenLParen:
			right, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			left = App{Fun: left, Arg: right}
		case TokenLambda:
			right, err := p.parseAbs()
			if err != nil {
				return nil, err
			}
			return App{Fun: left, Arg: right}, nil
		default:
			return left, nil
		}
	}
}

// Atom ::= Ident | ( Term ) | Abs
func (p *Parser) parseAtom() (Term, error) {
	switch p.current.Type {
	case TokenIdent:
		name := p.current.Literal
		p.next()
		return p.resolve(name), nil
	case TokenLParen:
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRParen {
			return nil, p.errorf("expected ')', found %v", p.current.Type)
		}
		p.next()
		return term, nil
	case TokenLambda:
		return p.parseAbs()
	default:
		return nil, p.unexpected()
	}
}

// Abs ::= lambda Ident . Term
func (p *Parser) parseAbs() (Term, error) {
	p.next() // consume lambda
	if p.current.Type != TokenIdent {
		return nil, p.errorf("expected identifier after lambda, found %v", p.current.Type)
	}
	arg := p.current.Literal
	p.next()
	if p.current.Type != TokenDot {
		return nil, p.errorf("expected '.' after lambda parameter, found %v", p.current.Type)
	}
	p.next()

	p.bound[arg]++
	body, err := p.parseTerm()
	p.bound[arg]--
	if p.bound[arg] == 0 {
		delete(p.bound, arg)
	}
	if err != nil {
		return nil, err
	}
	return Abs{Arg: arg, Body: body}, nil
}

func (p *Parser) resolve(name string) Term {
	if p.bound[name] == 0 && p.env.IsDefined(name) {
		return Ref{Name: name}
	}
	return Var{Name: name}
}

// Parse parses a lambda term from a string, resolving identifiers against
// env. env may be nil.
func Parse(input string, env *Environment) (Term, error) {
	p := NewParser(input, env)
	return p.Parse()
}

var definitionRE = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9]*)\s*=\s*(.+)$`)

// ParseDefinition recognizes "name = expr". ok is false when line is not a
// definition; err is set when it is one but expr does not parse.
func ParseDefinition(line string, env *Environment) (name string, term Term, ok bool, err error) {
	m := definitionRE.FindStringSubmatch(line)
	if m == nil {
		return "", nil, false, nil
	}
	name = m[1]
	term, err = Parse(m[2], env)
	if err != nil {
		offset := len(line) - len(m[2])
		var pe *ParseError
		if errors.As(err, &pe) {
			err = &ParseError{Pos: pe.Pos + offset, Msg: pe.Msg}
		}
		return name, nil, true, err
	}
	return name, term, true, nil
}

package parse

import (
	"errors"
	"fmt"

	"github.com/trivalent/go-trivalent/formula"
)

var ErrParse = errors.New("parse error")

// Error reports a syntax error with the byte offset it occurred at.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", ErrParse, e.Pos, e.Msg)
}

func (e *Error) Unwrap() error { return ErrParse }

// Inference is a parsed "premises |- conclusion" line.
type Inference struct {
	Premises   []*formula.Node
	Conclusion *formula.Node
}

// Formula parses a single formula and checks the construction
// invariants, so the result is engine-ready.
func Formula(src string) (*formula.Node, error) {
	p := newParser(src)
	f, err := p.formula()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokEOF); err != nil {
		return nil, err
	}
	if err := formula.Check(f); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseInference parses "p1, p2, ... |- c". An empty premise side
// ("|- c") is allowed and asserts validity of the conclusion.
func ParseInference(src string) (*Inference, error) {
	p := newParser(src)
	inf := &Inference{}
	if p.tok.kind != tokTurnstile {
		for {
			f, err := p.formula()
			if err != nil {
				return nil, err
			}
			inf.Premises = append(inf.Premises, f)
			if p.tok.kind != tokComma {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(tokTurnstile); err != nil {
		return nil, err
	}
	c, err := p.formula()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokEOF); err != nil {
		return nil, err
	}
	inf.Conclusion = c
	for _, f := range inf.Premises {
		if err := formula.Check(f); err != nil {
			return nil, err
		}
	}
	if err := formula.Check(c); err != nil {
		return nil, err
	}
	return inf, nil
}

type parser struct {
	lex   *lexer
	tok   token
	err   error
	bound []string // quantifier variables in scope, innermost last
}

func newParser(src string) *parser {
	p := &parser{lex: &lexer{src: src}}
	p.tok, p.err = p.lex.next()
	return p
}

func (p *parser) advance() error {
	if p.err != nil {
		return p.err
	}
	p.tok, p.err = p.lex.next()
	return p.err
}

func (p *parser) expect(k tokKind) error {
	if p.err != nil {
		return p.err
	}
	if p.tok.kind != k {
		return &Error{Pos: p.tok.pos, Msg: fmt.Sprintf("expected %s, got %s", k, p.tok.kind)}
	}
	if k == tokEOF {
		return nil
	}
	return p.advance()
}

func (p *parser) inScope(name string) bool {
	for _, v := range p.bound {
		if v == name {
			return true
		}
	}
	return false
}

// formula := iff
func (p *parser) formula() (*formula.Node, error) {
	return p.iff()
}

// iff := implies ('<->' implies)*
func (p *parser) iff() (*formula.Node, error) {
	l, err := p.implies()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokIff {
		if err := p.advance(); err != nil {
			return nil, err
		}
		r, err := p.implies()
		if err != nil {
			return nil, err
		}
		l = formula.Iff(l, r)
	}
	return l, nil
}

// implies := or ('->' implies)?   right associative
func (p *parser) implies() (*formula.Node, error) {
	l, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokImplies {
		return l, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	r, err := p.implies()
	if err != nil {
		return nil, err
	}
	return formula.Implies(l, r), nil
}

// or := and ('|' and)*
func (p *parser) or() (*formula.Node, error) {
	l, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		r, err := p.and()
		if err != nil {
			return nil, err
		}
		l = formula.Or(l, r)
	}
	return l, nil
}

// and := unary ('&' unary)*
func (p *parser) and() (*formula.Node, error) {
	l, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		r, err := p.unary()
		if err != nil {
			return nil, err
		}
		l = formula.And(l, r)
	}
	return l, nil
}

// unary := '~' unary | quantifier | primary
func (p *parser) unary() (*formula.Node, error) {
	switch p.tok.kind {
	case tokNot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		f, err := p.unary()
		if err != nil {
			return nil, err
		}
		return formula.Not(f), nil
	case tokForall, tokExists:
		return p.quantifier()
	}
	return p.primary()
}

// quantifier := ('forall'|'exists') IDENT 'in' IDENT ':' unary
func (p *parser) quantifier() (*formula.Node, error) {
	univ := p.tok.kind == tokForall
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind != tokIdent {
		return nil, &Error{Pos: p.tok.pos, Msg: "expected quantifier variable"}
	}
	v := p.tok.text
	if p.inScope(v) {
		return nil, &Error{Pos: p.tok.pos, Msg: fmt.Sprintf("quantifier shadows variable %q", v)}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokIn); err != nil {
		return nil, err
	}
	if p.tok.kind != tokIdent {
		return nil, &Error{Pos: p.tok.pos, Msg: "expected domain predicate name"}
	}
	domain := p.tok.text
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(tokColon); err != nil {
		return nil, err
	}
	p.bound = append(p.bound, v)
	body, err := p.unary()
	p.bound = p.bound[:len(p.bound)-1]
	if err != nil {
		return nil, err
	}
	if univ {
		return formula.Forall(v, domain, body), nil
	}
	return formula.Exists(v, domain, body), nil
}

// primary := IDENT ['(' IDENT ')'] | '(' formula ')'
func (p *parser) primary() (*formula.Node, error) {
	switch p.tok.kind {
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		f, err := p.formula()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return f, nil
	case tokIdent:
		name := p.tok.text
		namePos := p.tok.pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind != tokLParen {
			if p.inScope(name) {
				return nil, &Error{Pos: namePos, Msg: fmt.Sprintf("variable %q used as a proposition", name)}
			}
			return formula.Atom(name), nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind != tokIdent {
			return nil, &Error{Pos: p.tok.pos, Msg: "expected predicate argument"}
		}
		arg := p.tok.text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		if p.inScope(arg) {
			return formula.PredVar(name, arg), nil
		}
		return formula.Pred(name, arg), nil
	}
	return nil, &Error{Pos: p.tok.pos, Msg: fmt.Sprintf("expected a formula, got %s", p.tok.kind)}
}

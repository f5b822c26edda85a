package parse

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

type tokKind uint8

const (
	tokEOF tokKind = iota
	tokIdent
	tokAnd
	tokOr
	tokNot
	tokImplies
	tokIff
	tokForall
	tokExists
	tokIn
	tokColon
	tokComma
	tokLParen
	tokRParen
	tokTurnstile
)

func (k tokKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokAnd:
		return "'&'"
	case tokOr:
		return "'|'"
	case tokNot:
		return "'~'"
	case tokImplies:
		return "'->'"
	case tokIff:
		return "'<->'"
	case tokForall:
		return "'forall'"
	case tokExists:
		return "'exists'"
	case tokIn:
		return "'in'"
	case tokColon:
		return "':'"
	case tokComma:
		return "','"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokTurnstile:
		return "'|-'"
	}
	return "invalid token"
}

type token struct {
	kind tokKind
	text string
	pos  int // byte offset
}

type lexer struct {
	src string
	off int
}

func (l *lexer) errf(pos int, format string, args ...any) error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (l *lexer) next() (token, error) {
	for l.off < len(l.src) {
		r, w := utf8.DecodeRuneInString(l.src[l.off:])
		if !unicode.IsSpace(r) {
			break
		}
		l.off += w
	}
	if l.off >= len(l.src) {
		return token{kind: tokEOF, pos: l.off}, nil
	}
	pos := l.off
	r, w := utf8.DecodeRuneInString(l.src[l.off:])
	switch r {
	case '(':
		l.off += w
		return token{kind: tokLParen, pos: pos}, nil
	case ')':
		l.off += w
		return token{kind: tokRParen, pos: pos}, nil
	case ',':
		l.off += w
		return token{kind: tokComma, pos: pos}, nil
	case ':':
		l.off += w
		return token{kind: tokColon, pos: pos}, nil
	case '&', '∧':
		l.off += w
		return token{kind: tokAnd, pos: pos}, nil
	case '∨':
		l.off += w
		return token{kind: tokOr, pos: pos}, nil
	case '~', '!', '¬':
		l.off += w
		return token{kind: tokNot, pos: pos}, nil
	case '→':
		l.off += w
		return token{kind: tokImplies, pos: pos}, nil
	case '↔':
		l.off += w
		return token{kind: tokIff, pos: pos}, nil
	case '∀':
		l.off += w
		return token{kind: tokForall, pos: pos}, nil
	case '∃':
		l.off += w
		return token{kind: tokExists, pos: pos}, nil
	case '∈':
		l.off += w
		return token{kind: tokIn, pos: pos}, nil
	case '⊢':
		l.off += w
		return token{kind: tokTurnstile, pos: pos}, nil
	case '|':
		if l.off+1 < len(l.src) && l.src[l.off+1] == '-' {
			l.off += 2
			return token{kind: tokTurnstile, pos: pos}, nil
		}
		l.off += w
		return token{kind: tokOr, pos: pos}, nil
	case '-':
		if l.off+1 < len(l.src) && l.src[l.off+1] == '>' {
			l.off += 2
			return token{kind: tokImplies, pos: pos}, nil
		}
		return token{}, l.errf(pos, "unexpected '-'")
	case '<':
		if l.off+2 < len(l.src) && l.src[l.off+1] == '-' && l.src[l.off+2] == '>' {
			l.off += 3
			return token{kind: tokIff, pos: pos}, nil
		}
		return token{}, l.errf(pos, "unexpected '<'")
	}
	if unicode.IsLetter(r) {
		start := l.off
		for l.off < len(l.src) {
			r, w := utf8.DecodeRuneInString(l.src[l.off:])
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				break
			}
			l.off += w
		}
		text := l.src[start:l.off]
		switch text {
		case "forall":
			return token{kind: tokForall, text: text, pos: pos}, nil
		case "exists":
			return token{kind: tokExists, text: text, pos: pos}, nil
		case "in":
			return token{kind: tokIn, text: text, pos: pos}, nil
		}
		return token{kind: tokIdent, text: text, pos: pos}, nil
	}
	return token{}, l.errf(pos, "unexpected character %q", r)
}

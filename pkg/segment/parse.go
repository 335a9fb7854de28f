package segment

import (
	"fmt"
	"strings"
)

type state uint8

const (
	stateInitial state = iota
	stateStatic
	stateDynamic
	stateOptional
	stateCatchAll
	stateGroup
)

func (s state) kind() Kind {
	switch s {
	case stateDynamic:
		return Dynamic
	case stateOptional:
		return Optional
	case stateCatchAll:
		return CatchAll
	case stateGroup:
		return Group
	default:
		return Static
	}
}

// scanner walks the runes of a segment strictly forward.
type scanner struct {
	runes []rune
	pos   int
}

func (s *scanner) next() (rune, bool) {
	if s.pos >= len(s.runes) {
		return 0, false
	}
	r := s.runes[s.pos]
	s.pos++
	return r, true
}

func (s *scanner) peek() (rune, bool) {
	if s.pos >= len(s.runes) {
		return 0, false
	}
	return s.runes[s.pos], true
}

// prev returns the rune before the one most recently returned by next.
func (s *scanner) prev() rune {
	if s.pos < 2 {
		return 0
	}
	return s.runes[s.pos-2]
}

type parser struct {
	segment string
	sc      scanner
	st      state
	buf     strings.Builder
	tokens  []Token
}

// Parse splits a page path segment into tokens.
//
//	about          -> [static "about"]
//	[id]           -> [dynamic "id"]
//	[[id]]         -> [optional "id"]
//	[...slug]      -> [catchall "slug"]
//	(admin)        -> [group "admin"]
//	post-[id].json -> [static "post-", dynamic "id", static ".json"]
func Parse(segment string) ([]Token, error) {
	p := &parser{segment: segment, sc: scanner{runes: []rune(segment)}}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.tokens, nil
}

func (p *parser) run() error {
	for {
		if p.st == stateInitial {
			r, ok := p.sc.peek()
			if !ok {
				return nil
			}
			switch r {
			case '[':
				p.sc.next()
				p.st = stateDynamic
			case '(':
				p.sc.next()
				p.st = stateGroup
			default:
				p.st = stateStatic
			}
			continue
		}

		r, ok := p.sc.next()
		if !ok {
			return p.finish()
		}

		if p.st == stateStatic {
			p.static(r)
			continue
		}

		if err := p.bracket(r); err != nil {
			return err
		}
	}
}

func (p *parser) static(r rune) {
	switch r {
	case '[':
		p.flush()
		p.st = stateDynamic
	case '(':
		p.flush()
		p.st = stateGroup
	default:
		p.buf.WriteRune(r)
	}
}

func (p *parser) bracket(r rune) error {
	if p.buf.String() == "..." {
		p.buf.Reset()
		p.st = stateCatchAll
	}

	switch {
	case r == '[' && p.st == stateDynamic:
		p.st = stateOptional
	case r == ']' && p.st != stateGroup && (p.st != stateOptional || p.sc.prev() == ']'):
		if p.buf.Len() == 0 {
			return fmt.Errorf("%w in %q", ErrEmptyParam, p.segment)
		}
		p.flush()
		p.st = stateInitial
	case r == ')' && p.st == stateGroup:
		if p.buf.Len() == 0 {
			return fmt.Errorf("%w in %q", ErrEmptyGroup, p.segment)
		}
		p.flush()
		p.st = stateInitial
	case isParamRune(r):
		p.buf.WriteRune(r)
	}
	return nil
}

func (p *parser) finish() error {
	switch p.st {
	case stateInitial:
		return nil
	case stateStatic:
		p.flush()
		return nil
	default:
		return fmt.Errorf("%w %q in %q", ErrUnterminatedParam, p.buf.String(), p.segment)
	}
}

func (p *parser) flush() {
	if p.buf.Len() == 0 {
		return
	}
	p.tokens = append(p.tokens, Token{Kind: p.st.kind(), Value: p.buf.String()})
	p.buf.Reset()
}

func isParamRune(r rune) bool {
	return r == '_' || r == '.' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

package expr

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Evaluate computes the value of an arithmetic expression with standard
// precedence. It is deliberately forgiving: unknown characters are
// skipped, a missing closing parenthesis is tolerated, and an unparsable
// number evaluates to 0. Division by zero propagates IEEE infinities.
func Evaluate(expression string) float64 {
	p := &parser{tokens: tokenize(expression)}
	return p.expression()
}

// Round10 rounds to 10 decimal places to suppress binary floating point
// noise. NaN and infinities pass through unchanged.
func Round10(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	return math.Round(x*1e10) / 1e10
}

// tokenize splits an expression into number and operator tokens. Digit
// and dot runs form one number token; any rune that is neither an
// operator nor part of a number is dropped without ending the current
// run.
func tokenize(s string) []string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	var tokens []string
	var num strings.Builder
	flush := func() {
		if num.Len() > 0 {
			tokens = append(tokens, num.String())
			num.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9' || r == '.':
			num.WriteRune(r)
		case r == '+' || r == '-' || r == '*' || r == '/' || r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		}
	}
	flush()

	return tokens
}

type parser struct {
	tokens []string
	pos    int
}

func (p *parser) peek() string {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return ""
}

// expression := term (('+'|'-') term)*
func (p *parser) expression() float64 {
	v := p.term()
	for {
		switch p.peek() {
		case "+":
			p.pos++
			v += p.term()
		case "-":
			p.pos++
			v -= p.term()
		default:
			return v
		}
	}
}

// term := factor (('*'|'/') factor)*
func (p *parser) term() float64 {
	v := p.factor()
	for {
		switch p.peek() {
		case "*":
			p.pos++
			v *= p.factor()
		case "/":
			p.pos++
			v /= p.factor()
		default:
			return v
		}
	}
}

// factor := number | '(' expression ')' | ('+'|'-') factor
func (p *parser) factor() float64 {
	switch tok := p.peek(); tok {
	case "+":
		p.pos++
		return p.factor()
	case "-":
		p.pos++
		return -p.factor()
	case "(":
		p.pos++
		v := p.expression()
		if p.peek() == ")" {
			p.pos++
		}
		return v
	case "":
		return 0
	default:
		p.pos++
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0
		}
		return f
	}
}

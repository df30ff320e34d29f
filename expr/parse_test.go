package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkmath/inkmath/recognize"
)

func results(chars ...string) []recognize.Result {
	out := make([]recognize.Result, len(chars))
	for i, c := range chars {
		out[i] = recognize.Result{Char: c, Confidence: 0.9, Type: recognize.Digit}
	}
	return out
}

func TestParse(t *testing.T) {
	p := Parse(results("2", "+", "2", "="))

	assert.Equal(t, "2+2=", p.Raw)
	assert.Equal(t, "2+2", p.Normalized)
	assert.True(t, p.Valid)
	assert.Len(t, p.Characters, 4)
}

func TestParseEmpty(t *testing.T) {
	p := Parse(nil)
	assert.Equal(t, "", p.Raw)
	assert.False(t, p.Valid)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2+2", "2+2"},
		{"2+2=", "2+2"},
		{"2+2 == ", "2+2"},
		{"3×4", "3*4"},
		{"8÷2", "8/2"},
		{"2(3+4)", "2*(3+4)"},
		{"(3+4)2", "(3+4)*2"},
		{"2(3)4", "2*(3)*4"},
		{"(1)(2)", "(1)(2)"}, // adjacent groups are left alone
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		expr string
		want bool
	}{
		{"2+2", true},
		{"-5+3", true},
		{"(2+3)*4", true},
		{"2.5/0.5", true},
		{"2++2", true}, // consecutive operators pass validation
		{"2+ 2", true},
		{"", false},
		{"2x2", false},
		{"*2", false},
		{"/2", false},
		{"2+", false},
		{"2-", false},
		{"2*", false},
		{"2/", false},
		{"(2+3", false},
		{"2+3)", false},
		{")2+3(", false},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.expr))
		})
	}
}

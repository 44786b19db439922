package walker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrInvalidInstruction is returned when a token does not match [L|R]<digits>.
var ErrInvalidInstruction = errors.New("invalid instruction format")

// Turn is the rotation applied before moving.
type Turn int

const (
	Left Turn = iota
	Right
)

// Capture is participle's hook for the Turn token.
func (t *Turn) Capture(values []string) error {
	switch strings.Join(values, "") {
	case "L":
		*t = Left
	case "R":
		*t = Right
	default:
		return fmt.Errorf("unknown turn %q", strings.Join(values, ""))
	}
	return nil
}

func (t Turn) String() string {
	if t == Right {
		return "R"
	}
	return "L"
}

// Instruction is one parsed token such as R4.
type Instruction struct {
	Turn  Turn `parser:"@Turn"`
	Steps int  `parser:"@Int"`
}

func (i Instruction) String() string {
	return fmt.Sprintf("%s%d", i.Turn, i.Steps)
}

type route struct {
	Instructions []*Instruction `parser:"@@ ( Comma Whitespace? @@ )*"`
}

// whitespace is only legal after a comma, so "R 4" does not lex into a valid route
var instructionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Turn", Pattern: `[LR]`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var parser = participle.MustBuild[route](
	participle.Lexer(instructionLexer),
	participle.Map(decimal, "Int"),
)

// decimal strips leading zeros so "R010" is ten steps, not an octal literal.
func decimal(tok lexer.Token) (lexer.Token, error) {
	tok.Value = strings.TrimLeft(tok.Value, "0")
	if tok.Value == "" {
		tok.Value = "0"
	}
	return tok, nil
}

// Parse splits a comma separated instruction list like "R2, L3".
// The whole input is rejected if any token is malformed.
func Parse(data string) ([]Instruction, error) {
	r, err := parser.ParseString("instructions", strings.TrimSpace(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstruction, err)
	}
	out := make([]Instruction, len(r.Instructions))
	for i, in := range r.Instructions {
		out[i] = *in
	}
	return out, nil
}

// MustParse is Parse for compiled-in literals.
func MustParse(data string) []Instruction {
	instructions, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return instructions
}

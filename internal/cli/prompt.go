package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Prompter reads line-oriented input and writes prompts. Every parse is
// done here; malformed numbers come back as reported errors, never as a
// crash.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// EOF reports whether input has run out; callers use it to break retry
// loops instead of spinning on empty reads.
func (p *Prompter) EOF() bool {
	return p.eof
}

// Line prompts and returns the next input line, trimmed.
func (p *Prompter) Line(prompt string) string {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		p.eof = true
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// Int prompts for a whole number.
func (p *Prompter) Int(prompt string) (int, error) {
	raw := p.Line(prompt)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", raw)
	}
	return n, nil
}

// Decimal prompts for an exact decimal amount.
func (p *Prompter) Decimal(prompt string) (decimal.Decimal, error) {
	raw := p.Line(prompt)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not a valid amount", raw)
	}
	return d, nil
}

// Package fixedwidth builds fixed-width text records with declared field
// widths, so that the total record length is checked structurally instead of
// after the fact.
package fixedwidth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

var ErrLength = errors.New("fixed-width line length mismatch")

// Line accumulates fields up to a declared total width. Append methods pad
// and truncate to the exact field width, so Build can only fail when the sum
// of declared widths disagrees with the line width (a layout defect).
type Line struct {
	want int
	b    strings.Builder
}

func NewLine(width int) *Line {
	l := &Line{want: width}
	l.b.Grow(width)
	return l
}

// Alpha appends an alphanumeric field: uppercased, diacritics stripped,
// right-padded with spaces, truncated at width. Width is counted in
// characters, and any rune outside the Latin-1 range becomes a space, so a
// field of width N always encodes to exactly N ISO8859-1 bytes.
func (l *Line) Alpha(width int, s string) *Line {
	s = strings.ToUpper(stripDiacritics(s))
	runes := make([]rune, 0, width)
	for _, r := range s {
		if len(runes) == width {
			break
		}
		if r > unicode.MaxLatin1 {
			r = ' '
		}
		runes = append(runes, r)
	}
	l.b.WriteString(string(runes))
	l.b.WriteString(strings.Repeat(" ", width-len(runes)))
	return l
}

// Blank appends a space-filled field.
func (l *Line) Blank(width int) *Line {
	l.b.WriteString(strings.Repeat(" ", width))
	return l
}

// Num appends a numeric field: non-digits stripped, left-padded with zeros.
// Overflow keeps the rightmost digits.
func (l *Line) Num(width int, s string) *Line {
	digits := onlyDigits(s)
	if len(digits) > width {
		digits = digits[len(digits)-width:]
	}
	l.b.WriteString(strings.Repeat("0", width-len(digits)))
	l.b.WriteString(digits)
	return l
}

// Int appends an integer as a zero-padded numeric field.
func (l *Line) Int(width int, v int) *Line {
	return l.Num(width, strconv.Itoa(v))
}

// Cents appends a monetary amount as integer cents, zero-padded, no decimal
// point. The amount is multiplied by 100 and rounded to the nearest cent.
func (l *Line) Cents(width int, v decimal.Decimal) *Line {
	cents := v.Mul(decimal.NewFromInt(100)).Round(0)
	return l.Num(width, cents.String())
}

// Build returns the assembled line, failing when its length differs from the
// declared width. Length is counted in characters: every appended rune is
// inside the Latin-1 range, so the character count equals the byte count of
// the ISO8859-1 encoding even when the in-memory UTF-8 form is longer.
func (l *Line) Build() (string, error) {
	s := l.b.String()
	if n := utf8.RuneCountInString(s); n != l.want {
		return "", fmt.Errorf("%w: got %d, want %d", ErrLength, n, l.want)
	}
	return s, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripDiacritics decomposes accented characters and drops the combining
// marks, keeping the field content inside the bank's accepted alphabet.
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Amr-9/b58check/pkg/address"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorPurple = "\033[35m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// Console writes human readable command output, optionally colored.
type Console struct {
	w     io.Writer
	color bool
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, color: color}
}

// paint wraps s in the given color codes when color output is enabled.
func (c *Console) paint(s string, codes ...string) string {
	if !c.color || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + ColorReset
}

// Value prints a bare result line, the part scripts consume.
func (c *Console) Value(s string) {
	fmt.Fprintln(c.w, c.paint(s, ColorGreen, ColorBold))
}

// Field prints a labelled value.
func (c *Console) Field(label, value string) {
	fmt.Fprintf(c.w, "%s %s\n", c.paint(fmt.Sprintf("%-10s", label+":"), ColorCyan), value)
}

// Fail prints a failure line with an optional hint.
func (c *Console) Fail(msg, hint string) {
	fmt.Fprintf(c.w, "%s %s\n", c.paint("✗", ColorRed, ColorBold), msg)
	if hint != "" {
		fmt.Fprintf(c.w, "  %s\n", c.paint("↪ "+hint, ColorYellow))
	}
}

// PrintResult shows a generated address and its private key.
func (c *Console) PrintResult(result *address.Result) {
	label := "📍 ADDRESS"
	switch result.Network {
	case address.Solana:
		label = "◎ SOLANA ADDRESS"
	case address.Bitcoin:
		label = "₿ BITCOIN ADDRESS"
	case address.Tron:
		label = "◈ TRON ADDRESS"
	}

	fmt.Fprintln(c.w, c.paint(label, ColorCyan, ColorBold))
	if result.Network == address.Bitcoin {
		fmt.Fprintln(c.w, "   "+c.paint(result.Type.String(), ColorDim))
	}
	fmt.Fprintln(c.w, "   "+c.paint(result.Address, ColorGreen, ColorBold))
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.paint("🔑 PRIVATE KEY", ColorPurple, ColorBold))
	fmt.Fprintln(c.w, "   "+c.paint(result.PrivateKey, ColorYellow))
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.paint("⚠  KEEP YOUR PRIVATE KEY SECRET!", ColorRed, ColorBold))
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%d", n)
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// FormatBytes describes a byte count, e.g. "1,024 bytes".
func FormatBytes(n int) string {
	if n == 1 {
		return "1 byte"
	}
	return FormatNumber(uint64(n)) + " bytes"
}

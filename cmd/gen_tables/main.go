// gen_tables generates the Base58 reverse lookup table.
// Output: a Go source file declaring digitsMap, a [256]int8 mapping every byte
// to its digit value or -1.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/Amr-9/b58check/pkg/base58"
)

const rowWidth = 16 // values per line

func main() {
	out := flag.String("out", "digits_table.go", "output file")
	flag.Parse()

	src, err := generate(base58.Alphabet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating table: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
}

// generate builds the formatted source of the table for alphabet.
func generate(alphabet string) ([]byte, error) {
	var table [256]int
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] >= 0x80 {
			return nil, fmt.Errorf("alphabet symbol %q is not ASCII", alphabet[i])
		}
		if table[alphabet[i]] != -1 {
			return nil, fmt.Errorf("alphabet symbol %q repeated", alphabet[i])
		}
		table[alphabet[i]] = i
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by gen_tables; DO NOT EDIT.\n\n")
	buf.WriteString("package base58\n\n")
	buf.WriteString("// digitsMap maps a byte to its Base58 digit value, or -1 if the byte is not\n")
	buf.WriteString("// in Alphabet.\n")
	buf.WriteString("var digitsMap = [256]int8{\n")
	for row := 0; row < len(table); row += rowWidth {
		vals := make([]string, rowWidth)
		for i := range vals {
			vals[i] = fmt.Sprint(table[row+i])
		}
		buf.WriteString("\t" + strings.Join(vals, ", ") + ",\n")
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

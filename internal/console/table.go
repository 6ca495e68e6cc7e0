package console

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

type borderSet struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical, cross                string
	teeLeft, teeRight, teeTop, teeBottom       string
}

var (
	lineBorders = borderSet{
		topLeft: "┌", topRight: "┐", bottomLeft: "└", bottomRight: "┘",
		horizontal: "─", vertical: "│", cross: "┼",
		teeLeft: "├", teeRight: "┤", teeTop: "┬", teeBottom: "┴",
	}
	asciiBorders = borderSet{
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|", cross: "+",
		teeLeft: "|", teeRight: "|", teeTop: "+", teeBottom: "+",
	}
)

// PrintTable prints a table with the given headers and data to stdout.
// data is a flat list of cells; a short final row is padded with empty cells.
// useLineChars selects Unicode box drawing characters over ASCII.
func PrintTable(headers []string, data []string, useLineChars bool) {
	FprintTable(os.Stdout, headers, data, useLineChars)
}

// FprintTable is PrintTable writing to w.
func FprintTable(w io.Writer, headers []string, data []string, useLineChars bool) {
	cols := len(headers)
	if cols == 0 {
		return
	}

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = max(widths[i], visibleWidth(h))
	}
	for i, d := range data {
		widths[i%cols] = max(widths[i%cols], visibleWidth(d))
	}

	b := asciiBorders
	if useLineChars {
		b = lineBorders
	}

	border := func(left, mid, right string) string {
		var sb strings.Builder
		sb.WriteString(left)
		for i, width := range widths {
			sb.WriteString(strings.Repeat(b.horizontal, width+2))
			if i < cols-1 {
				sb.WriteString(mid)
			}
		}
		sb.WriteString(right)
		return sb.String()
	}

	printRow := func(cells []string) {
		var sb strings.Builder
		sb.WriteString(b.vertical)
		for i, cell := range cells {
			sb.WriteString(" ")
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", widths[i]-visibleWidth(cell)))
			sb.WriteString(" ")
			sb.WriteString(b.vertical)
		}
		fmt.Fprintln(w, ToANSI(sb.String()))
	}

	fmt.Fprintln(w, border(b.topLeft, b.teeTop, b.topRight))
	printRow(headers)
	fmt.Fprintln(w, border(b.teeLeft, b.cross, b.teeRight))
	for i := 0; i < len(data); i += cols {
		row := make([]string, cols)
		copy(row, data[i:min(i+cols, len(data))])
		printRow(row)
	}
	fmt.Fprintln(w, border(b.bottomLeft, b.teeBottom, b.bottomRight))
}

func visibleWidth(s string) int {
	return utf8.RuneCountInString(Strip(s))
}

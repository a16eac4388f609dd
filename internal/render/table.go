// Package render formats reports and generated values for output.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table lays out headers and rows in space-separated, aligned columns.
func Table(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		colCount = max(colCount, len(row))
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], displayWidth(cell))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		last := i == len(widths)-1
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i], last))
	}
	return b.String()
}

func padCell(value string, width int, rightAlign, last bool) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	if last {
		return value
	}
	return value + strings.Repeat(" ", padding)
}

// displayWidth measures terminal columns, so wide runes and ANSI-free
// combining marks align correctly.
func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}

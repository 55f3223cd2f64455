package sqlcmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	truncatedStringEnd = " ..."
	maxLength          = 40
	maxMultiLineLength = 500
	nullValue          = "NULL"
)

// PrintTable renders columns and rows as a plain text table. Values longer
// than maxLength wrap onto extra lines within their cell, values longer
// than maxMultiLineLength are truncated.
func PrintTable(w io.Writer, columns []string, rows [][]any) {
	cells := make([][]string, 0, len(rows))
	for _, aRow := range rows {
		cells = append(cells, formatRow(aRow, len(columns)))
	}

	columnSize := computeTableSize(columns, cells)
	printTableHeader(w, columns, columnSize)
	for _, aRow := range cells {
		printTableRow(w, aRow, columnSize)
	}
}

func printTableHeader(w io.Writer, columns []string, columnSize []int) {
	for i, aColumn := range columns {
		fmt.Fprintf(w, " %-*s ", columnSize[i], aColumn)
		if i != len(columns)-1 {
			fmt.Fprint(w, "|")
		}
	}
	fmt.Fprint(w, "\n")

	// horizontal border below the header row
	for i, size := range columnSize {
		fmt.Fprint(w, strings.Repeat("-", size+2))
		if i != len(columnSize)-1 {
			fmt.Fprint(w, "+")
		}
	}
	fmt.Fprint(w, "\n")
}

func printTableRow(w io.Writer, values []string, columnSize []int) {
	lines := make([][]string, 0, 1)
	lines = append(lines, make([]string, len(values)))
	for i, aValue := range values {
		if utf8.RuneCountInString(aValue) <= maxLength && !strings.Contains(aValue, "\n") {
			lines[0][i] = aValue
			continue
		}

		for j, part := range splitStringIntoLines(aValue, maxLength) {
			if j == len(lines) {
				lines = append(lines, make([]string, len(values)))
			}
			lines[j][i] = part
		}
	}

	for _, aLine := range lines {
		for j, aCell := range aLine {
			fmt.Fprintf(w, " %-*s ", columnSize[j], aCell)
			if j != len(aLine)-1 {
				fmt.Fprint(w, "|")
			}
		}
		fmt.Fprint(w, "\n")
	}
}

func formatRow(values []any, width int) []string {
	row := make([]string, width)
	for i := range row {
		if i >= len(values) || values[i] == nil {
			row[i] = nullValue
			continue
		}

		var aStringValue string
		switch v := values[i].(type) {
		case []byte:
			aStringValue = string(v)
		default:
			aStringValue = fmt.Sprint(v)
		}

		r := []rune(aStringValue)
		if len(r) >= maxMultiLineLength {
			aStringValue = string(r[0:maxMultiLineLength-len(truncatedStringEnd)]) + truncatedStringEnd
		}
		row[i] = aStringValue
	}
	return row
}

func splitStringIntoLines(text string, maxWidth int) []string {
	if len(text) == 0 {
		return []string{""}
	}

	lines := strings.Split(text, "\n")
	finalLines := make([]string, 0, len(lines))

	for _, line := range lines {
		runes := []rune(line)
		if len(runes) <= maxWidth {
			finalLines = append(finalLines, line)
			continue
		}
		for i := 0; i < len(runes); i += maxWidth {
			end := min(i+maxWidth, len(runes))
			finalLines = append(finalLines, string(runes[i:end]))
		}
	}

	return finalLines
}

// computeTableSize sizes each column to its widest header or value line,
// capped at maxLength.
func computeTableSize(columns []string, rows [][]string) []int {
	columnSize := make([]int, len(columns))
	for i, aColumn := range columns {
		columnSize[i] = min(utf8.RuneCountInString(aColumn), maxLength)
	}
	for _, aRow := range rows {
		for i, aValue := range aRow {
			for _, line := range splitStringIntoLines(aValue, maxLength) {
				columnSize[i] = max(columnSize[i], utf8.RuneCountInString(line))
			}
		}
	}
	return columnSize
}

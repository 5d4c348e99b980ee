package parser

// HeaderSearchLimit bounds how many leading rows DetectHeaderRow inspects.
const HeaderSearchLimit = 50

// DetectHeaderRow returns the 0-based index of the first row carrying all
// identifier columns, or -1 when none of the first HeaderSearchLimit rows does.
func DetectHeaderRow(rows [][]string) int {
	for rowIdx, row := range rows {
		if rowIdx >= HeaderSearchLimit {
			break
		}
		if countNonEmptyCells(row) < 4 {
			continue
		}
		if isHeaderRecord(row) {
			return rowIdx
		}
	}
	return -1
}

// countNonEmptyCells counts non-blank cells of a row.
func countNonEmptyCells(row []string) int {
	count := 0
	for _, cell := range row {
		if cell != "" {
			count++
		}
	}
	return count
}

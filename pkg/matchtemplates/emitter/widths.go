package emitter

import "unicode/utf8"

// widthPadding is added to the longest value in a column.
const widthPadding = 2

// ColumnWidths returns the display width of each column: the length of the
// longest value in characters plus padding, capped at maxWidth.
func ColumnWidths(rows [][]string, maxWidth float64) []float64 {
	var longest []int
	for _, row := range rows {
		for i, v := range row {
			for len(longest) <= i {
				longest = append(longest, 0)
			}
			if n := utf8.RuneCountInString(v); n > longest[i] {
				longest[i] = n
			}
		}
	}

	widths := make([]float64, len(longest))
	for i, n := range longest {
		w := float64(n + widthPadding)
		if maxWidth > 0 && w > maxWidth {
			w = maxWidth
		}
		widths[i] = w
	}
	return widths
}

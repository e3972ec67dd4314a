package report

import (
	"bufio"
	"io"
	"strings"
)

const bom = "\ufeff"

// WriteCSV writes rows with a UTF-8 byte order mark and every cell quoted,
// which spreadsheet apps need to pick the right encoding.
func WriteCSV(w io.Writer, rows [][]string) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(bom)
	for i, row := range rows {
		if i > 0 {
			bw.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				bw.WriteByte(',')
			}
			bw.WriteByte('"')
			bw.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			bw.WriteByte('"')
		}
	}
	return bw.Flush()
}

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// renderTable writes the final strings as a table pairing each string
// with its UTF-8 byte length and a hex dump of its raw bytes.
func renderTable(w io.Writer, final []string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"String", "UTF-8 Bytes", "Bytes"})
	table.SetAutoWrapText(false)

	for _, s := range final {
		table.Append([]string{
			s,
			strconv.Itoa(len(s)),
			fmt.Sprintf("% x", []byte(s)),
		})
	}

	table.Render()
}

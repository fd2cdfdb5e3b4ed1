package htmltable

import (
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"strings"
)

const tableFormat = "<table class=\"table table-bordered table-striped table-condensed\">\n%s</table>"

// convert the given CSV text to an HTML table. Every record becomes a row and every field a cell. Records without any
// non empty field are skipped and all cell values are HTML escaped
func FromCsv(csvText string) (string, error) {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	var rows strings.Builder
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if isEmptyRecord(record) {
			continue
		}
		rows.WriteString("<tr>")
		for _, field := range record {
			rows.WriteString(fmt.Sprintf("<td>%s</td>\n", html.EscapeString(field)))
		}
		rows.WriteString("</tr>\n")
	}
	return fmt.Sprintf(tableFormat, rows.String()), nil
}

func isEmptyRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

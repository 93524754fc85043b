package output

import (
	"io"
	"strings"
	"text/tabwriter"

	"fdnsfilter/internal/fdns"
)

// WriteTable prints records as aligned columns: name, value, type, timestamp.
func WriteTable(w io.Writer, list []fdns.Record, header bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if header {
		if _, err := io.WriteString(tw, strings.Join(TableHeader, "\t")+"\n"); err != nil {
			return err
		}
	}
	for _, r := range list {
		row := cell(r.Name) + "\t" + cell(r.Value) + "\t" + cell(r.Kind) + "\t" + cell(r.Timestamp) + "\n"
		if _, err := io.WriteString(tw, row); err != nil {
			return err
		}
	}
	return tw.Flush()
}

var cellReplacer = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

// cell keeps a value inside one column; tabs and newlines break the layout.
func cell(s string) string {
	if !strings.ContainsAny(s, "\t\n\r") {
		return s
	}
	return cellReplacer.Replace(s)
}

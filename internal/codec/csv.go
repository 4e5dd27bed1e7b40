// Package codec implements the two serialized forms of the catalog:
// spreadsheet-oriented CSV export and JSON backup/restore.
package codec

import (
	"strings"
	"time"

	"github.com/somi-im/somi/internal/domain"
)

// csvHeader is the literal export column set, in order.
const csvHeader = "ID,Domain,Provider,Price,Status,Expiry Date,Note"

// utf8BOM keeps Excel happy with UTF-8 content.
const utf8BOM = "\xef\xbb\xbf"

// ExportCSV renders the collection as CSV, one row per record in
// collection order, prefixed with a UTF-8 BOM.
//
// Only the note field is quoted (with internal quotes doubled); every
// other field is emitted raw, so a comma inside a name or price corrupts
// its row. That limitation is inherited from the original exporter and
// kept as-is: the export is consumed by spreadsheet tools, never
// re-imported by our own pipeline.
func ExportCSV(records []domain.Record) []byte {
	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString(csvHeader)

	for _, r := range records {
		b.WriteByte('\n')
		b.WriteString(r.ID)
		b.WriteByte(',')
		b.WriteString(r.Name)
		b.WriteByte(',')
		b.WriteString(r.Provider)
		b.WriteByte(',')
		b.WriteString(r.Price)
		b.WriteByte(',')
		b.WriteString(string(r.Status))
		b.WriteByte(',')
		b.WriteString(r.ExpiryDate)
		b.WriteByte(',')
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(r.Note, `"`, `""`))
		b.WriteByte('"')
	}
	return []byte(b.String())
}

// CSVFilename returns the download name for a CSV export taken at now.
func CSVFilename(now time.Time) string {
	return "somi_domains_" + now.Format("2006-01-02") + ".csv"
}

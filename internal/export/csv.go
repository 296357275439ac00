package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/tbg-enterprises/quote-builder/internal/quote"
	"github.com/tbg-enterprises/quote-builder/pkg/datetime"
)

// csvHeader is the fixed column contract of the online estimate import.
var csvHeader = []string{
	"Customer",
	"EstimateNumber",
	"EstimateDate",
	"ExpirationDate",
	"ItemDescription",
	"ItemQuantity",
	"ItemRate",
	"ItemAmount",
	"Memo",
}

// QBOCSV writes the quote as a QuickBooks Online estimate CSV: one row per
// included line item. The project description rides along in the Memo column
// of the first row only; embedded commas and newlines are quoted per RFC
// 4180 by the csv writer.
func QBOCSV(w io.Writer, q quote.Quote) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	expiration := datetime.ExpirationDate(q.Date, q.ValidDays)
	for i, item := range q.IncludedItems() {
		memo := ""
		if i == 0 {
			memo = q.ProjectDescription
		}
		row := []string{
			q.Customer.Name,
			q.Number,
			q.Date,
			expiration,
			item.Memo(),
			item.Quantity,
			formatNumber(quote.ParseRate(item.Rate)),
			formatNumber(item.Amount()),
			memo,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// QBOCSVFile validates the quote and writes the CSV export to path.
func QBOCSVFile(path string, q quote.Quote) error {
	return writeFile(path, q, func(f *os.File) error {
		return QBOCSV(f, q)
	})
}

// formatNumber renders rates and amounts as plain decimal numbers with no
// padding or separators ("8.5", "1020").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

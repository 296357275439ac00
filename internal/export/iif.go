package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tbg-enterprises/quote-builder/internal/quote"
	"github.com/tbg-enterprises/quote-builder/pkg/constants"
)

// IIF schema framing for estimate transactions. Emitted once per file.
const (
	iifTrnsSchema = "!TRNS\tTRNSTYPE\tDATE\tACCNT\tNAME\tCLASS\tAMOUNT\tDOCNUM\tMEMO"
	iifSplSchema  = "!SPL\tTRNSTYPE\tDATE\tACCNT\tNAME\tAMOUNT\tDOCNUM\tMEMO\tQNTY\tPRICE"
	iifEndSchema  = "!ENDTRNS"
)

// QBIIF writes the quote as one QuickBooks Desktop IIF transaction: a header
// line carrying the full subtotal against the receivables account, then one
// split line per included item posting the negative of its amount against
// the services account. Splits balance the header, so they sum to exactly
// -subtotal. The sign convention is the desktop import's debit/credit
// contract; do not change it.
func QBIIF(w io.Writer, q quote.Quote, totals quote.Totals) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, iifTrnsSchema)
	fmt.Fprintln(bw, iifSplSchema)
	fmt.Fprintln(bw, iifEndSchema)

	fmt.Fprintf(bw, "TRNS\t%s\t%s\t%s\t%s\t\t%.2f\t%s\t%s\n",
		constants.TransactionType,
		q.Date,
		constants.ReceivablesAccount,
		q.Customer.Name,
		totals.Subtotal,
		q.Number,
		truncate(q.ProjectDescription, constants.MemoMaxLen),
	)

	for _, item := range q.IncludedItems() {
		fmt.Fprintf(bw, "SPL\t%s\t%s\t%s\t%s\t%.2f\t%s\t%s\t%s\t%.2f\n",
			constants.TransactionType,
			q.Date,
			constants.ServicesAccount,
			q.Customer.Name,
			-item.Amount(),
			q.Number,
			truncate(item.Memo(), constants.MemoMaxLen),
			item.Quantity,
			quote.ParseRate(item.Rate),
		)
	}

	fmt.Fprintln(bw, "ENDTRNS")
	return bw.Flush()
}

// QBIIFFile validates the quote and writes the IIF export to path.
func QBIIFFile(path string, q quote.Quote, totals quote.Totals) error {
	return writeFile(path, q, func(f *os.File) error {
		return QBIIF(f, q, totals)
	})
}

// Package constants provides shared constants for the quote-builder application.
package constants

// DateLayout is the MM/DD/YYYY format used on quotes and in both
// accounting exports.
const DateLayout = "01/02/2006"

// Financial constants
const (
	// DepositRate is the fixed fraction of the subtotal due upon acceptance.
	DepositRate = 0.20

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (one cent)
	CurrencyTolerance = 0.01

	// MinDurationWeeks is the floor applied to the project duration.
	MinDurationWeeks = 1

	// DefaultValidDays is the validity period assumed when none is given.
	DefaultValidDays = 30
)

// Output format constants
const (
	// OutputFormatPDF renders the styled quote document.
	OutputFormatPDF = "pdf"

	// OutputFormatQBOCSV exports a QuickBooks Online estimate CSV.
	OutputFormatQBOCSV = "qbo-csv"

	// OutputFormatQBIIF exports a QuickBooks Desktop IIF file.
	OutputFormatQBIIF = "qb-iif"

	// OutputFormatSummary prints a human-readable totals table to stdout.
	OutputFormatSummary = "summary"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// CategoriesFileName is the category-list preferences file kept in the
	// user's home directory.
	CategoriesFileName = ".tbg_quote_builder.json"
)

// Accounting export constants
const (
	// ReceivablesAccount is the account the IIF transaction header posts to.
	ReceivablesAccount = "Accounts Receivable"

	// ServicesAccount is the account each IIF split line posts to.
	ServicesAccount = "Services"

	// TransactionType is the IIF transaction type for estimates.
	TransactionType = "ESTIMATE"

	// MemoMaxLen is the IIF memo field limit.
	MemoMaxLen = 50

	// ExpirationFallback is emitted when the quote date cannot be parsed.
	ExpirationFallback = "30 days from date"
)

// Company identity defaults, overridable via configuration.
const (
	DefaultCompanyName    = "TBG ENTERPRISES"
	DefaultCompanyTagline = "enterprises"
	DefaultCompanyMark    = "TBG"
	DefaultCompanyAddress = "4351 Latimer Cr, Burlington ON L7M 4R3"
	DefaultCompanyPhone   = "(416) 271-4341"
	DefaultCompanyEmail   = "Ted@TBGEnterprises.com"
)

// Attachment rendering constants
const (
	// AttachmentMaxWidthInches bounds embedded attachment width.
	AttachmentMaxWidthInches = 7.0

	// AttachmentMaxHeightInches bounds embedded attachment height.
	AttachmentMaxHeightInches = 9.0

	// AttachmentDPI is the resolution paged documents are rasterized at.
	AttachmentDPI = 150.0
)

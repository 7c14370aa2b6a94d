package export

// ============================================================================
// Format Settings
// ============================================================================

// FormatVersion stamps every JSON export document
const FormatVersion = "1.0"

// ShareURLBase is the wynnbuilder import URL prefix
const ShareURLBase = "https://wynnbuilder.github.io/#"

// ShareEncodingVersion is the wynnbuilder payload version the share URL
// encodes
const ShareEncodingVersion = 9

// BuildHashLength truncates the hash digest to a compact identifier
const BuildHashLength = 12

// ============================================================================
// Workbook Settings
// ============================================================================

// WorkbookSheetName is the sheet holding the exported builds
const WorkbookSheetName = "Builds"

// ============================================================================
// Text Summary Layout
// ============================================================================

const (
	summaryRuleWidth = 60
	sectionRuleWidth = 40
)

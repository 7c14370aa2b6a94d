package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"

	ErrMsgUnknownExportFormat = "Unknown export format. Valid options: json, url, text, xlsx"
	ErrMsgCatalogUnavailable  = "Item catalog is not loaded yet. Try again later."

	// Generic fallbacks
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
)

// User-facing success messages
const (
	MsgCatalogReloaded = "Catalog reloaded successfully"
)

// Log messages shared by the handlers
const (
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgValidationFailed = "Request validation failed"
	LogMsgGenerateFailed   = "Failed to generate builds"
	LogMsgExportFailed     = "Failed to export build"
	LogMsgCompareFailed    = "Failed to compare builds"
	LogMsgReloadFailed     = "Catalog reload failed"
	LogMsgReloadCompleted  = "Catalog reload completed"
)

// Content types and response headers
const (
	ContentTypeXLSX        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeText        = "text/plain; charset=utf-8"
	HeaderContentDispo     = "Content-Disposition"
	WorkbookFilenameFormat = `attachment; filename="%s-builds.xlsx"`
)

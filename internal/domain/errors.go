package domain

import "errors"

// Error message constants
const (
	// Input validation errors
	ErrMsgUnknownClass     = "unknown class"
	ErrMsgUnknownPlaystyle = "unknown playstyle"
	ErrMsgUnknownElement   = "unknown element"
	ErrMsgUnknownSlot      = "unknown equipment slot"
	ErrMsgUnknownTier      = "unknown rarity tier"
	ErrMsgInvalidLevel     = "invalid level range"
	ErrMsgInvalidTopN      = "top-n must not be negative"
	ErrMsgInvalidInput     = "invalid input"

	// Catalog errors
	ErrMsgCatalogNotLoaded = "item catalog not loaded"
	ErrMsgCatalogEmpty     = "item catalog is empty"
	ErrMsgItemNotFound     = "item not found"

	// Generation errors
	ErrMsgNoCandidates  = "no candidate items for slot"
	ErrMsgNoBuildsFound = "no valid builds found"

	// Scoring errors
	ErrMsgInvalidScoringExpr = "invalid scoring expression"

	// Profile errors
	ErrMsgProfileNotFound = "profile not found"

	// Export errors
	ErrMsgBuildIncomplete = "build is missing mandatory equipment"

	// System errors
	ErrMsgDatabaseError = "database operation failed"
	ErrMsgInternalError = "internal server error"
)

// Sentinel errors for known failure conditions
var (
	ErrUnknownClass       = errors.New(ErrMsgUnknownClass)
	ErrUnknownPlaystyle   = errors.New(ErrMsgUnknownPlaystyle)
	ErrUnknownElement     = errors.New(ErrMsgUnknownElement)
	ErrUnknownSlot        = errors.New(ErrMsgUnknownSlot)
	ErrUnknownTier        = errors.New(ErrMsgUnknownTier)
	ErrInvalidLevel       = errors.New(ErrMsgInvalidLevel)
	ErrInvalidTopN        = errors.New(ErrMsgInvalidTopN)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
	ErrCatalogNotLoaded   = errors.New(ErrMsgCatalogNotLoaded)
	ErrCatalogEmpty       = errors.New(ErrMsgCatalogEmpty)
	ErrItemNotFound       = errors.New(ErrMsgItemNotFound)
	ErrNoCandidates       = errors.New(ErrMsgNoCandidates)
	ErrNoBuildsFound      = errors.New(ErrMsgNoBuildsFound)
	ErrInvalidScoringExpr = errors.New(ErrMsgInvalidScoringExpr)
	ErrProfileNotFound    = errors.New(ErrMsgProfileNotFound)
	ErrBuildIncomplete    = errors.New(ErrMsgBuildIncomplete)
	ErrDatabaseError      = errors.New(ErrMsgDatabaseError)
	ErrInternalError      = errors.New(ErrMsgInternalError)
)

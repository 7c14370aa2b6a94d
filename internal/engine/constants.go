package engine

// ============================================================================
// Generation Limits
// ============================================================================

// DefaultMaxCombinations bounds the raw combinations one request may inspect
const DefaultMaxCombinations = 50000

// DefaultCandidateLimit caps each slot's candidate list after filtering
const DefaultCandidateLimit = 20

// DefaultTopN is the result size when the request does not specify one
const DefaultTopN = 10

// DefaultMaxSkillPoints caps per-stat and total skill requirements
const DefaultMaxSkillPoints = 200

// DefaultLevelMin and DefaultLevelMax bound the item level filter when the
// request leaves the range open
const (
	DefaultLevelMin = 1
	DefaultLevelMax = 106
)

// ============================================================================
// Filter Scoring
// ============================================================================

// ElementMatchScore is awarded per matching elemental damage or defense
// stat during the element stage
const ElementMatchScore = 2

// ElementNeutralScore is the fallback score for items with no matching
// elemental stat when boost mode is off
const ElementNeutralScore = 1

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgGenerationStarted    = "Build generation started"
	LogMsgGenerationFinished   = "Build generation finished"
	LogMsgGenerationTruncated  = "Combination cap reached, returning builds found so far"
	LogMsgMissingMandatorySlot = "No candidates for mandatory slot"
	LogMsgScorerCompileFailed  = "Custom scorer failed to compile, using default weights"
	LogMsgScorerEvalFailed     = "Custom scorer failed to evaluate, using default weights for build"
)

// ============================================================================
// Diagnostics
// ============================================================================

// DiagNoCandidatesFormat is the diagnostic emitted when a mandatory slot
// has no surviving candidates
const DiagNoCandidatesFormat = "no candidates for slot %s"

// WarnScorerCompileFormat is the warning recorded when a custom scoring
// expression cannot be compiled
const WarnScorerCompileFormat = "custom scorer rejected (%s), default weights used"

package discord

// Friendly message constants for Discord responses
const (
	MsgItemNotFound       = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgProfileNotFound    = "❓ **Unknown Profile**\nTry one of: default, spellspam, melee, tank, hybrid."
	MsgCatalogUnavailable = "📦 **Catalog Unavailable**\nThe item catalog is not loaded right now. Try again in a minute."
	MsgBuildIncomplete    = "🛡️ **Incomplete Build**\nA build needs a weapon plus all four armor pieces."
	MsgInvalidLevel       = "📏 **Invalid Level**\nLevels run from 1 to 106."
	MsgAPIUnreachable     = "🔌 **Service Unreachable**\nThe build service is not responding. Try again later."
	MsgNoBuildsFound      = "🤷 **No Builds Found**\nNo valid combination survived your constraints. Loosen the filters and retry."
)

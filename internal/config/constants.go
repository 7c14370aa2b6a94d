package config

const (
	// Configuration file paths
	ConfigPathProfiles     = "configs/profiles.yaml"
	ConfigPathSampleItems  = "configs/items/sample_items.json"
	ConfigPathItemSchema   = "configs/schema/item.schema.json"
	ConfigPathCatalogCache = "data/items_cache.json"
)

const (
	// DefaultCatalogURL is the primary item database endpoint
	DefaultCatalogURL = "https://raw.githubusercontent.com/wynnbuilder/wynnbuilder.github.io/HEAD/js/items.json"

	// DefaultCatalogFallbackURL is queried when the primary endpoint fails
	DefaultCatalogFallbackURL = "https://api.wynncraft.com/v3/item/database"
)

const (
	// DefaultMaxSkillPoints caps both individual skill requirements and the
	// total a build may demand
	DefaultMaxSkillPoints = 200

	// DefaultMaxCombinations bounds how many raw equipment combinations a
	// single generation request may enumerate
	DefaultMaxCombinations = 50000

	// DefaultTopN is how many builds a generation request returns when the
	// caller does not ask for a specific count
	DefaultTopN = 10

	// DefaultCandidateLimit caps the per-slot candidate list after filtering
	DefaultCandidateLimit = 20
)

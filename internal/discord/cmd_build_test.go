package discord

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/handler"
)

func scoredMageBuild() domain.ScoredBuild {
	return domain.ScoredBuild{
		Build: domain.Build{
			Class:      domain.ClassMage,
			Weapon:     &domain.Item{Name: "Warp", Slot: domain.SlotWeapon, Tier: domain.TierMythic, Level: 95},
			Helmet:     &domain.Item{Name: "Morph-Stardust", Slot: domain.SlotHelmet, Tier: domain.TierUnique, Level: 101},
			Chestplate: &domain.Item{Name: "Ornate Shadow Garb", Slot: domain.SlotChestplate, Tier: domain.TierSet, Level: 103},
			Leggings:   &domain.Item{Name: "Anamnesis", Slot: domain.SlotLeggings, Tier: domain.TierRare, Level: 100},
			Boots:      &domain.Item{Name: "Gales Force", Slot: domain.SlotBoots, Tier: domain.TierLegendary, Level: 95},
		},
		Derived: domain.DerivedStats{
			DPS:         3500,
			EffectiveHP: domain.EffectiveHP{Combined: 21000},
			ManaSustain: 4.5,
			Cost:        12,
		},
		Score: 4200,
	}
}

func TestWynnbuildCommand_Definition(t *testing.T) {
	cmd, handlerFn := WynnbuildCommand()

	require.NotNil(t, handlerFn)
	assert.Equal(t, "wynnbuild", cmd.Name)
	require.Len(t, cmd.Options, 4)

	classOpt := cmd.Options[0]
	assert.Equal(t, "class", classOpt.Name)
	assert.True(t, classOpt.Required)
	assert.Len(t, classOpt.Choices, len(domain.Classes))

	assert.Equal(t, "level", cmd.Options[1].Name)
	assert.False(t, cmd.Options[1].Required)
	assert.Len(t, cmd.Options[2].Choices, len(domain.Playstyles))
}

func TestWynnbuildCommand_Success(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handlerFn := WynnbuildCommand()

	var captured handler.GenerateBuildsRequest
	ctx.Mux.HandleFunc("/api/v1/builds/generate", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		writeJSON(w, http.StatusOK, handler.GenerateBuildsResponse{
			Count:   1,
			Checked: 5000,
			Valid:   320,
			Builds:  []domain.ScoredBuild{scoredMageBuild()},
		})
	})

	interaction := createTestInteraction(cmd.Name, []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "class", Type: discordgo.ApplicationCommandOptionString, Value: "mage"},
		{Name: "level", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(103)},
	})

	handlerFn(ctx.Session, interaction, ctx.APIClient)

	assert.Equal(t, "mage", captured.Class)
	assert.Equal(t, 1, captured.TopN)
	assert.Equal(t, 103, captured.CharacterLevel)
	assert.Equal(t, 103, captured.LevelMax)

	embed := ctx.LastEmbed()
	require.NotNil(t, embed)
	assert.Equal(t, "Best Mage build", embed.Title)
	assert.Contains(t, embed.Description, "Score **4200**")
	assert.Contains(t, embed.Description, "320 of 5000")
	assert.Equal(t, tierColors[domain.TierMythic], embed.Color)
	assert.Equal(t, FooterWynnForge, embed.Footer.Text)

	// Five equipped slots plus the stats row
	require.Len(t, embed.Fields, 6)
	assert.Equal(t, "Weapon", embed.Fields[0].Name)
	assert.Equal(t, "Warp (Mythic, lv 95)", embed.Fields[0].Value)
	assert.Equal(t, "Stats", embed.Fields[5].Name)
	assert.Contains(t, embed.Fields[5].Value, "DPS **3500**")
	assert.Contains(t, embed.Fields[5].Value, "Mana **4.5**/s")
}

func TestWynnbuildCommand_NoBuilds(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handlerFn := WynnbuildCommand()

	ctx.Mux.HandleFunc("/api/v1/builds/generate", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, handler.GenerateBuildsResponse{Count: 0})
	})

	interaction := createTestInteraction(cmd.Name, []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "class", Type: discordgo.ApplicationCommandOptionString, Value: "shaman"},
	})

	handlerFn(ctx.Session, interaction, ctx.APIClient)

	assert.Equal(t, MsgNoBuildsFound, ctx.LastContent())
}

func TestWynnbuildCommand_CatalogDown(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handlerFn := WynnbuildCommand()

	ctx.Mux.HandleFunc("/api/v1/builds/generate", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, handler.ErrorResponse{Error: handler.ErrMsgCatalogUnavailable})
	})

	interaction := createTestInteraction(cmd.Name, []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "class", Type: discordgo.ApplicationCommandOptionString, Value: "mage"},
	})

	handlerFn(ctx.Session, interaction, ctx.APIClient)

	assert.Equal(t, MsgCatalogUnavailable, ctx.LastContent())
}

func TestBuildGenerateRequest(t *testing.T) {
	i := createTestInteraction("wynnbuild", []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "class", Type: discordgo.ApplicationCommandOptionString, Value: "archer"},
		{Name: "playstyle", Type: discordgo.ApplicationCommandOptionString, Value: "melee"},
		{Name: "elements", Type: discordgo.ApplicationCommandOptionString, Value: "Thunder, water"},
	})

	req := buildGenerateRequest(optionMap(i))

	assert.Equal(t, "archer", req.Class)
	assert.Equal(t, "melee", req.Playstyle)
	assert.Equal(t, []string{"thunder", "water"}, req.Elements)
	assert.Equal(t, 1, req.TopN)
	assert.Zero(t, req.CharacterLevel)
}

func TestParseElements(t *testing.T) {
	assert.Equal(t, []string{"thunder", "water"}, parseElements("thunder,water"))
	assert.Equal(t, []string{"thunder", "water"}, parseElements("Thunder Water"))
	assert.Equal(t, []string{"fire"}, parseElements("  fire  "))
	assert.Empty(t, parseElements(""))
}

func TestBestTier(t *testing.T) {
	build := scoredMageBuild().Build
	assert.Equal(t, domain.TierMythic, bestTier(&build))

	build.Weapon.Tier = domain.TierUnique
	assert.Equal(t, domain.TierLegendary, bestTier(&build))
}

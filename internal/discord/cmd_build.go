package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wynnforge/wynnforge/internal/domain"
	"github.com/wynnforge/wynnforge/internal/handler"
)

// titler capitalizes class, playstyle and slot names for display
var titler = cases.Title(language.English)

// WynnbuildCommand returns the /wynnbuild command definition and handler
func WynnbuildCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "wynnbuild",
		Description: "Generate the best equipment build for a class",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "class",
				Description: "Character class",
				Required:    true,
				Choices:     classChoices(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "level",
				Description: "Character level (default: 106)",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "playstyle",
				Description: "Playstyle to optimize for",
				Required:    false,
				Choices:     playstyleChoices(),
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "elements",
				Description: "Preferred elements, comma separated (e.g. thunder,water)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		req := buildGenerateRequest(optionMap(i))

		result, err := client.GenerateBuilds(req)
		if err != nil {
			slog.Error("Failed to generate builds", "error", err)
			respondFriendlyError(s, i, err.Error())
			return
		}

		if result.Count == 0 {
			respondError(s, i, MsgNoBuildsFound)
			return
		}

		sendEmbed(s, i, buildEmbed(req.Class, &result.Builds[0], result))
	}

	return cmd, handler
}

func classChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Classes))
	for _, c := range domain.Classes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  titler.String(string(c)),
			Value: string(c),
		})
	}
	return choices
}

func playstyleChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Playstyles))
	for _, p := range domain.Playstyles {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  titler.String(string(p)),
			Value: string(p),
		})
	}
	return choices
}

// buildGenerateRequest translates interaction options into an API request
func buildGenerateRequest(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) handler.GenerateBuildsRequest {
	req := handler.GenerateBuildsRequest{TopN: 1}

	if opt, ok := opts["class"]; ok {
		req.Class = opt.StringValue()
	}
	if opt, ok := opts["level"]; ok {
		req.CharacterLevel = int(opt.IntValue())
		req.LevelMax = int(opt.IntValue())
	}
	if opt, ok := opts["playstyle"]; ok {
		req.Playstyle = opt.StringValue()
	}
	if opt, ok := opts["elements"]; ok {
		req.Elements = parseElements(opt.StringValue())
	}

	return req
}

// parseElements splits a user-typed element list on commas and spaces
func parseElements(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	})
	elements := make([]string, 0, len(fields))
	for _, f := range fields {
		elements = append(elements, strings.ToLower(strings.TrimSpace(f)))
	}
	return elements
}

// buildEmbed renders one scored build as a Discord embed
func buildEmbed(class string, sb *domain.ScoredBuild, result *handler.GenerateBuildsResponse) *discordgo.MessageEmbed {
	title := fmt.Sprintf("Best %s build", titler.String(class))
	description := fmt.Sprintf("Score **%.0f** · %d of %d combinations valid",
		sb.Score, result.Valid, result.Checked)
	if result.Truncated {
		description += " (search truncated)"
	}

	embed := createEmbed(title, description, colorForTier(bestTier(&sb.Build)))

	for _, slot := range sb.Build.Equipment() {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   titler.String(slot.Slot),
			Value:  fmt.Sprintf("%s (%s, lv %d)", slot.Item.Name, slot.Item.Tier, slot.Item.Level),
			Inline: true,
		})
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: "Stats",
		Value: fmt.Sprintf("DPS **%.0f** · EHP **%.0f** · Mana **%.1f**/s · Cost **%.0f**",
			sb.Derived.DPS,
			sb.Derived.EffectiveHP.Combined,
			sb.Derived.ManaSustain,
			sb.Derived.Cost),
		Inline: false,
	})

	return embed
}

// bestTier returns the highest tier equipped, for the embed accent color
func bestTier(b *domain.Build) domain.Tier {
	best := domain.TierNormal
	for _, slot := range b.Equipment() {
		if tierRank[slot.Item.Tier] > tierRank[best] {
			best = slot.Item.Tier
		}
	}
	return best
}

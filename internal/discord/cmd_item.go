package discord

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/wynnforge/wynnforge/internal/domain"
)

// Matches shown per lookup; the first is rendered, the rest are listed
const itemSearchLimit = 6

// WynnitemCommand returns the /wynnitem command definition and handler
func WynnitemCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "wynnitem",
		Description: "Look up an item in the catalog",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Item name or part of it",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		opts := optionMap(i)
		query := ""
		if opt, ok := opts["name"]; ok {
			query = opt.StringValue()
		}

		result, err := client.SearchItems(query, itemSearchLimit)
		if err != nil {
			slog.Error("Failed to search items", "error", err, "query", query)
			respondFriendlyError(s, i, err.Error())
			return
		}

		if result.Count == 0 {
			respondError(s, i, MsgItemNotFound)
			return
		}

		sendEmbed(s, i, itemEmbed(&result.Items[0], result.Items[1:]))
	}

	return cmd, handler
}

// itemEmbed renders one item with its closest alternates listed below
func itemEmbed(item *domain.Item, alternates []domain.Item) *discordgo.MessageEmbed {
	embed := createEmbed(item.Name, itemSummaryLine(item), colorForTier(item.Tier))

	base := make([]string, 0, 2)
	if item.Health != 0 {
		base = append(base, fmt.Sprintf("HP %+d", item.Health))
	}
	if item.Mana != 0 {
		base = append(base, fmt.Sprintf("Mana %+d", item.Mana))
	}
	if len(base) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Base",
			Value:  strings.Join(base, " · "),
			Inline: true,
		})
	}

	if item.Damage != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Damage",
			Value: fmt.Sprintf("%.0f avg/hit · %s speed",
				item.Damage.Average(), humanize(string(item.AttackSpeed))),
			Inline: true,
		})
	}

	if reqs := formatRequirements(item.Requirements); reqs != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Requires",
			Value:  reqs,
			Inline: true,
		})
	}

	if ids := formatIdentifications(item.Identifications); ids != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Identifications",
			Value:  ids,
			Inline: false,
		})
	}

	if len(alternates) > 0 {
		names := make([]string, 0, len(alternates))
		for _, alt := range alternates {
			names = append(names, alt.Name)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Also matched",
			Value:  strings.Join(names, ", "),
			Inline: false,
		})
	}

	return embed
}

// itemSummaryLine is the one-line description under the item name
func itemSummaryLine(item *domain.Item) string {
	kind := string(item.Slot)
	if item.WeaponType != "" {
		kind = string(item.WeaponType)
	}
	line := fmt.Sprintf("%s %s · level %d", item.Tier, kind, item.Level)
	if item.ClassReq != "" {
		line += fmt.Sprintf(" · %s only", item.ClassReq)
	}
	return line
}

// formatRequirements renders the non-zero skill requirements
func formatRequirements(v domain.SkillVector) string {
	parts := make([]string, 0, 5)
	for _, req := range []struct {
		label string
		value int
	}{
		{"str", v.Strength},
		{"dex", v.Dexterity},
		{"int", v.Intelligence},
		{"def", v.Defense},
		{"agi", v.Agility},
	} {
		if req.value != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", req.value, req.label))
		}
	}
	return strings.Join(parts, ", ")
}

// formatIdentifications renders the identification table, capped so big
// mythics do not blow the embed field limit
func formatIdentifications(ids domain.StatMap) string {
	if len(ids) == 0 {
		return ""
	}

	const maxShown = 12
	parts := make([]string, 0, len(ids))
	for _, key := range domain.StatKeys {
		value, ok := ids[key]
		if !ok || value == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %+d", humanize(string(key)), value))
		if len(parts) == maxShown {
			break
		}
	}
	if len(parts) < len(ids) {
		parts = append(parts, "…")
	}
	return strings.Join(parts, " · ")
}

// humanize turns a wire identifier like SUPER_FAST or walk_speed into
// readable text
func humanize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", " "))
}

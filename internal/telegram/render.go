package telegram

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/hoopstat/telegram-bot/internal/models"
	"github.com/hoopstat/telegram-bot/internal/nba"
	"github.com/hoopstat/telegram-bot/internal/service"
)

// ----------------------------------------------------------------------------
// Renderers

type gameSelection struct {
	Label string
	Token string
}

// buildGamesListing renders one line per completed game and mints one
// selection per line. Ordinals follow the emitted line order exactly; the
// detail handler relies on that positional coupling.
func buildGamesListing(date string, games []models.Game) (string, []gameSelection) {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("🏀 Completed NBA Games for %s 🏀\n\n", date))
	selections := make([]gameSelection, 0, len(games))
	for i, game := range games {
		builder.WriteString(fmt.Sprintf("🔹 %s %d - %d %s\n",
			game.HomeTeam.FullName, game.HomeScore, game.VisitorScore, game.VisitorTeam.FullName))
		selections = append(selections, gameSelection{
			Label: fmt.Sprintf("%s @ %s", game.VisitorTeam.FullName, game.HomeTeam.FullName),
			Token: encodeGameToken(date, i),
		})
	}
	return builder.String(), selections
}

func gamesKeyboard(selections []gameSelection) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(selections))
	for _, sel := range selections {
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(sel.Label, sel.Token),
		})
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func buildGameDetails(details *service.GameDetails) string {
	game := details.Game
	home := game.HomeTeam.FullName
	visitor := game.VisitorTeam.FullName

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("🏀 GAME STATISTICS: %s @ %s 🏀\n\n", visitor, home))

	// The quarter block disappears entirely when the provider sent no
	// sub-scores.
	if !game.HomeQuarters.Empty() || !game.VisitorQuarters.Empty() {
		hq, vq := game.HomeQuarters, game.VisitorQuarters
		builder.WriteString("📊 QUARTER SCORES:\n")
		builder.WriteString(fmt.Sprintf("Q1: %s %d - %d %s\n", visitor, vq.Q1, hq.Q1, home))
		builder.WriteString(fmt.Sprintf("Q2: %s %d - %d %s\n", visitor, vq.Q2, hq.Q2, home))
		builder.WriteString(fmt.Sprintf("Q3: %s %d - %d %s\n", visitor, vq.Q3, hq.Q3, home))
		builder.WriteString(fmt.Sprintf("Q4: %s %d - %d %s\n\n", visitor, vq.Q4, hq.Q4, home))
	}

	builder.WriteString("🔢 FINAL SCORE:\n")
	builder.WriteString(fmt.Sprintf("%s: %d\n", visitor, game.VisitorScore))
	builder.WriteString(fmt.Sprintf("%s: %d\n\n", home, game.HomeScore))

	switch {
	case details.StatsErr != nil:
		var statusErr *nba.StatusError
		if errors.As(details.StatsErr, &statusErr) {
			builder.WriteString("⚠️ Player statistics require premium API access\n")
		} else {
			builder.WriteString(fmt.Sprintf("⚠️ Error fetching player stats: %v\n", details.StatsErr))
		}
	case details.Stats == nil:
		builder.WriteString("⚠️ Player statistics not available for this game\n")
	default:
		stats := details.Stats
		builder.WriteString("📊 TEAM STATISTICS:\n")
		builder.WriteString(formatTotals(home, stats.Home))
		builder.WriteString(formatTotals(visitor, stats.Visitor))
		builder.WriteString("\n🌟 TOP 3 PLAYERS:\n")
		for i, line := range stats.Top {
			builder.WriteString(fmt.Sprintf("%d. %s %s (%s): %d PTS, %d REB, %d AST, %d STL\n",
				i+1, line.PlayerFirstName, line.PlayerLastName, line.TeamAbbr,
				line.Points, line.Rebounds, line.Assists, line.Steals))
		}
	}
	return builder.String()
}

func formatTotals(name string, totals models.TeamTotals) string {
	return fmt.Sprintf("%s: %d PTS, %d REB, %d AST, %d STL\n",
		name, totals.Points, totals.Rebounds, totals.Assists, totals.Steals)
}

func buildTeamsMessage(teams []models.Team) string {
	var eastern, western []models.Team
	for _, team := range teams {
		switch team.Conference {
		case "East":
			eastern = append(eastern, team)
		case "West":
			western = append(western, team)
		}
	}

	var builder strings.Builder
	builder.WriteString("🏀 NBA Team Statistics 🏀\n\n")
	builder.WriteString("🌅 Eastern Conference Top Teams:\n")
	for _, team := range firstN(eastern, 5) {
		builder.WriteString(fmt.Sprintf("🔹 %s (%s)\n", team.FullName, team.Abbreviation))
	}
	builder.WriteString("\n🌇 Western Conference Top Teams:\n")
	for _, team := range firstN(western, 5) {
		builder.WriteString(fmt.Sprintf("🔹 %s (%s)\n", team.FullName, team.Abbreviation))
	}
	return builder.String()
}

func buildPlayersMessage(term string, players []models.Player) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("🏀 Player Search Results for '%s' 🏀\n\n", term))
	for _, p := range firstN(players, 5) {
		builder.WriteString(fmt.Sprintf("🔹 %s %s\n", p.FirstName, p.LastName))
		builder.WriteString(fmt.Sprintf("   Team: %s\n", p.Team.FullName))
		builder.WriteString(fmt.Sprintf("   Position: %s\n", p.Position))
		builder.WriteString(fmt.Sprintf("   Height: %d'%d\"\n", p.HeightFeet, p.HeightInches))
		builder.WriteString(fmt.Sprintf("   Weight: %d lbs\n\n", p.WeightPounds))
	}
	return builder.String()
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

package telegram

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopstat/telegram-bot/internal/models"
	"github.com/hoopstat/telegram-bot/internal/nba"
	"github.com/hoopstat/telegram-bot/internal/service"
)

func listingGame(id int64, home, visitor string, homeScore, visitorScore int) models.Game {
	return models.Game{
		ID:           id,
		Status:       models.GameStatusFinal,
		HomeTeam:     models.Team{ID: id * 10, FullName: home},
		VisitorTeam:  models.Team{ID: id*10 + 1, FullName: visitor},
		HomeScore:    homeScore,
		VisitorScore: visitorScore,
	}
}

func TestBuildGamesListingLinesAndOrdinals(t *testing.T) {
	games := []models.Game{
		listingGame(1, "Boston Celtics", "Dallas Mavericks", 112, 98),
		listingGame(2, "Denver Nuggets", "Miami Heat", 104, 100),
		listingGame(3, "Phoenix Suns", "Utah Jazz", 121, 115),
	}

	text, selections := buildGamesListing("2024-03-07", games)

	require.Len(t, selections, len(games))
	for i, sel := range selections {
		assert.Equal(t, encodeGameToken("2024-03-07", i), sel.Token)
	}
	assert.Equal(t, "Dallas Mavericks @ Boston Celtics", selections[0].Label)

	assert.Contains(t, text, "Completed NBA Games for 2024-03-07")
	assert.Equal(t, len(games), strings.Count(text, "🔹"))
	assert.Contains(t, text, "🔹 Boston Celtics 112 - 98 Dallas Mavericks")

	// Summary lines appear in the same order the tokens were minted.
	first := strings.Index(text, "Boston Celtics")
	second := strings.Index(text, "Denver Nuggets")
	third := strings.Index(text, "Phoenix Suns")
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestGamesKeyboardOneButtonPerSelection(t *testing.T) {
	_, selections := buildGamesListing("2024-03-07", []models.Game{
		listingGame(1, "A", "B", 1, 2),
		listingGame(2, "C", "D", 3, 4),
	})
	keyboard := gamesKeyboard(selections)

	require.Len(t, keyboard.InlineKeyboard, 2)
	require.NotNil(t, keyboard.InlineKeyboard[1][0].CallbackData)
	assert.Equal(t, encodeGameToken("2024-03-07", 1), *keyboard.InlineKeyboard[1][0].CallbackData)
}

func detailsFixture() *service.GameDetails {
	return &service.GameDetails{
		Game: models.Game{
			ID:           2,
			Status:       models.GameStatusFinal,
			HomeTeam:     models.Team{ID: 10, FullName: "Boston Celtics"},
			VisitorTeam:  models.Team{ID: 20, FullName: "Dallas Mavericks"},
			HomeScore:    112,
			VisitorScore: 98,
		},
	}
}

func TestBuildGameDetailsOmitsEmptyQuarterBlock(t *testing.T) {
	text := buildGameDetails(detailsFixture())
	assert.NotContains(t, text, "QUARTER SCORES")
	assert.Contains(t, text, "FINAL SCORE")
	assert.Contains(t, text, "Dallas Mavericks: 98")
	assert.Contains(t, text, "Boston Celtics: 112")
}

func TestBuildGameDetailsQuarterBlock(t *testing.T) {
	details := detailsFixture()
	details.Game.HomeQuarters = models.QuarterScores{Q1: 30, Q2: 28, Q3: 26, Q4: 28}
	details.Game.VisitorQuarters = models.QuarterScores{Q1: 22, Q2: 25, Q3: 27, Q4: 24}

	text := buildGameDetails(details)
	assert.Contains(t, text, "QUARTER SCORES")
	assert.Contains(t, text, "Q1: Dallas Mavericks 22 - 30 Boston Celtics")
	assert.Contains(t, text, "Q4: Dallas Mavericks 24 - 28 Boston Celtics")
}

func TestBuildGameDetailsWithStats(t *testing.T) {
	details := detailsFixture()
	details.Stats = &service.GameStats{
		Home:    models.TeamTotals{Points: 112, Rebounds: 40, Assists: 25, Steals: 7},
		Visitor: models.TeamTotals{Points: 98, Rebounds: 38, Assists: 21, Steals: 5},
		Top: []models.StatLine{
			{PlayerFirstName: "Jayson", PlayerLastName: "Tatum", TeamAbbr: "BOS", Points: 32, Rebounds: 8, Assists: 11, Steals: 2},
		},
	}

	text := buildGameDetails(details)
	assert.Contains(t, text, "TEAM STATISTICS")
	assert.Contains(t, text, "Boston Celtics: 112 PTS, 40 REB, 25 AST, 7 STL")
	assert.Contains(t, text, "TOP 3 PLAYERS")
	assert.Contains(t, text, "1. Jayson Tatum (BOS): 32 PTS, 8 REB, 11 AST, 2 STL")
}

func TestBuildGameDetailsStatsUnavailable(t *testing.T) {
	text := buildGameDetails(detailsFixture())
	assert.Contains(t, text, "Player statistics not available for this game")
}

func TestBuildGameDetailsStatsStatusFailure(t *testing.T) {
	details := detailsFixture()
	details.StatsErr = &nba.StatusError{Op: "stats", Code: http.StatusForbidden}

	text := buildGameDetails(details)
	assert.Contains(t, text, "Player statistics require premium API access")
}

func TestBuildGameDetailsStatsTransportFailure(t *testing.T) {
	details := detailsFixture()
	details.StatsErr = fmt.Errorf("nba: stats: %w", errors.New("connection reset"))

	text := buildGameDetails(details)
	assert.Contains(t, text, "Error fetching player stats")
	assert.Contains(t, text, "connection reset")
}

func TestBuildTeamsMessageGroupsByConference(t *testing.T) {
	var teams []models.Team
	for i := 0; i < 6; i++ {
		teams = append(teams,
			models.Team{ID: int64(i), FullName: fmt.Sprintf("East %d", i), Abbreviation: fmt.Sprintf("E%d", i), Conference: "East"},
			models.Team{ID: int64(100 + i), FullName: fmt.Sprintf("West %d", i), Abbreviation: fmt.Sprintf("W%d", i), Conference: "West"},
		)
	}

	text := buildTeamsMessage(teams)
	assert.Contains(t, text, "Eastern Conference Top Teams")
	assert.Contains(t, text, "Western Conference Top Teams")
	assert.Contains(t, text, "East 4 (E4)")
	assert.Contains(t, text, "West 4 (W4)")
	// Only the first five of each conference are shown.
	assert.NotContains(t, text, "East 5")
	assert.NotContains(t, text, "West 5")
}

func TestBuildPlayersMessageCapsAtFive(t *testing.T) {
	var players []models.Player
	for i := 0; i < 7; i++ {
		players = append(players, models.Player{
			FirstName:    "Player",
			LastName:     fmt.Sprintf("Number%d", i),
			Position:     "G",
			HeightFeet:   6,
			HeightInches: 3,
			WeightPounds: 200,
			Team:         models.Team{FullName: "Boston Celtics"},
		})
	}

	text := buildPlayersMessage("number", players)
	assert.Contains(t, text, "Player Search Results for 'number'")
	assert.Contains(t, text, "Player Number4")
	assert.NotContains(t, text, "Player Number5")
	assert.Contains(t, text, "Height: 6'3\"")
	assert.Contains(t, text, "Weight: 200 lbs")
}

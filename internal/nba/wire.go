package nba

import (
	"strings"

	"github.com/hoopstat/telegram-bot/internal/models"
)

// Wire shapes mirror the provider's JSON. They are converted to
// internal/models types at the client boundary and never leak out.

type wireTeam struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
	Conference   string `json:"conference"`
}

func (t wireTeam) toTeam() models.Team {
	return models.Team{
		ID:           t.ID,
		FullName:     t.FullName,
		Abbreviation: t.Abbreviation,
		Conference:   t.Conference,
	}
}

type wireGame struct {
	ID               int64    `json:"id"`
	Date             string   `json:"date"`
	Season           int      `json:"season"`
	Status           string   `json:"status"`
	Postseason       bool     `json:"postseason"`
	HomeTeam         wireTeam `json:"home_team"`
	VisitorTeam      wireTeam `json:"visitor_team"`
	HomeTeamScore    int      `json:"home_team_score"`
	VisitorTeamScore int      `json:"visitor_team_score"`
	HomeQ1           int      `json:"home_q1"`
	HomeQ2           int      `json:"home_q2"`
	HomeQ3           int      `json:"home_q3"`
	HomeQ4           int      `json:"home_q4"`
	VisitorQ1        int      `json:"visitor_q1"`
	VisitorQ2        int      `json:"visitor_q2"`
	VisitorQ3        int      `json:"visitor_q3"`
	VisitorQ4        int      `json:"visitor_q4"`
}

func (g wireGame) toGame() models.Game {
	return models.Game{
		ID:           g.ID,
		Date:         g.Date,
		Season:       g.Season,
		Status:       statusFromWire(g.Status),
		Postseason:   g.Postseason,
		HomeTeam:     g.HomeTeam.toTeam(),
		VisitorTeam:  g.VisitorTeam.toTeam(),
		HomeScore:    g.HomeTeamScore,
		VisitorScore: g.VisitorTeamScore,
		HomeQuarters: models.QuarterScores{
			Q1: g.HomeQ1, Q2: g.HomeQ2, Q3: g.HomeQ3, Q4: g.HomeQ4,
		},
		VisitorQuarters: models.QuarterScores{
			Q1: g.VisitorQ1, Q2: g.VisitorQ2, Q3: g.VisitorQ3, Q4: g.VisitorQ4,
		},
	}
}

// statusFromWire folds the provider's free-form status strings into the
// three states the bot distinguishes. Upcoming games carry a tip-off time
// like "7:30 pm ET"; anything else in progress maps to Other.
func statusFromWire(s string) models.GameStatus {
	switch {
	case s == "Final":
		return models.GameStatusFinal
	case s == "Scheduled" || strings.HasSuffix(s, " ET"):
		return models.GameStatusScheduled
	default:
		return models.GameStatusOther
	}
}

type wirePlayer struct {
	ID           int64    `json:"id"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Position     string   `json:"position"`
	HeightFeet   int      `json:"height_feet"`
	HeightInches int      `json:"height_inches"`
	WeightPounds int      `json:"weight_pounds"`
	Team         wireTeam `json:"team"`
}

func (p wirePlayer) toPlayer() models.Player {
	return models.Player{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Position:     p.Position,
		HeightFeet:   p.HeightFeet,
		HeightInches: p.HeightInches,
		WeightPounds: p.WeightPounds,
		Team:         p.Team.toTeam(),
	}
}

type wireStatLine struct {
	Points int `json:"pts"`
	Reb    int `json:"reb"`
	Ast    int `json:"ast"`
	Stl    int `json:"stl"`
	Player struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	} `json:"player"`
	Team struct {
		ID           int64  `json:"id"`
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
	Game struct {
		ID int64 `json:"id"`
	} `json:"game"`
}

func (s wireStatLine) toStatLine() models.StatLine {
	return models.StatLine{
		GameID:          s.Game.ID,
		TeamID:          s.Team.ID,
		TeamAbbr:        s.Team.Abbreviation,
		PlayerFirstName: s.Player.FirstName,
		PlayerLastName:  s.Player.LastName,
		Points:          s.Points,
		Rebounds:        s.Reb,
		Assists:         s.Ast,
		Steals:          s.Stl,
	}
}

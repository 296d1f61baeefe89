package models

import "errors"

var (
	// ErrNoGames indicates the provider returned no games at all for a date.
	ErrNoGames = errors.New("no games for date")
	// ErrNoCompletedGames indicates games exist for the date but none are final.
	ErrNoCompletedGames = errors.New("no completed games for date")
)

type GameStatus string

const (
	GameStatusScheduled GameStatus = "scheduled"
	GameStatusFinal     GameStatus = "final"
	GameStatusOther     GameStatus = "other"
)

type Team struct {
	ID           int64  `json:"id"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
	Conference   string `json:"conference"`
}

type Player struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	HeightFeet   int    `json:"height_feet"`
	HeightInches int    `json:"height_inches"`
	WeightPounds int    `json:"weight_pounds"`
	Team         Team   `json:"team"`
}

// QuarterScores holds per-quarter sub-scores for one side. The provider
// omits them on cheaper plans, in which case all four stay zero.
type QuarterScores struct {
	Q1 int `json:"q1"`
	Q2 int `json:"q2"`
	Q3 int `json:"q3"`
	Q4 int `json:"q4"`
}

func (q QuarterScores) Empty() bool {
	return q.Q1 == 0 && q.Q2 == 0 && q.Q3 == 0 && q.Q4 == 0
}

// Game is an immutable snapshot of one contest on one calendar date,
// scoped to the query that produced it.
type Game struct {
	ID              int64         `json:"id"`
	Date            string        `json:"date"`
	Season          int           `json:"season"`
	Status          GameStatus    `json:"status"`
	Postseason      bool          `json:"postseason"`
	HomeTeam        Team          `json:"home_team"`
	VisitorTeam     Team          `json:"visitor_team"`
	HomeScore       int           `json:"home_score"`
	VisitorScore    int           `json:"visitor_score"`
	HomeQuarters    QuarterScores `json:"home_quarters"`
	VisitorQuarters QuarterScores `json:"visitor_quarters"`
}

// StatLine is one player's box-score row for one game.
type StatLine struct {
	GameID          int64  `json:"game_id"`
	TeamID          int64  `json:"team_id"`
	TeamAbbr        string `json:"team_abbr"`
	PlayerFirstName string `json:"player_first_name"`
	PlayerLastName  string `json:"player_last_name"`
	Points          int    `json:"pts"`
	Rebounds        int    `json:"reb"`
	Assists         int    `json:"ast"`
	Steals          int    `json:"stl"`
}

// TeamTotals aggregates stat lines for one side of a game.
type TeamTotals struct {
	Points   int `json:"pts"`
	Rebounds int `json:"reb"`
	Assists  int `json:"ast"`
	Steals   int `json:"stl"`
}

func (t *TeamTotals) Add(line StatLine) {
	t.Points += line.Points
	t.Rebounds += line.Rebounds
	t.Assists += line.Assists
	t.Steals += line.Steals
}

package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/hoopstat/telegram-bot/internal/models"
	"github.com/hoopstat/telegram-bot/internal/nba"
)

// Logger is the structured logger the bot reports through.
type Logger interface {
	Info(action string, entity string, entityID int64, userID int64, status string)
	Error(err error, action string, entity string, entityID int64, userID int64)
}

const (
	// searchWindowDays bounds the backward probe for the most recent
	// day with completed games.
	searchWindowDays = 7
	dateLayout       = "2006-01-02"
	topPlayerCount   = 3
)

// Games ----------------------------------------------------------------------

type GamesService interface {
	// RecentCompleted finds the most recent day strictly before today with
	// at least one final game, probing yesterday first and walking back up
	// to seven days. When the whole window is empty it returns yesterday's
	// date with a nil slice; callers must treat that as "nothing found".
	RecentCompleted(ctx context.Context) (string, []models.Game, error)
	// Details resolves a (date, index) selection back to a single game and
	// its box-score aggregates. The index is positional within the
	// final-filtered list in provider order, exactly as the listing that
	// minted the selection produced it.
	Details(ctx context.Context, date string, index int) (*GameDetails, error)
}

// GameDetails carries the selected game plus the stats fetch outcome.
// Exactly one of the three holds: Stats is populated, Stats is nil with
// StatsErr nil (provider had no rows), or StatsErr is set (fetch failed).
// A stats failure never fails the detail view itself.
type GameDetails struct {
	Game     models.Game
	Stats    *GameStats
	StatsErr error
}

type GameStats struct {
	Home    models.TeamTotals
	Visitor models.TeamTotals
	Top     []models.StatLine
}

type gamesService struct {
	client  nba.Client
	loc     *time.Location
	timeNow func() time.Time
}

func NewGamesService(client nba.Client, loc *time.Location) GamesService {
	if loc == nil {
		loc = time.UTC
	}
	return &gamesService{
		client:  client,
		loc:     loc,
		timeNow: time.Now,
	}
}

func (s *gamesService) RecentCompleted(ctx context.Context) (string, []models.Game, error) {
	now := s.timeNow().In(s.loc)
	for daysBack := 1; daysBack <= searchWindowDays; daysBack++ {
		date := now.AddDate(0, 0, -daysBack).Format(dateLayout)
		games, err := s.client.GamesByDate(ctx, date)
		if err != nil {
			// A bad status on one probe does not end the search;
			// a transport failure does.
			var statusErr *nba.StatusError
			if errors.As(err, &statusErr) {
				continue
			}
			return "", nil, err
		}
		if completed := filterFinal(games); len(completed) > 0 {
			return date, completed, nil
		}
	}
	return now.AddDate(0, 0, -1).Format(dateLayout), nil, nil
}

func (s *gamesService) Details(ctx context.Context, date string, index int) (*GameDetails, error) {
	games, err := s.client.GamesByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, models.ErrNoGames
	}

	// Must mirror the listing pass: same filter, same provider order,
	// or the positional index drifts onto the wrong game.
	completed := filterFinal(games)
	if len(completed) == 0 {
		return nil, models.ErrNoCompletedGames
	}
	if index < 0 || index >= len(completed) {
		index = 0
	}
	game := completed[index]
	details := &GameDetails{Game: game}

	lines, err := s.client.GameStats(ctx, game.ID)
	if err != nil {
		details.StatsErr = err
		return details, nil
	}
	details.Stats = aggregateStats(game, lines)
	return details, nil
}

func filterFinal(games []models.Game) []models.Game {
	completed := make([]models.Game, 0, len(games))
	for _, g := range games {
		if g.Status == models.GameStatusFinal {
			completed = append(completed, g)
		}
	}
	return completed
}

// aggregateStats sums per-team totals and picks the top scorers. Rows for
// other games are dropped even though the provider is only ever asked for
// one game id. Returns nil when no usable rows remain.
func aggregateStats(game models.Game, lines []models.StatLine) *GameStats {
	stats := &GameStats{}
	matched := make([]models.StatLine, 0, len(lines))
	for _, line := range lines {
		if line.GameID != 0 && line.GameID != game.ID {
			continue
		}
		matched = append(matched, line)
		switch line.TeamID {
		case game.HomeTeam.ID:
			stats.Home.Add(line)
		case game.VisitorTeam.ID:
			stats.Visitor.Add(line)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Points > matched[j].Points
	})
	if len(matched) > topPlayerCount {
		matched = matched[:topPlayerCount]
	}
	stats.Top = matched
	return stats
}

// Teams ----------------------------------------------------------------------

type TeamsService interface {
	List(ctx context.Context) ([]models.Team, error)
}

type teamsService struct {
	client nba.Client
}

func NewTeamsService(client nba.Client) TeamsService {
	return &teamsService{client: client}
}

func (s *teamsService) List(ctx context.Context) ([]models.Team, error) {
	return s.client.Teams(ctx)
}

// Players --------------------------------------------------------------------

type PlayersService interface {
	Search(ctx context.Context, term string) ([]models.Player, error)
}

type playersService struct {
	client nba.Client
}

func NewPlayersService(client nba.Client) PlayersService {
	return &playersService{client: client}
}

func (s *playersService) Search(ctx context.Context, term string) ([]models.Player, error) {
	return s.client.SearchPlayers(ctx, term)
}

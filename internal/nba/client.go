package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hoopstat/telegram-bot/internal/models"
)

const DefaultBaseURL = "https://api.balldontlie.io/v1"

// Provider page-size caps. Only the first page is ever requested.
const (
	gamesPerPage   = 100
	teamsPerPage   = 30
	playersPerPage = 10
	statsPerPage   = 100
)

// StatusError reports a non-2xx provider response. The provider exposes no
// structured error body, so the status code is the whole signal.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("nba: %s: unexpected status %d", e.Op, e.Code)
}

type Client interface {
	GamesByDate(ctx context.Context, date string) ([]models.Game, error)
	Teams(ctx context.Context) ([]models.Team, error)
	SearchPlayers(ctx context.Context, term string) ([]models.Player, error)
	GameStats(ctx context.Context, gameID int64) ([]models.StatLine, error)
}

type client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *client) GamesByDate(ctx context.Context, date string) ([]models.Game, error) {
	query := url.Values{}
	query.Set("dates[]", date)
	query.Set("per_page", strconv.Itoa(gamesPerPage))

	var payload struct {
		Data []wireGame `json:"data"`
	}
	if err := c.get(ctx, "games", "/games", query, &payload); err != nil {
		return nil, err
	}
	games := make([]models.Game, 0, len(payload.Data))
	for _, g := range payload.Data {
		games = append(games, g.toGame())
	}
	return games, nil
}

func (c *client) Teams(ctx context.Context) ([]models.Team, error) {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(teamsPerPage))

	var payload struct {
		Data []wireTeam `json:"data"`
	}
	if err := c.get(ctx, "teams", "/teams", query, &payload); err != nil {
		return nil, err
	}
	teams := make([]models.Team, 0, len(payload.Data))
	for _, t := range payload.Data {
		teams = append(teams, t.toTeam())
	}
	return teams, nil
}

func (c *client) SearchPlayers(ctx context.Context, term string) ([]models.Player, error) {
	query := url.Values{}
	query.Set("search", term)
	query.Set("per_page", strconv.Itoa(playersPerPage))

	var payload struct {
		Data []wirePlayer `json:"data"`
	}
	if err := c.get(ctx, "players", "/players", query, &payload); err != nil {
		return nil, err
	}
	players := make([]models.Player, 0, len(payload.Data))
	for _, p := range payload.Data {
		players = append(players, p.toPlayer())
	}
	return players, nil
}

func (c *client) GameStats(ctx context.Context, gameID int64) ([]models.StatLine, error) {
	query := url.Values{}
	query.Set("game_ids[]", strconv.FormatInt(gameID, 10))
	query.Set("per_page", strconv.Itoa(statsPerPage))

	var payload struct {
		Data []wireStatLine `json:"data"`
	}
	if err := c.get(ctx, "stats", "/stats", query, &payload); err != nil {
		return nil, err
	}
	lines := make([]models.StatLine, 0, len(payload.Data))
	for _, s := range payload.Data {
		lines = append(lines, s.toStatLine())
	}
	return lines, nil
}

func (c *client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("nba: build %s request: %w", op, err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("nba: %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Op: op, Code: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("nba: decode %s response: %w", op, err)
	}
	return nil
}

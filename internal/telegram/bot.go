package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/hoopstat/telegram-bot/internal/models"
	"github.com/hoopstat/telegram-bot/internal/nba"
	"github.com/hoopstat/telegram-bot/internal/service"
	"github.com/hoopstat/telegram-bot/internal/session"
)

// API is the slice of *tgbotapi.BotAPI the bot depends on.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type Services struct {
	Games    service.GamesService
	Teams    service.TeamsService
	Players  service.PlayersService
	Sessions *session.Store
}

type Bot struct {
	api    API
	svc    Services
	logger service.Logger
}

func NewBot(api API, svc Services, logger service.Logger) *Bot {
	return &Bot{
		api:    api,
		svc:    svc,
		logger: logger,
	}
}

func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			if err := b.handleUpdate(ctx, update); err != nil {
				b.logger.Error(err, "handle_update", "update", int64(update.UpdateID), 0)
			}
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	if update.Message != nil {
		return b.handleMessage(ctx, update.Message)
	}
	if update.CallbackQuery != nil {
		return b.handleCallback(ctx, update.CallbackQuery)
	}
	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil {
		return nil
	}
	userID := msg.From.ID

	if msg.IsCommand() {
		// A command always abandons a pending search prompt.
		b.svc.Sessions.Clear(userID)
		switch msg.Command() {
		case "start":
			b.sendSimple(msg.Chat.ID, startMessage(msg.From.FirstName))
		case "help":
			b.sendSimple(msg.Chat.ID, helpMessage)
		case "games":
			return b.sendGames(ctx, msg.Chat.ID, userID)
		case "teams":
			return b.sendTeams(ctx, msg.Chat.ID, userID)
		case "players":
			b.svc.Sessions.AwaitSearchTerm(userID)
			b.sendSimple(msg.Chat.ID, "🔍 Please enter a player name to search for:")
		default:
			b.sendSimple(msg.Chat.ID, "Unknown command. Use /help to see what I can do.")
		}
		return nil
	}

	if !b.svc.Sessions.ConsumeSearchTerm(userID) {
		// Plain message outside the search flow – ignore.
		return nil
	}
	return b.sendPlayerSearch(ctx, msg.Chat.ID, userID, msg.Text)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb.From == nil || cb.Message == nil {
		return nil
	}
	date, index, err := decodeGameToken(cb.Data)
	if err != nil {
		_, _ = b.api.Request(tgbotapi.NewCallback(cb.ID, "This button is no longer valid"))
		return nil
	}
	if err := b.showGameDetails(ctx, cb.Message.Chat.ID, cb.Message.MessageID, cb.From.ID, date, index); err != nil {
		return err
	}
	_, _ = b.api.Request(tgbotapi.NewCallback(cb.ID, ""))
	return nil
}

// ----------------------------------------------------------------------------
// Command handlers

func (b *Bot) sendGames(ctx context.Context, chatID, userID int64) error {
	b.sendSimple(chatID, "🔍 Fetching completed NBA games...")

	date, games, err := b.svc.Games.RecentCompleted(ctx)
	if err != nil {
		b.logger.Error(err, "list_games", "game", 0, userID)
		b.sendSimple(chatID, providerNotice("Error fetching games", err))
		return nil
	}
	if len(games) == 0 {
		b.sendSimple(chatID, "No completed NBA games found in the last 7 days.")
		return nil
	}

	text, selections := buildGamesListing(date, games)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = gamesKeyboard(selections)
	if _, err := b.api.Send(msg); err != nil {
		return err
	}
	b.logger.Info("list_games", "game", int64(len(games)), userID, "ok")
	return nil
}

func (b *Bot) showGameDetails(ctx context.Context, chatID int64, messageID int, userID int64, date string, index int) error {
	details, err := b.svc.Games.Details(ctx, date, index)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNoGames):
			return b.editSimple(chatID, messageID, "No game details available for this date.")
		case errors.Is(err, models.ErrNoCompletedGames):
			return b.editSimple(chatID, messageID, fmt.Sprintf("No completed games found for %s.", date))
		default:
			b.logger.Error(err, "game_details", "game", 0, userID)
			return b.editSimple(chatID, messageID, providerNotice("Error fetching game details", err))
		}
	}
	b.logger.Info("game_details", "game", details.Game.ID, userID, "ok")
	return b.editSimple(chatID, messageID, buildGameDetails(details))
}

func (b *Bot) sendTeams(ctx context.Context, chatID, userID int64) error {
	b.sendSimple(chatID, "🔍 Fetching NBA team statistics...")

	teams, err := b.svc.Teams.List(ctx)
	if err != nil {
		b.logger.Error(err, "list_teams", "team", 0, userID)
		b.sendSimple(chatID, providerNotice("Error fetching teams", err))
		return nil
	}
	if len(teams) == 0 {
		b.sendSimple(chatID, "No team data available.")
		return nil
	}
	b.sendSimple(chatID, buildTeamsMessage(teams))
	b.logger.Info("list_teams", "team", int64(len(teams)), userID, "ok")
	return nil
}

func (b *Bot) sendPlayerSearch(ctx context.Context, chatID, userID int64, term string) error {
	b.sendSimple(chatID, fmt.Sprintf("🔍 Searching for player: %s...", term))

	players, err := b.svc.Players.Search(ctx, term)
	if err != nil {
		b.logger.Error(err, "search_players", "player", 0, userID)
		b.sendSimple(chatID, providerNotice("Error searching for players", err))
		return nil
	}
	if len(players) == 0 {
		b.sendSimple(chatID, fmt.Sprintf("No players found with name: %s", term))
		return nil
	}
	b.sendSimple(chatID, buildPlayersMessage(term, players))
	b.logger.Info("search_players", "player", int64(len(players)), userID, "ok")
	return nil
}

// ----------------------------------------------------------------------------
// Helpers

func (b *Bot) sendSimple(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	_, _ = b.api.Send(msg)
}

func (b *Bot) editSimple(chatID int64, messageID int, text string) error {
	msg := tgbotapi.NewEditMessageText(chatID, messageID, text)
	_, err := b.api.Send(msg)
	return err
}

// providerNotice distinguishes a bad provider status from a transport
// failure in the text shown to the user.
func providerNotice(prefix string, err error) string {
	var statusErr *nba.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("❌ %s: %d", prefix, statusErr.Code)
	}
	return fmt.Sprintf("❌ An error occurred: %v", err)
}

func startMessage(firstName string) string {
	return fmt.Sprintf(
		"Hi %s! I'm your NBA Statistics Bot. 🏀\n\n"+
			"Use /games to see completed NBA games and statistics.\n"+
			"Use /teams to see NBA team statistics.\n"+
			"Use /players to search for player statistics.",
		firstName,
	)
}

const helpMessage = "NBA Statistics Bot Help:\n\n" +
	"/start - Start the bot\n" +
	"/help - Show this help message\n" +
	"/games - Show completed NBA games from the most recent game day\n" +
	"/teams - Show NBA team statistics\n" +
	"/players - Search for player statistics"

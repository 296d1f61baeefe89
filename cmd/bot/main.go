package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/hoopstat/telegram-bot/internal/config"
	"github.com/hoopstat/telegram-bot/internal/nba"
	"github.com/hoopstat/telegram-bot/internal/service"
	"github.com/hoopstat/telegram-bot/internal/session"
	"github.com/hoopstat/telegram-bot/internal/telegram"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := config.NewLogger()

	client := nba.NewClient(settings.APIBaseURL, settings.APIKey)

	gamesSvc := service.NewGamesService(client, settings.Location)
	teamsSvc := service.NewTeamsService(client)
	playersSvc := service.NewPlayersService(client)
	sessionStore := session.NewStore()

	botAPI, err := tgbotapi.NewBotAPI(settings.BotToken)
	if err != nil {
		log.Fatalf("telegram: %v", err)
	}
	botAPI.Debug = os.Getenv("DEBUG") == "1"

	bot := telegram.NewBot(botAPI, telegram.Services{
		Games:    gamesSvc,
		Teams:    teamsSvc,
		Players:  playersSvc,
		Sessions: sessionStore,
	}, logger)

	if err := bot.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("bot stopped: %v", err)
	}
}

// kursi — CLI-кабинет маркетплейса: вход/выход, курсы и уроки, лиды из
// Telegram-бота, подписка, модерация платежей.
//
// Вся логика живёт в internal/client и internal/store; здесь только
// сборка зависимостей и разбор аргументов.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/AkkAshy/kursi-sub000/internal/client"
	"github.com/AkkAshy/kursi-sub000/internal/config"
	"github.com/AkkAshy/kursi-sub000/internal/credentials"
	"github.com/AkkAshy/kursi-sub000/internal/store"
	"github.com/AkkAshy/kursi-sub000/internal/transport"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	fs := flag.NewFlagSet("kursi", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to config file")

	if err := fs.Parse(args[1:]); err != nil {
		return 2
	}

	rest := fs.Args()
	if len(rest) == 0 {
		usage(args)
		return 2
	}

	cfg := config.MustLoad(*configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	creds, closeCreds, err := buildCredentials(cfg)
	if err != nil {
		log.Error("credentials_init_failed", slog.String("err", err.Error()))
		return 1
	}
	defer closeCreds()

	if err := creds.Load(ctx); err != nil {
		log.Error("credentials_load_failed", slog.String("err", err.Error()))
		return 1
	}

	api := client.New(cfg.API.BaseURL, creds,
		client.WithHost(cfg.API.Host),
		client.WithTimeout(cfg.API.Timeout),
		client.WithRateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	)

	st := store.New(api)

	app := &app{cfg: cfg, creds: creds, api: api, stores: st, log: log}

	if err := app.dispatch(ctx, rest); err != nil {
		if errors.Is(err, errUsage) {
			usage(args)
			return 2
		}

		// Невосстановимый провал обновления токена: хранилище уже
		// очищено, пользователя отправляем на вход.
		if errors.Is(err, transport.ErrSessionExpired) {
			fmt.Fprintln(os.Stderr, "session expired: run 'kursi login' to sign in again")
			return 1
		}

		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}

	return 0
}

// buildCredentials выбирает бэкенд хранилища пары токенов:
// Redis, если задан URL, иначе файл.
func buildCredentials(cfg *config.Config) (credentials.Store, func(), error) {
	if cfg.Credentials.RedisURL != "" {
		st, err := credentials.NewRedisStore(cfg.Credentials.RedisURL, cfg.Credentials.RedisPrefix, "cli")
		if err != nil {
			return nil, nil, err
		}

		return st, func() { _ = st.Close() }, nil
	}

	path := cfg.Credentials.Path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, err
		}

		path = filepath.Join(home, ".kursi", "credentials.json")
	}

	return credentials.NewFileStore(path), func() {}, nil
}

func usage(args []string) {
	name := "kursi"
	if len(args) > 0 && args[0] != "" {
		name = filepath.Base(args[0])
	}

	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "  %s [--config <file>] login --email <email> --password <password>\n", name)
	fmt.Fprintf(os.Stderr, "  %s logout\n", name)
	fmt.Fprintf(os.Stderr, "  %s whoami [--offline]\n", name)
	fmt.Fprintf(os.Stderr, "  %s dashboard\n", name)
	fmt.Fprintf(os.Stderr, "  %s courses list|create|publish|unpublish|delete [flags]\n", name)
	fmt.Fprintf(os.Stderr, "  %s lessons list --course <id>\n", name)
	fmt.Fprintf(os.Stderr, "  %s leads list [--status <status>] | leads set-status --id <id> --status <status> [--comment <text>]\n", name)
	fmt.Fprintf(os.Stderr, "  %s subscription show|plans|usage|change [flags]\n", name)
	fmt.Fprintf(os.Stderr, "  %s payments list|approve|reject [flags]\n", name)
	fmt.Fprintf(os.Stderr, "  %s admin stats|teachers|notifications\n", name)
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/currency_companion_app/internal/adapters/exchangerate"
	"github.com/SscSPs/currency_companion_app/internal/adapters/memory"
	portsrepo "github.com/SscSPs/currency_companion_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_companion_app/internal/core/services"
	"github.com/SscSPs/currency_companion_app/internal/platform/config"
	"github.com/SscSPs/currency_companion_app/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs only go to a file when one is configured
	logOutput := io.Discard
	if cfg.TUILogFile != "" {
		f, err := os.OpenFile(cfg.TUILogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOutput = f
	}
	logger := slog.New(slog.NewJSONHandler(logOutput, nil))
	slog.SetDefault(logger)

	repos := portsrepo.RepositoryProvider{
		RateProvider: exchangerate.NewOpenERAPIProvider(cfg.RatesAPIURL, exchangerate.WithTimeout(cfg.RatesFetchTimeout)),
		MessageRepo:  memory.NewMessageRepository(),
		SettingsRepo: memory.NewSettingsRepository(),
	}
	serviceContainer := services.NewServiceContainer(cfg, repos)

	model := tui.New(serviceContainer,
		tui.WithReplyDelay(cfg.AssistantReplyDelay),
		tui.WithLogger(logger),
	)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("Terminal client exited with error", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

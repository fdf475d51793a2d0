package tui

import (
	"context"
	"time"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
	tea "github.com/charmbracelet/bubbletea"
)

type ratesFetchedMsg struct {
	snapshot domain.RateSnapshot
	err      error
}

type settingsLoadedMsg struct {
	settings domain.SettingsFlags
	err      error
}

type botReplyMsg struct {
	text string
}

// fetchRatesCmd runs the initial fetch or a refresh off the event loop.
func fetchRatesCmd(ctx context.Context, rates portssvc.RateStoreWriterSvc, initial bool) tea.Cmd {
	return func() tea.Msg {
		var (
			snapshot domain.RateSnapshot
			err      error
		)
		if initial {
			snapshot, err = rates.Initialize(ctx)
		} else {
			snapshot, err = rates.Refresh(ctx)
		}
		return ratesFetchedMsg{snapshot: snapshot, err: err}
	}
}

func loadSettingsCmd(ctx context.Context, settings portssvc.SettingsSvcFacade) tea.Cmd {
	return func() tea.Msg {
		flags, err := settings.GetSettings(ctx)
		return settingsLoadedMsg{settings: flags, err: err}
	}
}

// botReplyCmd delivers reply after the typing delay.
func botReplyCmd(delay time.Duration, reply string) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return botReplyMsg{text: reply} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return botReplyMsg{text: reply}
	})
}

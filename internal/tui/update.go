package tui

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/currency_companion_app/internal/apperrors"
	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	"github.com/SscSPs/currency_companion_app/internal/dto"
	"github.com/SscSPs/currency_companion_app/internal/utils"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const amountRunes = "0123456789."

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ratesFetchedMsg:
		return m.applyRates(msg), nil

	case settingsLoadedMsg:
		if msg.err != nil {
			m.logger.Error("Failed to load settings", slog.String("error", msg.err.Error()))
			return m, nil
		}
		m.settings = msg.settings
		return m, nil

	case botReplyMsg:
		m.messages = append(m.messages, m.newMessage(domain.SenderBot, msg.text))
		if m.pendingReplies > 0 {
			m.pendingReplies--
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if !m.confirmClear {
			if key.Matches(msg, m.keys.NextTab) {
				return m.switchTab((m.activeTab + 1) % tab(len(tabNames))), nil
			}
			if key.Matches(msg, m.keys.PrevTab) {
				return m.switchTab((m.activeTab + tab(len(tabNames)) - 1) % tab(len(tabNames))), nil
			}
		}
		switch m.activeTab {
		case tabConvert:
			return m.updateConvert(msg)
		case tabHelpBot:
			return m.updateHelpBot(msg)
		case tabSettings:
			return m.updateSettings(msg)
		}
	}

	// Cursor blink and other input internals
	var cmd tea.Cmd
	switch m.activeTab {
	case tabConvert:
		m.amount, cmd = m.amount.Update(msg)
	case tabHelpBot:
		m.chatInput, cmd = m.chatInput.Update(msg)
	}
	return m, cmd
}

func (m Model) switchTab(next tab) Model {
	m.activeTab = next
	m.amount.Blur()
	m.chatInput.Blur()
	switch next {
	case tabConvert:
		m.amount.Focus()
	case tabHelpBot:
		m.chatInput.Focus()
	}
	return m
}

// ---------------------------------------------------------------------------
// Rates
// ---------------------------------------------------------------------------

func (m Model) applyRates(msg ratesFetchedMsg) Model {
	m.rates = msg.snapshot
	if msg.err != nil {
		m.logger.Warn("Exchange rate fetch failed", slog.String("error", msg.err.Error()))
	}
	if m.rates.HasTable() {
		m.codes = m.rates.Table.Codes()
		if !m.rates.Table.Has(m.from) {
			m.from = m.codes[0]
		}
		if !m.rates.Table.Has(m.to) {
			m.to = m.codes[0]
		}
	}
	return m.recompute()
}

// recompute re-runs the conversion after any input, pair or table change.
func (m Model) recompute() Model {
	m.convertErr = ""
	if !m.rates.HasTable() {
		m.conversion = nil
		return m
	}
	conv, err := m.svc.Conversion.Convert(m.ctx(), dto.ConvertRequest{
		Amount: m.amount.Value(),
		From:   m.from,
		To:     m.to,
	})
	if err != nil {
		m.conversion = nil
		if !errors.Is(err, apperrors.ErrRatesUnavailable) {
			m.convertErr = err.Error()
		}
		return m
	}
	m.conversion = conv
	return m
}

// ---------------------------------------------------------------------------
// Convert tab
// ---------------------------------------------------------------------------

func (m Model) updateConvert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.QuitLetter):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Refresh):
		m.rates.Status = domain.RateStatusLoading
		m.rates.Error = ""
		return m, fetchRatesCmd(m.ctx(), m.svc.Rates, false)
	case key.Matches(msg, m.keys.Swap):
		m.from, m.to = utils.SwapCurrencies(m.from, m.to)
		return m.recompute(), nil
	case key.Matches(msg, m.keys.NextFrom):
		m.from = m.cycleCode(m.from, 1)
		return m.recompute(), nil
	case key.Matches(msg, m.keys.PrevFrom):
		m.from = m.cycleCode(m.from, -1)
		return m.recompute(), nil
	case key.Matches(msg, m.keys.NextTo):
		m.to = m.cycleCode(m.to, 1)
		return m.recompute(), nil
	case key.Matches(msg, m.keys.PrevTo):
		m.to = m.cycleCode(m.to, -1)
		return m.recompute(), nil
	}

	// Only numeric characters reach the amount field
	if msg.Type == tea.KeyRunes && strings.Trim(string(msg.Runes), amountRunes) != "" {
		return m, nil
	}
	var cmd tea.Cmd
	m.amount, cmd = m.amount.Update(msg)
	return m.recompute(), cmd
}

func (m Model) cycleCode(current string, step int) string {
	if len(m.codes) == 0 {
		return current
	}
	idx := 0
	for i, code := range m.codes {
		if code == current {
			idx = i
			break
		}
	}
	idx = (idx + step + len(m.codes)) % len(m.codes)
	return m.codes[idx]
}

// ---------------------------------------------------------------------------
// Help bot tab
// ---------------------------------------------------------------------------

func (m Model) updateHelpBot(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Send) {
		text := m.chatInput.Value()
		if strings.TrimSpace(text) == "" {
			return m, nil
		}
		m.messages = append(m.messages, m.newMessage(domain.SenderUser, text))
		m.chatInput.Reset()
		m.pendingReplies++
		return m, botReplyCmd(m.replyDelay, m.matcher.Reply(text))
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

// ---------------------------------------------------------------------------
// Settings tab
// ---------------------------------------------------------------------------

// settingsItems is the number of rows: every flag plus "Clear App Data".
func settingsItems() int {
	return len(domain.AllSettingFlags) + 1
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmClear {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			message, err := m.svc.Settings.ClearData(m.ctx(), true)
			m.confirmClear = false
			m.setStatus(message, err)
		case key.Matches(msg, m.keys.Cancel):
			m.confirmClear = false
			m.status = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.QuitLetter):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.settingsCursor < settingsItems()-1 {
			m.settingsCursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.settingsCursor < len(domain.AllSettingFlags) {
			flag := domain.AllSettingFlags[m.settingsCursor]
			settings, err := m.svc.Settings.ToggleSetting(m.ctx(), flag)
			if err != nil {
				m.setStatus("", err)
				return m, nil
			}
			m.settings = settings
			m.status = ""
			return m, nil
		}
		prompt, err := m.svc.Settings.ClearData(m.ctx(), false)
		if errors.Is(err, apperrors.ErrConfirmationRequired) {
			m.confirmClear = true
			m.status = prompt
			m.statusErr = false
			return m, nil
		}
		m.setStatus(prompt, err)
	}
	return m, nil
}

func (m *Model) setStatus(message string, err error) {
	if err != nil {
		m.logger.Error("Settings action failed", slog.String("error", err.Error()))
		m.status = err.Error()
		m.statusErr = true
		return
	}
	m.status = message
	m.statusErr = false
}

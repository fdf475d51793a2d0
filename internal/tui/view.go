package tui

import (
	"fmt"
	"strings"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	"github.com/SscSPs/currency_companion_app/internal/platform/config"
	"github.com/SscSPs/currency_companion_app/internal/utils"
	"github.com/charmbracelet/lipgloss"
)

const (
	ratesTimeLayout = "2006-01-02 15:04 MST"
	defaultWidth    = 72
)

func (m Model) View() string {
	th := themeFor(m.settings.DarkMode)

	var body string
	switch m.activeTab {
	case tabConvert:
		body = m.convertView(th)
	case tabHelpBot:
		body = m.helpBotView(th)
	case tabSettings:
		body = m.settingsView(th)
	}

	sections := []string{m.renderHeader(th), body}
	if m.status != "" {
		style := th.success
		if m.statusErr {
			style = th.err
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, m.renderFooter(th))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return max(m.width-4, 20)
}

func (m Model) renderHeader(th theme) string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.activeTab {
			tabs[i] = th.activeTab.Render(name)
		} else {
			tabs[i] = th.inactiveTab.Render(name)
		}
	}
	return th.app.Render(config.AppName) + "  " + strings.Join(tabs, " ") + "\n"
}

func (m Model) renderFooter(th theme) string {
	bindings := m.keys.footerBindings(m.activeTab, m.confirmClear)
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, th.footerKey.Render(h.Key)+th.footer.Render(h.Desc))
	}
	return "\n" + strings.Join(parts, " ")
}

func (m Model) section(th theme, title, content string) string {
	return th.section.Width(m.contentWidth()).Render(th.title.Render(title) + "\n" + content)
}

// ---------------------------------------------------------------------------
// Convert
// ---------------------------------------------------------------------------

func (m Model) convertView(th theme) string {
	var b strings.Builder

	b.WriteString(m.ratesStatusLine(th))
	b.WriteString("\n\n")

	b.WriteString(th.label.Render("Amount   ") + m.amount.View() + "\n")
	b.WriteString(th.label.Render("From     ") + m.currencyLabel(th, m.from) + "\n")
	b.WriteString(th.label.Render("To       ") + m.currencyLabel(th, m.to) + "\n\n")

	switch {
	case m.convertErr != "":
		b.WriteString(th.err.Render(m.convertErr))
	case m.conversion == nil || m.conversion.Empty:
		b.WriteString(th.muted.Render("Converted amount will appear here"))
	default:
		b.WriteString(th.result.Render(fmt.Sprintf("%s%s %s",
			utils.CurrencySymbol(m.conversion.To), m.conversion.Display, m.conversion.To)))
	}
	if m.conversion != nil && m.conversion.HasUnitRate {
		b.WriteString("\n" + th.muted.Render(fmt.Sprintf("1 %s = %s %s",
			m.conversion.From, m.conversion.UnitRate.String(), m.conversion.To)))
	}

	converter := m.section(th, "Currency Converter", b.String())
	return lipgloss.JoinVertical(lipgloss.Left, converter, m.section(th, "Popular Currencies", m.popularView(th)))
}

func (m Model) ratesStatusLine(th theme) string {
	switch m.rates.Status {
	case domain.RateStatusLoading:
		return th.warning.Render("Loading exchange rates...")
	case domain.RateStatusError:
		line := th.err.Render(m.rates.Error)
		if m.rates.HasTable() {
			line += th.muted.Render(" (showing rates from " + m.rates.Table.FetchedAt.Format(ratesTimeLayout) + ")")
		}
		return line + th.muted.Render("  press r to retry")
	}
	return th.muted.Render(fmt.Sprintf("%d currencies, rates as of %s",
		len(m.rates.Table.Rates), m.rates.Table.FetchedAt.Format(ratesTimeLayout)))
}

func (m Model) currencyLabel(th theme, code string) string {
	label := th.value.Render(code)
	if name := utils.CurrencyName(code); name != code {
		label += th.muted.Render(fmt.Sprintf("  %s (%s)", name, utils.CurrencySymbol(code)))
	}
	return label
}

func (m Model) popularView(th theme) string {
	popular := utils.PopularCurrencies()
	cells := make([]string, len(popular))
	for i, c := range popular {
		cells[i] = th.value.Render(c.Code) + " " + th.muted.Render(c.Symbol)
	}
	return strings.Join(cells, "   ")
}

// ---------------------------------------------------------------------------
// Help bot
// ---------------------------------------------------------------------------

func (m Model) helpBotView(th theme) string {
	width := m.contentWidth() - 4
	lines := make([]string, 0, len(m.messages)+1)
	for _, msg := range m.messages {
		ts := th.muted.Render(msg.Timestamp.Format("15:04"))
		if msg.Sender == domain.SenderUser {
			bubble := th.userBubble.MaxWidth(width).Render(msg.Text)
			lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble+" "+ts))
		} else {
			bubble := th.botBubble.MaxWidth(width).Render(msg.Text)
			lines = append(lines, bubble+" "+ts)
		}
	}
	if m.pendingReplies > 0 {
		lines = append(lines, th.muted.Render("Assistant is typing..."))
	}

	visible := lines
	if m.height > 0 {
		// keep the newest messages on screen
		maxLines := max(m.height-10, 3)
		if len(visible) > maxLines {
			visible = visible[len(visible)-maxLines:]
		}
	}

	content := strings.Join(visible, "\n") + "\n\n" + m.chatInput.View()
	return m.section(th, "Currency Assistant", content)
}

// ---------------------------------------------------------------------------
// Settings
// ---------------------------------------------------------------------------

var settingLabels = map[domain.SettingFlag]string{
	domain.SettingDarkMode:      "Dark Mode",
	domain.SettingNotifications: "Notifications",
	domain.SettingAutoRefresh:   "Auto-Refresh Rates",
}

func (m Model) settingsView(th theme) string {
	var b strings.Builder
	for i, flag := range domain.AllSettingFlags {
		b.WriteString(m.settingsRow(th, i, fmt.Sprintf("%s %s", checkbox(m.settings.Get(flag)), settingLabels[flag])))
	}
	b.WriteString("\n")
	b.WriteString(m.settingsRow(th, len(domain.AllSettingFlags), th.err.Render("Clear App Data")))

	if m.confirmClear {
		b.WriteString("\n" + th.warning.Render("Clear Data: ") + th.value.Render("press y to confirm, n to cancel"))
	}

	about := th.value.Render(config.AppName+" v"+config.AppVersion) + "\n" +
		th.muted.Render("Exchange rates provided by open.er-api.com")

	return lipgloss.JoinVertical(lipgloss.Left,
		m.section(th, "Settings", strings.TrimRight(b.String(), "\n")),
		m.section(th, "About", about),
	)
}

func (m Model) settingsRow(th theme, idx int, label string) string {
	if idx == m.settingsCursor {
		return th.cursor.Render("> ") + label + "\n"
	}
	return "  " + label + "\n"
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

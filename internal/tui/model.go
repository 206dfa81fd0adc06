package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codeberg.org/varkas/amptop/internal/battery"
	"codeberg.org/varkas/amptop/internal/config"
	"codeberg.org/varkas/amptop/internal/history"
)

// historyWindow caps how many snapshots a refresh pulls from the log.
const historyWindow = 500

type tickMsg time.Time

type dataMsg struct {
	reading   *battery.Reading
	readErr   error
	snapshots []history.Snapshot
	histErr   error
}

// Model is the viewer state: the latest live reading plus the most recent
// slice of the persistent log, refreshed every cfg.Delay seconds.
type Model struct {
	cfg      *config.Config
	provider battery.Provider
	repo     history.Repository

	Width  int
	Height int
	Ready  bool

	reading   *battery.Reading
	readErr   error
	snapshots []history.Snapshot
	histErr   error
}

func NewModel(cfg *config.Config, provider battery.Provider, repo history.Repository) Model {
	return Model{cfg: cfg, provider: provider, repo: repo}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchData, m.tick)
}

func (m *Model) tick() tea.Msg {
	time.Sleep(time.Duration(m.cfg.Delay) * time.Second)
	return tickMsg(time.Now())
}

func (m *Model) fetchData() tea.Msg {
	var msg dataMsg
	msg.reading, msg.readErr = m.provider.Read()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	msg.snapshots, msg.histErr = m.repo.Query(ctx, historyWindow)

	return msg
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true

	case tickMsg:
		return m, tea.Batch(m.fetchData, m.tick)

	case dataMsg:
		m.reading = msg.reading
		m.readErr = msg.readErr
		m.snapshots = msg.snapshots
		m.histErr = msg.histErr
	}

	return m, nil
}

func (m *Model) View() string {
	if !m.Ready {
		return ""
	}

	w := m.Width - 2
	if w < 20 {
		w = 20
	}
	half := w / 2

	gauge := m.gaugeView(w)
	info := lipgloss.JoinHorizontal(lipgloss.Top,
		m.deviceView(half),
		m.energyView(w-half),
	)

	used := lipgloss.Height(gauge) + lipgloss.Height(info)
	chartH := m.Height - used - 2
	if chartH < 6 {
		chartH = 6
	}
	chart := m.chartView(w, chartH)

	help := mutedStyle.Render("  q quit")

	return lipgloss.JoinVertical(lipgloss.Left, gauge, info, chart, help)
}

func (m *Model) gaugeView(width int) string {
	title := titleStyle.Render("State of charge")

	if m.readErr != nil {
		return panelStyle.Width(width).Render(
			title + "\n" + errStyle.Render("Error reading power source: "+m.readErr.Error()))
	}
	if m.reading == nil {
		return panelStyle.Width(width).Render(
			title + "\n" + mutedStyle.Render("No battery detected"))
	}

	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	percent := m.reading.Percent
	filled := int(percent/100*float64(inner) + 0.5)
	if filled > inner {
		filled = inner
	}

	style := gaugeHighStyle
	switch {
	case percent <= 15:
		style = gaugeLowStyle
	case percent <= 30:
		style = gaugeMidStyle
	}

	bar := style.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", inner-filled))
	label := fmt.Sprintf(" %.1f%%", percent)

	return panelStyle.Width(width).Render(title + "\n" + bar + label)
}

func (m *Model) deviceView(width int) string {
	title := titleStyle.Render("Device Information")

	if m.reading == nil {
		return panelStyle.Width(width).Render(
			title + "\n" + mutedStyle.Render("No battery detected"))
	}

	rows := infoRows([][2]string{
		{"Vendor", orNA(m.reading.Vendor)},
		{"Model", orNA(m.reading.Model)},
		{"Charge state", string(m.reading.Status)},
	})

	return panelStyle.Width(width).Render(title + "\n" + rows)
}

func (m *Model) energyView(width int) string {
	title := titleStyle.Render("Energy")

	if m.reading == nil {
		return panelStyle.Width(width).Render(
			title + "\n" + mutedStyle.Render("No battery detected"))
	}

	rows := infoRows([][2]string{
		{"Voltage", formatUnit(m.reading.VoltageV, "V")},
		{"Current", formatUnit(m.reading.EnergyWh, "Wh")},
		{"Last full", formatUnit(m.reading.EnergyFullWh, "Wh")},
		{"Temperature", formatUnit(m.reading.TemperatureC, "°C")},
	})

	return panelStyle.Width(width).Render(title + "\n" + rows)
}

func infoRows(items [][2]string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-16s", item[0])))
		b.WriteString(item[1])
	}

	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}

	return s
}

func formatUnit(v float64, unit string) string {
	if v == 0 {
		return "N/A"
	}

	return fmt.Sprintf("%.1f %s", v, unit)
}

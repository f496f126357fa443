package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/napolitain/fractaline-stonks/internal/countdown"
	"github.com/napolitain/fractaline-stonks/internal/format"
	"github.com/napolitain/fractaline-stonks/internal/models"
	"github.com/napolitain/fractaline-stonks/internal/schedule"
	"github.com/napolitain/fractaline-stonks/internal/solver"
)

var (
	watchTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
	watchValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	watchHelpStyle  = lipgloss.NewStyle().Faint(true)
)

type tickMsg time.Time

// watchModel re-renders the season countdown once per second
type watchModel struct {
	now    time.Time
	offset time.Duration
	end    time.Time
}

func newWatchModel(start time.Time, end time.Time) watchModel {
	return watchModel{
		now:    start,
		offset: start.Sub(time.Now()),
		end:    end,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		m.now = time.Time(msg).Add(m.offset).UTC()
		if !m.now.Before(m.end) {
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m watchModel) View() string {
	left := countdown.Breakdown(m.now, m.end)
	remaining := len(schedule.GenerateCheckpoints(m.now, m.end))
	advice := solver.Advise(remaining, solver.TrailingWindow)

	headline := fmt.Sprintf("Don't donate! %d resets left to invest", advice.InvestResetsLeft)
	if advice.ShouldDonate {
		headline = models.Donate.Label()
	}

	return fmt.Sprintf("%s\n\n%s\n%s remaining (%s)\n\n%s\n",
		watchTitleStyle.Render("Season of Dawn"),
		headline,
		watchValueStyle.Render(left.String()),
		format.Relative(m.end, m.now),
		watchHelpStyle.Render("q to quit"),
	)
}

func runWatch(cmd *cobra.Command, args []string) error {
	at, err := now()
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(newWatchModel(at, schedule.SeasonEnd)).Run(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}

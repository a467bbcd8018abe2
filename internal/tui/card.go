package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vilaca/profile-detective/internal/profile"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)
	nameStyle  = lipgloss.NewStyle().Bold(true)
	loginStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statStyle  = lipgloss.NewStyle().Width(14).Align(lipgloss.Center)
	linkStyle  = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("86"))
)

// RenderCard draws a profile card for the terminal.
func RenderCard(c profile.Card) string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		nameStyle.Render(c.DisplayName),
		loginStyle.Render(c.Login),
		dimStyle.Render("Joined: "+c.Joined),
	)

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Repositories", c.Repos),
		stat("Followers", c.Followers),
		stat("Following", c.Following),
	)

	links := lipgloss.JoinVertical(lipgloss.Left,
		"📍 "+c.Location,
		"🐦 "+c.Twitter,
		"🏢 "+c.Company,
		"🔗 "+c.Blog,
	)

	rows := []string{header, "", stats, "", links}
	if c.HasProfileLink() {
		rows = append(rows, "", fmt.Sprintf("View Profile: %s", linkStyle.Render(c.ProfileURL)))
	}

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func stat(label string, value int) string {
	return statStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		dimStyle.Render(label),
		nameStyle.Render(strconv.Itoa(value)),
	))
}

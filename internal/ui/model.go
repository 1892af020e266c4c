// Package ui renders short-lived status notifications below the main view.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/livegrid/livegrid/style"
)

const lifetime = 3 * time.Second

// Notification carries the text to show.
type Notification string

// ClearNotificationMsg resets the notification once its lifetime is over.
type ClearNotificationMsg struct {
	at time.Time
}

// Model holds the current notification.
type Model struct {
	notification string
	notifiedAt   time.Time
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return Notification(text)
	}
}

func clearAfter(at time.Time) tea.Cmd {
	return tea.Tick(lifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{at: at}
	})
}

// Update handles Notification and ClearNotificationMsg and ignores anything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notification:
		m.notification = string(msg)
		m.notifiedAt = time.Now()
		return clearAfter(m.notifiedAt)
	case ClearNotificationMsg:
		// a newer notification restarted the clock
		if msg.at.Equal(m.notifiedAt) {
			m.notification = ""
		}
	}
	return nil
}

// Current is the text being shown, empty when idle.
func (m *Model) Current() string {
	return m.notification
}

// View appends the notification to the last line of mainContent.
func (m *Model) View(mainContent string) string {
	if m.notification == "" {
		return mainContent
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}

package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClockTickMsg is sent on every clock interval while the clock is running.
type ClockTickMsg struct {
	ID int
}

// ClockModel wakes the program up periodically so views that depend on the
// current day, like the today marker, follow the wall clock.
type ClockModel struct {
	id       int
	interval time.Duration
	running  bool
}

// NewClock creates a clock ticking every interval.
func NewClock(id int, interval time.Duration) *ClockModel {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ClockModel{
		id:       id,
		interval: interval,
	}
}

// Start starts the clock.
func (m *ClockModel) Start() tea.Cmd {
	m.running = true
	return m.Tick()
}

// Stop stops the clock. A tick already in flight is ignored by Update.
func (m *ClockModel) Stop() {
	m.running = false
}

// Running reports whether the clock is started.
func (m *ClockModel) Running() bool {
	return m.running
}

// Tick returns a command that sends a ClockTickMsg after one interval.
func (m *ClockModel) Tick() tea.Cmd {
	id := m.id
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return ClockTickMsg{ID: id}
	})
}

// Update schedules the next tick for this clock's own messages.
func (m *ClockModel) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(ClockTickMsg)
	if !ok || tick.ID != m.id || !m.running {
		return nil
	}
	return m.Tick()
}

package tui

import tea "github.com/charmbracelet/bubbletea"

// RefreshMsg returns the message a scheduled refresh delivers.
func RefreshMsg() tea.Msg { return refreshMsg{} }

package controller

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

// StyledUI is a SimpleUI whose banners are highlighted for terminals.
type StyledUI struct {
	*SimpleUI
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	simple := NewSimpleUI(cmd)
	simple.title = func(s string) string { return titleStyle.Render(s) }

	return &StyledUI{SimpleUI: simple}
}

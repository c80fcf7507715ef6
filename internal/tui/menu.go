// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const storageNotice = "Your progress is kept in a local database file on this machine.\n" +
	"Nothing is sent anywhere. Press a to acknowledge."

type menuItem struct {
	title  string
	target screen
}

type menuModel struct {
	items   []menuItem
	idx     int
	consent bool
	// consentKnown is false until the stored flag has been read.
	consentKnown bool
}

func newMenuModel() menuModel {
	return menuModel{
		items: []menuItem{
			{title: "Word grid", target: screenGrid},
			{title: "Statistics", target: screenStats},
			{title: "Quiz", target: screenQuiz},
		},
	}
}

func (m menuModel) current() menuItem {
	return m.items[m.idx]
}

func (m menuModel) View() string {
	var b strings.Builder

	if m.consentKnown && !m.consent {
		b.WriteString(bannerStyle.Render(storageNotice))
		b.WriteString("\n\n")
	}

	idColWidth := lipgloss.Width("ID")
	if w := lipgloss.Width(fmt.Sprintf("%d", len(m.items))); w > idColWidth {
		idColWidth = w
	}
	idColWidth += 2

	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	hotKeys := "enter: open │ ↑/↓: navigate │ v: version │ q: quit"
	if m.consentKnown && !m.consent {
		hotKeys += " │ a: acknowledge"
	}

	return renderPage("HSK KEEPER", strings.TrimRight(b.String(), "\n"), hotKeys)
}

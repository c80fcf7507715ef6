// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	bannerStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
	correctStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	wrongStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

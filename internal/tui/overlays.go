// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

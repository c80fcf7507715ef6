// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: exit"))

	return b.String()
}

// fitText shortens v to at most max runes.
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// masteryBar draws mastery as filled and empty dots.
func masteryBar(mastery, limit int) string {
	mastery = min(max(mastery, 0), limit)
	return strings.Repeat("●", mastery) + strings.Repeat("○", limit-mastery)
}

// checkboxes renders a row like "[x]1 [ ]2" for the values from..to.
func checkboxes(set map[int]bool, from, to int) string {
	cells := make([]string, 0, to-from+1)
	for v := from; v <= to; v++ {
		mark := " "
		if set[v] {
			mark = "x"
		}
		cells = append(cells, fmt.Sprintf("[%s]%d", mark, v))
	}
	return strings.Join(cells, " ")
}

// toggle flips v in set.
func toggle(set map[int]bool, v int) {
	if set[v] {
		delete(set, v)
		return
	}
	set[v] = true
}

// values returns the members of set in ascending order.
func values(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for v, on := range set {
		if on {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return out
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	accept     key.Binding
	version    key.Binding
	sort       key.Binding
	export     key.Binding
	copy       key.Binding
	importFile key.Binding
	reset      key.Binding
	next       key.Binding
	mastery    key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	left:       key.NewBinding(key.WithKeys("left", "h")),
	right:      key.NewBinding(key.WithKeys("right", "l")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	accept:     key.NewBinding(key.WithKeys("a")),
	version:    key.NewBinding(key.WithKeys("v")),
	sort:       key.NewBinding(key.WithKeys("s")),
	export:     key.NewBinding(key.WithKeys("e")),
	copy:       key.NewBinding(key.WithKeys("c")),
	importFile: key.NewBinding(key.WithKeys("i")),
	reset:      key.NewBinding(key.WithKeys("r")),
	next:       key.NewBinding(key.WithKeys("n")),
	mastery:    key.NewBinding(key.WithKeys("m")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n")),
}

// digit returns the value of a single digit key press.
func digit(k string) (int, bool) {
	if len(k) != 1 || k[0] < '0' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '0'), true
}

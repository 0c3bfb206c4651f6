// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package report

import "github.com/pterm/pterm"

var (
	warnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	warnColorFG  = pterm.FgYellow
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	errorColorFG = pterm.FgRed
)

// Console is a Log that renders reports to the terminal with pterm
// styling: a colored severity tag followed by the message and, when
// available, the source position.
type Console struct{}

// Submit implements Log.
func (Console) Submit(r *Report) {
	msg := r.Message
	if r.Pos.IsValid() {
		msg += " (" + r.Pos.String() + ")"
	}
	switch r.Severity {
	case SeverityError:
		errorStyleBG.Print(" ERROR ")
		errorColorFG.Println(" " + msg)
	default:
		warnStyleBG.Print(" WARN ")
		warnColorFG.Println(" " + msg)
	}
}

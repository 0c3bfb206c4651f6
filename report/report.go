// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/gogpu/xsc/ast"
)

// Severity grades a report.
type Severity uint8

const (
	// SeverityWarning marks conditions that never abort generation.
	SeverityWarning Severity = iota

	// SeverityError marks malformed constructs; generation continues so
	// later errors still surface, but the output must not be used.
	SeverityError
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Report is one diagnostic: a severity, a message, and an optional source
// position. A Report is also a Go error so fatal conditions can travel
// through normal error returns.
type Report struct {
	Severity Severity
	Message  string
	Pos      ast.Pos
}

// Error implements the error interface.
func (r *Report) Error() string {
	if r.Pos.IsValid() {
		return fmt.Sprintf("%s at %s: %s", r.Severity, r.Pos, r.Message)
	}
	return fmt.Sprintf("%s: %s", r.Severity, r.Message)
}

// Errorf builds an error-severity report, positioned when pos is valid.
func Errorf(pos ast.Pos, format string, args ...any) *Report {
	return &Report{
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	}
}

// Warnf builds a warning-severity report.
func Warnf(pos ast.Pos, format string, args ...any) *Report {
	return &Report{
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	}
}

// Log receives the diagnostics produced during generation. The caller
// supplies one per generation request; implementations need not be safe
// for concurrent use.
type Log interface {
	Submit(r *Report)
}

// Collector is a Log that retains every report.
type Collector struct {
	Reports []*Report

	numErrors   int
	numWarnings int
}

// Submit implements Log.
func (c *Collector) Submit(r *Report) {
	c.Reports = append(c.Reports, r)
	switch r.Severity {
	case SeverityError:
		c.numErrors++
	case SeverityWarning:
		c.numWarnings++
	}
}

// HasErrors reports whether any error-severity report was submitted.
func (c *Collector) HasErrors() bool {
	return c.numErrors > 0
}

// NumErrors returns the number of error reports.
func (c *Collector) NumErrors() int {
	return c.numErrors
}

// NumWarnings returns the number of warning reports.
func (c *Collector) NumWarnings() int {
	return c.numWarnings
}

// Reporter is the shared submission helper the passes hold. It forwards
// to the caller's Log, tolerates a nil Log, and remembers whether any
// error was submitted so the driver can reject the output at the end.
type Reporter struct {
	log       Log
	numErrors int
}

// NewReporter returns a Reporter forwarding to log. A nil log drops the
// reports but still counts errors.
func NewReporter(log Log) *Reporter {
	return &Reporter{log: log}
}

// Submit forwards a prebuilt report.
func (r *Reporter) Submit(rep *Report) {
	if rep.Severity == SeverityError {
		r.numErrors++
	}
	if r.log != nil {
		r.log.Submit(rep)
	}
}

// Errorf submits an error-severity report.
func (r *Reporter) Errorf(pos ast.Pos, format string, args ...any) {
	r.Submit(Errorf(pos, format, args...))
}

// Warnf submits a warning-severity report.
func (r *Reporter) Warnf(pos ast.Pos, format string, args ...any) {
	r.Submit(Warnf(pos, format, args...))
}

// HasErrors reports whether any error-severity report went through.
func (r *Reporter) HasErrors() bool {
	return r.numErrors > 0
}

// NumErrors returns the number of error-severity reports submitted.
func (r *Reporter) NumErrors() int {
	return r.numErrors
}

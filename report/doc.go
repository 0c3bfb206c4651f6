// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package report defines the diagnostic model of the code generator:
// positioned reports with a severity, the Log interface generation sinks
// them into, and a Reporter that the passes share.
//
// Recoverable problems are submitted to the Log and generation continues,
// so one run surfaces as many diagnostics as possible. Unrecoverable
// conditions travel as *Report error values and abort generation; the
// output written so far must then be discarded.
package report

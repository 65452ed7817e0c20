// Package timeouts defines timeout and delay constants for Resolve operations.
package timeouts

import "time"

const (
	// Resolve Lifecycle Timeouts

	// ProcessAppearTimeout is the maximum time to wait for the Resolve process
	// to show up in the process list after launching the executable. The
	// process normally registers within a couple of seconds; the generous
	// bound covers cold starts on slower systems.
	ProcessAppearTimeout = 30 * time.Second

	// WindowAppearTimeout is the maximum time to wait for the Resolve main
	// window to appear after the process starts. Resolve spends most of its
	// startup behind a splash screen while it loads databases and plugins,
	// which can take a while on large project libraries.
	WindowAppearTimeout = 2 * time.Minute

	// ScriptReadyTimeout is the maximum time to wait for the scripting service
	// to start answering calls once the main window is up. The service comes
	// up shortly after the UI but is not ready the instant the window shows.
	ScriptReadyTimeout = 60 * time.Second

	// ShutdownTimeout is the maximum time to wait for the Resolve process to
	// disappear from the process list after a termination request.
	ShutdownTimeout = 15 * time.Second

	// Scripting Call Timeouts

	// ScriptCallTimeout bounds a single scripting invocation through the
	// script host. Most calls return in well under a second; media pool
	// imports of large folders are the slow outliers.
	ScriptCallTimeout = 2 * time.Minute

	// ScriptPingTimeout bounds the lightweight product-name call used to
	// probe whether the scripting service is answering.
	ScriptPingTimeout = 10 * time.Second

	// Polling Intervals

	// ProcessPollingInterval is the fixed sleep between process list
	// snapshots while waiting for Resolve to appear or exit.
	ProcessPollingInterval = 1 * time.Second

	// StatePollingInterval is the delay between checks in tight polling loops
	// when actively waiting for state changes (window appearance, scripting
	// readiness).
	StatePollingInterval = 500 * time.Millisecond
)

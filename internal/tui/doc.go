// Package tui implements the live dashboard of "limbcalc -tui check": a
// bubbletea program showing each property as it completes next to the
// memory and system load of the process.
//
// The self-check runs in its own goroutine and talks to the program through
// a [Reporter], which turns runner callbacks into bubbletea messages.
package tui

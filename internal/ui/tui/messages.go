package tui

import "time"

// lessonDoneMsg carries the outcome of one run. seq identifies the run so a
// result from an abandoned run of the same lesson is not shown.
type lessonDoneMsg struct {
	id     string
	seq    int
	output string
	took   time.Duration
	err    error
}

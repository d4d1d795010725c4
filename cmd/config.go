package cmd

import "time"

// Config carries the runtime settings for the application. Durations tune
// how long the simulated kitchen and road legs take; the dispatch job can be
// switched off for purely interactive runs.
type Config struct {
	PrepTime           time.Duration
	TransitTime        time.Duration
	DispatchJobEnabled bool
}

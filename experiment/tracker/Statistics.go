package tracker

import (
	"github.com/samuelfneumann/camctl/environment/camera"
	ts "github.com/samuelfneumann/camctl/timestep"
)

// StatisticsSource is an environment which keeps cross-episode
// statistics
type StatisticsSource interface {
	Statistics() camera.Statistics
}

// Statistics tracks and saves the cross-episode orientation statistics
// of a camera environment. A snapshot of the statistics is taken at
// the end of every episode.
type Statistics struct {
	source   StatisticsSource
	stats    camera.Statistics
	filename string
}

// NewStatistics returns a new Statistics tracker of the statistics
// kept by source
func NewStatistics(source StatisticsSource, filename string) *Statistics {
	return &Statistics{source: source, filename: filename}
}

// Track takes a snapshot of the statistics if t is the last timestep in
// an episode
func (s *Statistics) Track(t ts.TimeStep) {
	if t.Last() {
		s.stats = s.source.Statistics()
	}
}

// Summary summarizes the latest snapshot
func (s *Statistics) Summary() camera.Summary {
	return s.stats.Summary()
}

// Save saves the latest snapshot to disk
func (s *Statistics) Save() error {
	return save(s.filename, s.stats)
}

// LoadStatistics loads the statistics saved by a Statistics Tracker
func LoadStatistics(filename string) (camera.Statistics, error) {
	var stats camera.Statistics
	err := load(filename, &stats)
	return stats, err
}

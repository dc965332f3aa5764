package utils

import (
	"fmt"
	"time"
)

// Stats tracks progress of the current run
type Stats struct {
	Generation int
	Resets     int
	Population int
	Period     int // 0 unless the board repeats a recent generation
	StartTime  time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Advance records one computed generation
func (s *Stats) Advance(population, period int) {
	s.Generation++
	s.Population = population
	s.Period = period
}

// Reset records a fresh random population
func (s *Stats) Reset(population int) {
	s.Resets++
	s.Generation = 0
	s.Population = population
	s.Period = 0
}

// Status formats a one-line summary for display under the grid
func (s *Stats) Status() string {
	status := "Active"
	switch {
	case s.Population == 0:
		status = "Extinct"
	case s.Period == 1:
		status = "Still"
	case s.Period > 1:
		status = fmt.Sprintf("Period %d", s.Period)
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Resets: %d | Status: %s",
		s.Generation, s.Population, s.Resets, status)
}

package utils

import (
	"fmt"
	"time"
)

// Stats tracks how a run is going
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	Population           int
	StartTime            time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one completed generation. duration is the time since the
// previous generation; zero leaves the rate untouched.
func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.TotalGenerations <= 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary is a one-line report of the run so far
func (s *Stats) Summary() string {
	return fmt.Sprintf("Generations: %d | Living: %d | Avg Pop: %.1f | Runtime: %.1fs",
		s.TotalGenerations, s.Population, s.AveragePopulation, time.Since(s.StartTime).Seconds())
}

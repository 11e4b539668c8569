package renderer

import "sync"

// RenderStats accumulates sampling counters across all rows. Workers
// call addRow concurrently, so the counters are guarded by a mutex
// rather than being written lock-free.
type RenderStats struct {
	mu           sync.Mutex
	TotalPixels  int
	TotalSamples int
}

func (s *RenderStats) addRow(pixels, samples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.TotalPixels += pixels
	s.TotalSamples += samples
}

// AverageSamples returns the mean number of samples taken per pixel.
func (s *RenderStats) AverageSamples() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

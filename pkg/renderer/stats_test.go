package renderer

import (
	"sync"
	"testing"
)

func TestRenderStats_AverageSamples(t *testing.T) {
	s := &RenderStats{}
	s.addRow(10, 40) // 10 pixels, 4 samples each
	s.addRow(10, 20) // 10 pixels, 2 samples each

	want := (40.0 + 20.0) / 20.0
	if got := s.AverageSamples(); got != want {
		t.Errorf("AverageSamples() = %v, want %v", got, want)
	}
}

func TestRenderStats_ZeroPixelsNoDivideByZero(t *testing.T) {
	s := &RenderStats{}
	if got := s.AverageSamples(); got != 0 {
		t.Errorf("AverageSamples() on empty stats = %v, want 0", got)
	}
}

func TestRenderStats_ConcurrentAddRowIsSafe(t *testing.T) {
	s := &RenderStats{}
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.addRow(1, 1)
		}()
	}
	wg.Wait()

	if s.TotalPixels != 100 || s.TotalSamples != 100 {
		t.Errorf("got TotalPixels=%d TotalSamples=%d, want 100/100", s.TotalPixels, s.TotalSamples)
	}
}

package renderer

import (
	"testing"
	"time"
)

func TestRenderStats(t *testing.T) {
	stats := RenderStats{
		Workers: []WorkerStats{
			{TaskID: 0, PrimaryRays: 300},
			{TaskID: 1, PrimaryRays: 700},
		},
		RenderTime: 2 * time.Second,
	}

	if stats.PrimaryRays() != 1000 {
		t.Errorf("Expected 1000 primary rays, got %d", stats.PrimaryRays())
	}
	if stats.RaysPerSecond() != 500 {
		t.Errorf("Expected 500 rays/s, got %f", stats.RaysPerSecond())
	}

	stats.RenderTime = 0
	if stats.RaysPerSecond() != 0 {
		t.Errorf("Expected 0 rays/s without a render time, got %f", stats.RaysPerSecond())
	}
}

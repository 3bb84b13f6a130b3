package testkit

import (
	"math"
	"testing"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := DefaultSampleConfig()

	a, _ := Generate(cfg)
	b, _ := Generate(cfg)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different samples at index %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGenerate_PlantIsMostExtreme(t *testing.T) {
	cfg := DefaultSampleConfig()
	sample, idx := Generate(cfg)

	if idx != cfg.Size-1 {
		t.Fatalf("expected plant at last index, got %d", idx)
	}

	plantDev := math.Abs(sample[idx] - cfg.Mean)
	for i, y := range sample {
		if i == idx {
			continue
		}
		if math.Abs(y-cfg.Mean) >= plantDev {
			t.Fatalf("observation %d (%v) is as extreme as the plant (%v)", i, y, sample[idx])
		}
	}
}

func TestGenerate_NoPlant(t *testing.T) {
	cfg := DefaultSampleConfig()
	cfg.OutlierMagnitude = 0

	sample, idx := Generate(cfg)
	if idx != -1 {
		t.Fatalf("expected no plant index, got %d", idx)
	}
	if len(sample) != cfg.Size {
		t.Fatalf("expected %d observations, got %d", cfg.Size, len(sample))
	}
}

package types

import "testing"

func TestRowFollowsFeatureOrder(t *testing.T) {
	var s WaterSample
	for i := range FeatureNames {
		s.SetFeature(i, float64(i+1))
	}
	row := s.Row()
	for i, v := range row {
		if v != float64(i+1) {
			t.Fatalf("row[%d] (%s) = %v, want %v", i, FeatureNames[i], v, i+1)
		}
	}
	if s.OrganicCarbon != 7 || s.Turbidity != 9 {
		t.Fatalf("unexpected sample: %+v", s)
	}
}

func TestFeatureIndex(t *testing.T) {
	if i, ok := FeatureIndex("Sulfate"); !ok || i != 4 {
		t.Fatalf("Sulfate -> %d %v", i, ok)
	}
	if _, ok := FeatureIndex("sulfate"); ok {
		t.Fatalf("lookup must be case sensitive")
	}
	if _, ok := FeatureIndex("Potability"); ok {
		t.Fatalf("unexpected hit for Potability")
	}
}

package output

import (
	"testing"
	"time"

	"orrery/internal/ephemeris"
)

func TestZodiac(t *testing.T) {
	tests := []struct {
		deg    float64
		sign   string
		within float64
	}{
		{0, "Aries", 0},
		{29.5, "Aries", 29.5},
		{30, "Taurus", 0},
		{359.9, "Pisces", 29.9},
		{-10, "Pisces", 20},
		{725, "Aries", 5},
		{-1e-15, "Aries", 0},
	}
	for _, tt := range tests {
		sign, within := Zodiac(tt.deg)
		if sign != tt.sign || within-tt.within > 1e-9 || tt.within-within > 1e-9 {
			t.Errorf("Zodiac(%v) = %s %v, want %s %v", tt.deg, sign, within, tt.sign, tt.within)
		}
	}
}

func TestDMS(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{12.5, "12°30′"},
		{3.0166667, "3°01′"},
		{0.5, "0°30′"},
		{0, "0°00′"},
		// truncated, not rounded up into the next degree
		{29.9999, "29°59′"},
	}
	for _, tt := range tests {
		if got := DMS(tt.deg); got != tt.want {
			t.Errorf("DMS(%v) = %q, want %q", tt.deg, got, tt.want)
		}
	}
}

func TestBuildReport(t *testing.T) {
	angles := ephemeris.Angles{10, 40, 70, 100, 130, 160, 190}
	when := time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC)

	r := BuildReport(when, 79.1, angles)
	if r.Date != "2024-03-20 03:06" {
		t.Errorf("Date = %q", r.Date)
	}

	inner := r.SectionByID(SectionInner)
	outer := r.SectionByID(SectionOuter)
	if inner == nil || outer == nil {
		t.Fatal("missing sections")
	}
	if len(inner.Items) != 4 || len(outer.Items) != 3 {
		t.Errorf("section sizes %d/%d, want 4/3", len(inner.Items), len(outer.Items))
	}

	sun := inner.ItemByKey("sun")
	if sun == nil {
		t.Fatal("sun missing from inner section")
	}
	if sun.Label != "Sun" || sun.Value != 100 || sun.Note != "10°00′ Cancer" {
		t.Errorf("sun item %+v", sun)
	}
	if outer.ItemByKey("saturn").Note != "10°00′ Libra" {
		t.Errorf("saturn note %q", outer.ItemByKey("saturn").Note)
	}
	if r.SectionByID("nope") != nil {
		t.Error("unexpected section")
	}
}

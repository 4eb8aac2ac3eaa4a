package layout

import "testing"

func TestRelayout(t *testing.T) {
	tests := []struct {
		name string
		size Size
		want Layout
	}{
		{
			name: "landscape",
			size: Size{W: 200, H: 100},
			want: Layout{Horizontal, Rect{0, 0, 100, 100}, Rect{100, 0, 100, 100}},
		},
		{
			name: "portrait",
			size: Size{W: 100, H: 300},
			want: Layout{Vertical, Rect{0, 0, 100, 150}, Rect{0, 150, 100, 150}},
		},
		{
			name: "square is horizontal",
			size: Size{W: 80, H: 80},
			want: Layout{Horizontal, Rect{0, 0, 40, 80}, Rect{40, 0, 40, 80}},
		},
		{
			name: "odd width",
			size: Size{W: 81, H: 20},
			want: Layout{Horizontal, Rect{0, 0, 40, 20}, Rect{40, 0, 41, 20}},
		},
		{
			name: "negative clamps to empty",
			size: Size{W: -5, H: -5},
			want: Layout{Horizontal, Rect{0, 0, 0, 0}, Rect{0, 0, 0, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Relayout(tt.size)
			if got != tt.want {
				t.Errorf("Relayout(%v) = %+v, want %+v", tt.size, got, tt.want)
			}
		})
	}
}

func TestRelayoutIdempotent(t *testing.T) {
	for w := 0; w < 60; w += 7 {
		for h := 0; h < 60; h += 5 {
			s := Size{W: w, H: h}
			if a, b := Relayout(s), Relayout(s); a != b {
				t.Fatalf("Relayout(%v) not idempotent: %+v vs %+v", s, a, b)
			}
		}
	}
}

func TestRelayoutCoversWindow(t *testing.T) {
	for _, s := range []Size{{200, 100}, {101, 303}, {1, 1}, {0, 10}} {
		l := Relayout(s)
		if l.Display.W*l.Display.H+l.Controls.W*l.Controls.H != s.W*s.H {
			t.Errorf("Relayout(%v) areas do not add up: %+v", s, l)
		}
	}
}

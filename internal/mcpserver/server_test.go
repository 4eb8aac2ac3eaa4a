package mcpserver

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"orrery/internal/assets"
	"orrery/internal/datectl"
	"orrery/internal/dial"
	"orrery/internal/ephemeris"
)

var refNow = time.Date(2024, 3, 20, 3, 6, 45, 0, time.UTC)

// MockEphemeris returns fixed angles and optionally fails.
type MockEphemeris struct {
	Angles ephemeris.Angles
	Err    error
	Calls  int
	Last   time.Time
}

func (m *MockEphemeris) Longitude(b ephemeris.Body, t time.Time) (float64, error) {
	m.Calls++
	m.Last = t
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Angles[b], nil
}

func (m *MockEphemeris) Longitudes(t time.Time) (ephemeris.Angles, error) {
	return ephemeris.All(m, t)
}

func newTestServer(t *testing.T, eph ephemeris.Ephemeris) *Server {
	t.Helper()
	var radii [ephemeris.BodyCount]float64
	for i, r := range dial.ReferenceRadii {
		radii[i] = r / 10
	}
	r, err := dial.NewRenderer(assets.Generate(radii, assets.GenerateOptions{Band: 3}), radii)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewServer(Config{ServerName: "orrery-test", ServerVersion: "0.0.0"}, eph, r, datectl.FixedClock(refNow), nil)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return s
}

func TestNewServerRequiresDeps(t *testing.T) {
	if _, err := NewServer(Config{}, nil, nil, nil, nil); err == nil {
		t.Error("Expected error without ephemeris and renderer")
	}
}

func TestHandleRingAngles(t *testing.T) {
	eph := &MockEphemeris{Angles: ephemeris.Angles{10, 20, 30, 0.5, 95, 200, 365}}
	s := newTestServer(t, eph)

	_, result, err := s.handleRingAngles(context.Background(), nil, RingAnglesArgs{Date: "2024-06-01 10:30"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Date != "2024-06-01 10:30" {
		t.Errorf("Expected date 2024-06-01 10:30, got %s", result.Date)
	}
	if len(result.Angles) != ephemeris.BodyCount {
		t.Fatalf("Expected %d angles, got %d", ephemeris.BodyCount, len(result.Angles))
	}
	if result.Angles[0].Body != "moon" || result.Angles[6].Body != "saturn" {
		t.Errorf("Expected moon..saturn order, got %s..%s", result.Angles[0].Body, result.Angles[6].Body)
	}
	if result.Angles[3].Sign != "Aries" || result.Angles[3].Position != "0°30′" {
		t.Errorf("Expected sun at 0°30′ Aries, got %s %s", result.Angles[3].Position, result.Angles[3].Sign)
	}
	if result.Angles[6].Longitude != 5 {
		t.Errorf("Expected saturn normalized to 5, got %f", result.Angles[6].Longitude)
	}
}

func TestHandleRingAngles_BodyFilter(t *testing.T) {
	eph := &MockEphemeris{Angles: ephemeris.Angles{10, 20, 30, 40, 50, 60, 70}}
	s := newTestServer(t, eph)

	_, result, err := s.handleRingAngles(context.Background(), nil, RingAnglesArgs{Date: "2024-06-01 10:30", Bodies: []string{"mars", "moon"}})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(result.Angles) != 2 || result.Angles[0].Body != "mars" || result.Angles[1].Longitude != 10 {
		t.Errorf("Unexpected filtered angles %+v", result.Angles)
	}

	if _, _, err := s.handleRingAngles(context.Background(), nil, RingAnglesArgs{Bodies: []string{"pluto"}}); err == nil {
		t.Error("Expected error for unknown body")
	}
}

func TestHandleRingAngles_DefaultsToNow(t *testing.T) {
	s := newTestServer(t, &MockEphemeris{})
	_, result, err := s.handleRingAngles(context.Background(), nil, RingAnglesArgs{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Date != "2024-03-20 03:06" {
		t.Errorf("Expected clock time 2024-03-20 03:06, got %s", result.Date)
	}
}

func TestResolveDate(t *testing.T) {
	s := newTestServer(t, &MockEphemeris{})

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{"clock drops seconds", "", time.Date(2024, 3, 20, 3, 6, 0, 0, time.UTC)},
		{"explicit date", "1999-12-31 23:59", time.Date(1999, 12, 31, 23, 59, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, text, err := s.resolveDate(tt.text)
			if err != nil {
				t.Fatalf("resolveDate() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("resolveDate() = %v, want %v", got, tt.want)
			}
			if text != datectl.Format(tt.want) {
				t.Errorf("resolveDate() text = %q, want %q", text, datectl.Format(tt.want))
			}
		})
	}

	if _, _, err := s.resolveDate("2024-13-01 00:00"); err == nil {
		t.Error("Expected error for invalid month")
	}
}

func TestAnglesUseMinuteTime(t *testing.T) {
	eph := &MockEphemeris{}
	s := newTestServer(t, eph)
	if _, _, err := s.handleRingAngles(context.Background(), nil, RingAnglesArgs{}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if want := refNow.Truncate(time.Minute); !eph.Last.Equal(want) {
		t.Errorf("Ephemeris evaluated at %v, want %v", eph.Last, want)
	}
}

func TestHandleRingAngles_InvalidDate(t *testing.T) {
	s := newTestServer(t, &MockEphemeris{})
	_, _, err := s.handleRingAngles(context.Background(), nil, RingAnglesArgs{Date: "yesterday"})
	var pe *datectl.DateParseError
	if !errors.As(err, &pe) {
		t.Errorf("Expected DateParseError, got %v", err)
	}
}

func TestHandleRingAngles_EphemerisError(t *testing.T) {
	s := newTestServer(t, &MockEphemeris{Err: ephemeris.ErrOutOfRange})
	_, _, err := s.handleRingAngles(context.Background(), nil, RingAnglesArgs{Date: "2024-06-01 10:30"})
	if !errors.Is(err, ephemeris.ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}
}

func TestHandleShiftDate(t *testing.T) {
	s := newTestServer(t, &MockEphemeris{})

	tests := []struct {
		name string
		args ShiftDateArgs
		want string
	}{
		{"day forward", ShiftDateArgs{Date: "2024-02-28 12:00", Kind: "day", Sign: 1}, "2024-02-29 12:00"},
		{"month back", ShiftDateArgs{Date: "2024-03-15 00:00", Kind: "month", Sign: -1}, "2024-02-15 00:00"},
		{"month overflow", ShiftDateArgs{Date: "2024-01-31 12:00", Kind: "Month", Sign: 1}, "2024-02-29 12:00"},
		{"decade", ShiftDateArgs{Date: "2024-01-01 00:00", Kind: "decade", Sign: 1}, "2034-01-01 00:00"},
		{"zero sign goes back", ShiftDateArgs{Date: "2024-01-01 00:00", Kind: "year"}, "2023-01-01 00:00"},
		{"now", ShiftDateArgs{Kind: "day", Sign: 1}, "2024-03-21 03:06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, result, err := s.handleShiftDate(context.Background(), nil, tt.args)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if result.Date != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, result.Date)
			}
		})
	}
}

func TestHandleShiftDate_InvalidKind(t *testing.T) {
	s := newTestServer(t, &MockEphemeris{})
	_, _, err := s.handleShiftDate(context.Background(), nil, ShiftDateArgs{Kind: "week", Sign: 1})
	if err == nil {
		t.Error("Expected error for invalid kind")
	}
}

func TestHandleRenderDial(t *testing.T) {
	s := newTestServer(t, &MockEphemeris{})

	res, meta, err := s.handleRenderDial(context.Background(), nil, RenderDialArgs{Date: "2024-06-01 10:30", Size: 64})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if meta.Size != 64 || meta.Date != "2024-06-01 10:30" {
		t.Errorf("Unexpected meta %+v", meta)
	}
	if res == nil || len(res.Content) != 1 {
		t.Fatal("Expected one content item")
	}
	img, ok := res.Content[0].(*mcp.ImageContent)
	if !ok {
		t.Fatalf("Expected image content, got %T", res.Content[0])
	}
	if img.MIMEType != "image/png" {
		t.Errorf("Expected image/png, got %s", img.MIMEType)
	}
	decoded, err := png.Decode(bytes.NewReader(img.Data))
	if err != nil {
		t.Fatalf("Expected a valid PNG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 64 || b.Dy() != 64 {
		t.Errorf("Expected 64x64, got %v", b)
	}
}

func TestHandleRenderDial_SizeLimits(t *testing.T) {
	s := newTestServer(t, &MockEphemeris{})

	tests := []struct {
		size    int
		wantErr bool
	}{
		{0, false},
		{MinImageSize - 1, true},
		{MinImageSize, false},
		{MaxImageSize + 1, true},
		{-5, true},
	}
	for _, tt := range tests {
		_, meta, err := s.handleRenderDial(context.Background(), nil, RenderDialArgs{Size: tt.size})
		if (err != nil) != tt.wantErr {
			t.Errorf("size %d: error = %v, wantErr %v", tt.size, err, tt.wantErr)
		}
		if tt.size == 0 && meta.Size != DefaultImageSize {
			t.Errorf("Expected default size %d, got %d", DefaultImageSize, meta.Size)
		}
	}
}

func TestToolsOverInMemoryTransport(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t, &MockEphemeris{Angles: ephemeris.Angles{1, 2, 3, 4, 5, 6, 7}})

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	ss, err := s.mcpServer.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	defer ss.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "orrery-test-client", Version: "0.0.0"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer cs.Close()

	names := map[string]bool{}
	for tool, err := range cs.Tools(ctx, nil) {
		if err != nil {
			t.Fatalf("list tools: %v", err)
		}
		names[tool.Name] = true
	}
	for _, want := range []string{"ring_angles", "shift_date", "render_dial"} {
		if !names[want] {
			t.Errorf("Expected tool %s to be registered", want)
		}
	}

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      "shift_date",
		Arguments: map[string]any{"date": "2024-01-31 12:00", "kind": "month", "sign": 1},
	})
	if err != nil {
		t.Fatalf("call shift_date: %v", err)
	}
	if res.IsError {
		t.Fatalf("shift_date returned a tool error: %+v", res.Content)
	}
}

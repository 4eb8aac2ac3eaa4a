package mcpserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"orrery/internal/datectl"
	"orrery/internal/dial"
	"orrery/internal/ephemeris"
	"orrery/internal/logging"
	"orrery/internal/output"
)

// Image size limits for render_dial, in pixels.
const (
	DefaultImageSize = 512
	MinImageSize     = 16
	MaxImageSize     = 2048
)

// Server exposes the dial's computations as MCP tools.
type Server struct {
	mcpServer *mcp.Server
	eph       ephemeris.Ephemeris
	renderer  *dial.Renderer
	clock     datectl.Clock
	bg        color.Color
	log       logging.Logger

	// the ephemeris and renderer are not safe for concurrent use
	mu sync.Mutex
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
	Background    color.Color
}

// NewServer creates a new MCP server instance.
func NewServer(cfg Config, eph ephemeris.Ephemeris, renderer *dial.Renderer, clock datectl.Clock, log logging.Logger) (*Server, error) {
	if eph == nil || renderer == nil {
		return nil, errors.New("mcpserver: ephemeris and renderer are required")
	}
	if clock == nil {
		clock = datectl.SystemClock{}
	}
	if log == nil {
		log = logging.Noop()
	}
	if cfg.Background == nil {
		cfg.Background = color.White
	}

	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		eph:       eph,
		renderer:  renderer,
		clock:     clock,
		bg:        cfg.Background,
		log:       log.With(logging.String("component", "mcpserver")),
	}
	s.registerTools()
	return s, nil
}

// RingAnglesArgs defines the input for ring_angles tool.
type RingAnglesArgs struct {
	Date   string   `json:"date,omitempty" jsonschema:"UTC date as YYYY-MM-DD HH:MM; empty means now"`
	Bodies []string `json:"bodies,omitempty" jsonschema:"limit the result to these bodies, e.g. moon, mars; empty means all"`
}

// BodyAngle is one ring of the dial.
type BodyAngle struct {
	Body      string  `json:"body" jsonschema:"body name"`
	Longitude float64 `json:"longitude" jsonschema:"geocentric ecliptic longitude in degrees"`
	Sign      string  `json:"sign" jsonschema:"zodiac sign containing the longitude"`
	Position  string  `json:"position" jsonschema:"degrees and minutes within the sign"`
}

// RingAnglesResult defines the output for ring_angles tool.
type RingAnglesResult struct {
	Date   string      `json:"date" jsonschema:"the instant the angles are for"`
	Angles []BodyAngle `json:"angles" jsonschema:"one entry per ring from the Moon outwards"`
}

// ShiftDateArgs defines the input for shift_date tool.
type ShiftDateArgs struct {
	Date string `json:"date,omitempty" jsonschema:"UTC date as YYYY-MM-DD HH:MM; empty means now"`
	Kind string `json:"kind" jsonschema:"unit: day, month, year or decade"`
	Sign int    `json:"sign" jsonschema:"direction: positive moves forward, otherwise backward"`
}

// ShiftDateResult defines the output for shift_date tool.
type ShiftDateResult struct {
	Date string `json:"date" jsonschema:"the shifted date"`
}

// RenderDialArgs defines the input for render_dial tool.
type RenderDialArgs struct {
	Date string `json:"date,omitempty" jsonschema:"UTC date as YYYY-MM-DD HH:MM; empty means now"`
	Size int    `json:"size,omitempty" jsonschema:"image side in pixels, 16 to 2048, default 512"`
}

// RenderDialResult describes the image returned by render_dial.
type RenderDialResult struct {
	Date string `json:"date" jsonschema:"the instant drawn"`
	Size int    `json:"size" jsonschema:"image side in pixels"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "ring_angles",
		Description: "Get the geocentric ecliptic longitude of the Moon, Mercury, Venus, Sun, Mars, Jupiter and Saturn at a UTC date, with the zodiac sign of each.",
	}, s.handleRingAngles)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "shift_date",
		Description: "Move a UTC date by one day, month, year or decade using calendar arithmetic, exactly as the dial's shift buttons do.",
	}, s.handleShiftDate)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "render_dial",
		Description: "Draw the dial for a UTC date and return it as a PNG image. Each ring is rotated so its marker points at the body's longitude.",
	}, s.handleRenderDial)
}

// resolveDate parses text, or reads the clock when text is empty. Seconds
// are dropped either way so results match the dial's display.
func (s *Server) resolveDate(text string) (time.Time, string, error) {
	var t time.Time
	if text == "" {
		t = s.clock.Now().UTC()
	} else {
		var err error
		if t, err = datectl.Parse(text); err != nil {
			return time.Time{}, "", err
		}
	}
	t = t.Truncate(time.Minute)
	return t, datectl.Format(t), nil
}

func (s *Server) angles(text string) (string, ephemeris.Angles, error) {
	t, date, err := s.resolveDate(text)
	if err != nil {
		return "", ephemeris.Angles{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	angles, err := s.eph.Longitudes(t)
	if err != nil {
		return "", ephemeris.Angles{}, fmt.Errorf("ephemeris: %w", err)
	}
	return date, angles, nil
}

func (s *Server) handleRingAngles(ctx context.Context, _ *mcp.CallToolRequest, args RingAnglesArgs) (*mcp.CallToolResult, RingAnglesResult, error) {
	bodies := ephemeris.Bodies[:]
	if len(args.Bodies) > 0 {
		bodies = nil
		for _, name := range args.Bodies {
			b, err := ephemeris.ParseBody(name)
			if err != nil {
				return nil, RingAnglesResult{}, err
			}
			bodies = append(bodies, b)
		}
	}

	date, angles, err := s.angles(args.Date)
	if err != nil {
		return nil, RingAnglesResult{}, err
	}

	res := RingAnglesResult{Date: date}
	for _, b := range bodies {
		lon := ephemeris.Normalize(angles[b])
		sign, within := output.Zodiac(lon)
		res.Angles = append(res.Angles, BodyAngle{
			Body:      b.String(),
			Longitude: lon,
			Sign:      sign,
			Position:  output.DMS(within),
		})
	}
	s.log.Debug("ring_angles", logging.String("date", date))
	return nil, res, nil
}

func (s *Server) handleShiftDate(ctx context.Context, _ *mcp.CallToolRequest, args ShiftDateArgs) (*mcp.CallToolResult, ShiftDateResult, error) {
	kind, err := datectl.ParseShiftKind(args.Kind)
	if err != nil {
		return nil, ShiftDateResult{}, err
	}
	t, _, err := s.resolveDate(args.Date)
	if err != nil {
		return nil, ShiftDateResult{}, err
	}

	shifted := datectl.ShiftRequest{Kind: kind, Sign: args.Sign}.Apply(t)
	return nil, ShiftDateResult{Date: datectl.Format(shifted)}, nil
}

func (s *Server) handleRenderDial(ctx context.Context, _ *mcp.CallToolRequest, args RenderDialArgs) (*mcp.CallToolResult, RenderDialResult, error) {
	size := args.Size
	if size == 0 {
		size = DefaultImageSize
	}
	if size < MinImageSize || size > MaxImageSize {
		return nil, RenderDialResult{}, fmt.Errorf("invalid size: %d (must be %d to %d)", size, MinImageSize, MaxImageSize)
	}

	date, angles, err := s.angles(args.Date)
	if err != nil {
		return nil, RenderDialResult{}, err
	}

	data, err := s.renderPNG(size, angles)
	if err != nil {
		return nil, RenderDialResult{}, err
	}

	s.log.Debug("render_dial", logging.String("date", date), logging.Int("size", size), logging.Int("bytes", len(data)))
	res := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.ImageContent{Data: data, MIMEType: "image/png"},
		},
	}
	return res, RenderDialResult{Date: date, Size: size}, nil
}

func (s *Server) renderPNG(size int, angles ephemeris.Angles) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	surface := dial.NewRasterSurface(size, size, s.bg)
	if err := s.renderer.Redraw(surface, float64(size), float64(size), angles); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, surface.Image()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	s.log.Info("starting orrery MCP server on stdio")
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}

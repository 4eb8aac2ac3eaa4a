package main

import (
	"flag"
	"fmt"
	"os"

	"orrery/internal/assets"
	"orrery/internal/config"
	"orrery/internal/ephemeris"
)

func main() {
	configPath := flag.String("config", "", "YAML config file for the radius table (default $ORRERY_CONFIG)")
	out := flag.String("out", "", "output directory (default: asset_dir from the config)")
	band := flag.Int("band", assets.DefaultGenerateOptions().Band, "ring thickness in pixels")
	ticks := flag.Int("ticks", assets.DefaultGenerateOptions().TickEvery, "degrees between tick marks, 0 for none")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	dir := *out
	if dir == "" {
		dir = cfg.AssetDir
	}

	tex := assets.Generate(cfg.RadiusTable(), assets.GenerateOptions{Band: *band, TickEvery: *ticks})
	if err := assets.Save(dir, tex); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	widths := tex.Widths()
	for _, b := range ephemeris.Bodies {
		fmt.Printf("  %-18s %dpx\n", assets.FileName(b), widths[b])
	}
	fmt.Printf("✓ wrote %d textures to %s\n", len(tex), dir)
}

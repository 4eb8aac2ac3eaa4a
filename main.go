package main

import (
	"flag"
	"fmt"
	"os"

	"orrery/internal/bootstrap"
	"orrery/internal/config"
	"orrery/internal/datectl"
	"orrery/internal/logging"
	"orrery/internal/output"
	"orrery/ui/console"
	"orrery/ui/tui"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default $ORRERY_CONFIG)")
	printOnly := flag.Bool("print", false, "print the ring angles and exit instead of starting the TUI")
	date := flag.String("date", "", "UTC date for -print as YYYY-MM-DD HH:MM (default now)")
	logFile := flag.String("log", "", "append logs to this file (overrides log.file in the config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *logFile != "" {
		cfg = cfg.WithLogFile(*logFile)
	}

	rt, err := bootstrap.SetupWith(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer rt.Close()

	if *printOnly {
		if err := printReport(rt, *date); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			rt.Close()
			os.Exit(1)
		}
		return
	}

	err = tui.Start(tui.Deps{
		Ephemeris: rt.Ephemeris,
		Renderer:  rt.Renderer,
		Config:    rt.Config,
		Logger:    rt.Log,
	})
	if err != nil {
		rt.Log.Error("tui exited", logging.Err(err))
		fmt.Printf("Error running TUI: %v\n", err)
		rt.Close()
		os.Exit(1)
	}
}

func printReport(rt *bootstrap.Runtime, text string) error {
	t := datectl.SystemClock{}.Now()
	if text != "" {
		var err error
		if t, err = datectl.Parse(text); err != nil {
			return err
		}
	}
	angles, err := rt.Ephemeris.Longitudes(t)
	if err != nil {
		return err
	}
	console.Print(os.Stdout, output.BuildReport(t, 0, angles))
	return nil
}

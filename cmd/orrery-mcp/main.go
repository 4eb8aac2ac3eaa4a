package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"orrery/internal/bootstrap"
	"orrery/internal/logging"
	"orrery/internal/mcpserver"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "YAML config file (default $ORRERY_CONFIG)")
	flag.Parse()

	rt, err := bootstrap.Setup(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer rt.Close()

	bg, _ := rt.Config.BackgroundColor()
	srv, err := mcpserver.NewServer(mcpserver.Config{
		ServerName:    "orrery",
		ServerVersion: version,
		Background:    bg,
	}, rt.Ephemeris, rt.Renderer, nil, rt.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		rt.Close()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil && ctx.Err() == nil {
		rt.Log.Error("mcp server stopped", logging.Err(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		rt.Close()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	server := flag.String("server", "", "path to the orrery-mcp binary (default: search ./, ../..)")
	config := flag.String("config", "", "config file passed to the server")
	flag.Parse()

	fmt.Println("🧪 Testing orrery MCP server and tool calling")
	fmt.Println("=============================================")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	serverPath := *server
	if serverPath == "" {
		serverPath = findServerBinary()
	}
	if serverPath == "" {
		log.Fatal("❌ MCP server binary not found. Run: go build -o orrery-mcp ./cmd/orrery-mcp")
	}
	fmt.Println("✅ Test 1: MCP server binary found")

	var args []string
	if *config != "" {
		args = append(args, "-config", *config)
	}
	cmd := exec.Command(serverPath, args...)
	cmd.Stderr = os.Stderr
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "orrery-smoke",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MCP server: %v", err)
	}
	defer session.Close()
	fmt.Println("✅ Test 2: Connected to MCP server")

	fmt.Println("\n✓ Test 3: Listing available tools")
	listResult, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Fatalf("❌ Failed to list tools: %v", err)
	}
	fmt.Printf("  Found %d tools:\n", len(listResult.Tools))
	for _, tool := range listResult.Tools {
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}

	failed := 0
	check := func(n int, name string, args map[string]any, wantImage bool) {
		fmt.Printf("\n✓ Test %d: Testing %s tool\n", n, name)
		res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
		if err != nil {
			fmt.Printf("  ❌ %s failed: %v\n", name, err)
			failed++
			return
		}
		if res.IsError {
			fmt.Printf("  ❌ %s returned a tool error\n", name)
			failed++
		}
		for _, content := range res.Content {
			switch v := content.(type) {
			case *mcp.TextContent:
				preview := v.Text
				if len(preview) > 200 {
					preview = preview[:200] + "..."
				}
				fmt.Printf("    %s\n", preview)
			case *mcp.ImageContent:
				fmt.Printf("    [%s, %d bytes]\n", v.MIMEType, len(v.Data))
				wantImage = false
			default:
				fmt.Printf("    [%T]\n", content)
			}
		}
		if wantImage {
			fmt.Printf("  ❌ %s returned no image\n", name)
			failed++
		}
	}

	check(4, "ring_angles", map[string]any{"date": "2000-01-01 12:00"}, false)
	check(5, "shift_date", map[string]any{"date": "2024-01-31 12:00", "kind": "month", "sign": 1}, false)
	check(6, "render_dial", map[string]any{"date": "2000-01-01 12:00", "size": 128}, true)

	fmt.Println("\n=============================================")
	if failed > 0 {
		fmt.Printf("❌ %d check(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("✅ All MCP tool calling tests complete!")
	fmt.Println("\n💡 To test interactively, run: go run ./cmd/orrery-client ./orrery-mcp")
}

func findServerBinary() string {
	candidates := []string{
		"./orrery-mcp",
		"../../orrery-mcp",
	}
	for _, p := range candidates {
		if abs, err := filepath.Abs(p); err == nil {
			if _, err := os.Stat(abs); err == nil {
				return abs
			}
		}
	}
	return ""
}

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: orrery-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: orrery-client ./orrery-mcp -config orrery.yaml")
		os.Exit(2)
	}

	ctx := context.Background()

	// Start the server as a subprocess
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stderr = os.Stderr
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "orrery-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer session.Close()

	fmt.Println("Connected to orrery MCP server!")
	fmt.Println("Available commands:")
	fmt.Println("  /tools                          - List available tools")
	fmt.Println("  /angles [YYYY-MM-DD HH:MM]      - Ring angles (default now)")
	fmt.Println("  /shift <kind> <sign> [date]     - Shift a date, kind is day|month|year|decade")
	fmt.Println("  /render <file.png> [size] [date] - Save the dial as PNG")
	fmt.Println("  /exit                           - Exit the client")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "/exit":
			fmt.Println("Goodbye!")
			return

		case input == "/tools":
			listTools(ctx, session)

		case strings.HasPrefix(input, "/angles"):
			args := map[string]any{}
			if date := strings.TrimSpace(strings.TrimPrefix(input, "/angles")); date != "" {
				args["date"] = date
			}
			callTool(ctx, session, "ring_angles", args)

		case strings.HasPrefix(input, "/shift"):
			parts := strings.Fields(input)
			if len(parts) < 3 {
				fmt.Println("usage: /shift <kind> <sign> [YYYY-MM-DD HH:MM]")
				continue
			}
			sign, err := strconv.Atoi(parts[2])
			if err != nil {
				fmt.Printf("invalid sign %q\n", parts[2])
				continue
			}
			args := map[string]any{"kind": parts[1], "sign": sign}
			if len(parts) > 3 {
				args["date"] = strings.Join(parts[3:], " ")
			}
			callTool(ctx, session, "shift_date", args)

		case strings.HasPrefix(input, "/render"):
			parts := strings.Fields(input)
			if len(parts) < 2 {
				fmt.Println("usage: /render <file.png> [size] [YYYY-MM-DD HH:MM]")
				continue
			}
			args := map[string]any{}
			if len(parts) > 2 {
				size, err := strconv.Atoi(parts[2])
				if err != nil {
					fmt.Printf("invalid size %q\n", parts[2])
					continue
				}
				args["size"] = size
			}
			if len(parts) > 3 {
				args["date"] = strings.Join(parts[3:], " ")
			}
			renderTo(ctx, session, parts[1], args)

		default:
			fmt.Println("unknown command, try /tools")
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Scanner error: %v", err)
	}
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("Available Tools:")
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			log.Printf("Error listing tools: %v", err)
			return
		}
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Println()
}

func callTool(ctx context.Context, session *mcp.ClientSession, toolName string, args map[string]any) *mcp.CallToolResult {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		log.Printf("Error calling tool: %v", err)
		return nil
	}

	printResult(result)
	return result
}

func renderTo(ctx context.Context, session *mcp.ClientSession, path string, args map[string]any) {
	result := callTool(ctx, session, "render_dial", args)
	if result == nil || result.IsError {
		return
	}
	for _, content := range result.Content {
		if img, ok := content.(*mcp.ImageContent); ok {
			if err := os.WriteFile(path, img.Data, 0o644); err != nil {
				log.Printf("Error writing %s: %v", path, err)
				return
			}
			fmt.Printf("wrote %s (%d bytes)\n\n", path, len(img.Data))
			return
		}
	}
	fmt.Println("no image in result")
}

func printResult(result *mcp.CallToolResult) {
	if result.IsError {
		fmt.Printf("❌ Error: ")
	} else {
		fmt.Printf("✅ Result: ")
	}

	for _, content := range result.Content {
		switch v := content.(type) {
		case *mcp.TextContent:
			fmt.Println(v.Text)
		case *mcp.ImageContent:
			fmt.Printf("[%s image, %d bytes]\n", v.MIMEType, len(v.Data))
		default:
			jsonData, err := json.MarshalIndent(content, "", "  ")
			if err != nil {
				fmt.Printf("%+v\n", content)
			} else {
				fmt.Println(string(jsonData))
			}
		}
	}
	fmt.Println()
}

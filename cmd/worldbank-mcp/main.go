package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/worldbank-docs-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("worldbank-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("worldbank-mcp - MCP server for the World Bank Documents & Reports API")
			fmt.Println()
			fmt.Println("Usage: worldbank-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  WORLDBANK_MCP_API_URL=<url>      Override the upstream API base URL")
			fmt.Println("  WORLDBANK_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	apiURL := os.Getenv("WORLDBANK_MCP_API_URL")

	if os.Getenv("WORLDBANK_MCP_LOG_LEVEL") == "debug" {
		log.Printf("World Bank MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		if apiURL != "" {
			log.Printf("Using API base URL override: %s", apiURL)
		}
	}

	srv := server.New(Version, apiURL)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

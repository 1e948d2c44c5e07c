package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/game-result-mcp/internal/config"
	"github.com/ironsheep/game-result-mcp/internal/server"
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
			fmt.Printf("game-result-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("game-result-mcp - MCP server that reads player ranking, scores and turn order from game result screenshots")
			fmt.Println()
			fmt.Println("Usage: game-result-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  GAMERESULT_CONFIG_FILE=path         YAML or JSON config file")
			fmt.Println("  GAMERESULT_ROSTER_PLAYERS=a,b,c     Known player ids")
			fmt.Println("  GAMERESULT_ROSTER_CUTOFF=0.6        Fuzzy match cutoff")
			fmt.Println("  GAMERESULT_OCR_LANGUAGE=eng         Tesseract language")
			fmt.Println("  GAMERESULT_LOG_LEVEL=debug          Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	if cfg.Debug() {
		log.Printf("Game Result MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("roster: %v, cutoff %v", cfg.Players(), cfg.Roster.Cutoff)
	}

	srv := server.New(server.Options{
		Extract: cfg.Extract(),
		OCR:     cfg.OCROptions(),
		Debug:   cfg.Debug(),
	})
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

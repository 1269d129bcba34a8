// Command demoserver starts the stub scanning service used to try compliscan
// without a real scanner.
// Usage: go run ./cmd/demoserver [port]
// Default port: 8081 (demoserver.port)
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/raysh454/compliscan/internal/config"
	"github.com/raysh454/compliscan/internal/demoserver"
	"github.com/raysh454/compliscan/internal/logging"
)

func main() {
	cfg, err := config.Load(os.Getenv("COMPLISCAN_CONFIG"))
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}

	// Optional: custom port from command line
	if len(os.Args) > 1 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil || port < 1 || port > 65535 {
			log.Fatalf("Invalid port: %s", os.Args[1])
		}
		cfg.DemoServer.Port = port
	}

	logger := logging.NewZapLogger(cfg.Logger)
	defer logger.Sync()

	fmt.Println("===========================================")
	fmt.Println("   Compliscan Demo Scanning Service")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Answers POST /api/analyze with canned results.")
	fmt.Println("The target host picks the scenario:")
	for _, sc := range demoserver.GetAllScenarios() {
		fmt.Printf("  - %-8s %s\n", sc.Name, sc.Description)
	}
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := demoserver.NewDemoServer(cfg.DemoServer, logger)
	if err := server.Start(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// Command compliscan scans a site through the compliance scanning service and
// renders the report in the terminal or in a browser.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/raysh454/compliscan/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

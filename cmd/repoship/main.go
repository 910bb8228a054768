package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/repoship/repoship/internal/config"
)

// Version information - injected at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// A .env next to the project is a convenient place for REPOSHIP_TOKEN;
	// a missing file is not an error
	_ = godotenv.Load()

	versionInfo := config.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	app := NewDefaultApp(versionInfo)

	if err := app.Config.ParseFlags(); err != nil {
		_, _ = fmt.Fprintf(app.Stderr, "❌ Error: %v\n", err)
		app.exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig := <-c
		fmt.Printf("\nReceived signal %v, stopping repoship...\n", sig)

		cancel()

		// Give the publication sequence a moment to notice the cancelled
		// context before forcing termination
		time.Sleep(5 * time.Second)

		select {
		case <-ctx.Done():
			return
		default:
			app.CleanupOnSignal()
			app.exit(1)
		}
	}()

	if err := app.Run(ctx); err != nil {
		_, _ = fmt.Fprintf(app.Stderr, "❌ Error: %v\n", err)
		_ = app.Close()
		app.exit(1)
	}

	// Print summary only after a real publication run, not for -logo or -version
	if !app.Config.ShowLogo && !app.Config.Version && app.Publisher != nil {
		app.Publisher.PrintSummary()
	}
	_ = app.Close()
}

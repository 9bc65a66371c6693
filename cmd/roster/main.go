package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/five82/roster/internal/app"
)

// listFlag collects a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env is normal.
	_ = godotenv.Load()

	var filters, genders listFlag
	configPath := flag.String("config", "", "config file path (optional, defaults to ~/.config/roster/config.toml)")
	fixture := flag.String("fixture", "", "user fixture JSON (optional, defaults to the built-in users)")
	plain := flag.Bool("plain", false, "print the page as text instead of starting the TUI")
	sortOrder := flag.String("sort", "", "sort by age: asc or desc")
	page := flag.Int("page", 0, "page to show (1-based)")
	size := flag.Int("size", 0, "rows per page")
	flag.Var(&filters, "filter", "column=value search filter (repeatable)")
	flag.Var(&genders, "gender", "gender option to include (repeatable)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Fixture:    *fixture,
		PageSize:   *size,
		Plain:      *plain,
		View: app.ViewFlags{
			Filters: filters,
			Genders: genders,
			Sort:    *sortOrder,
			Page:    *page,
		},
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		return 1
	}
	return 0
}

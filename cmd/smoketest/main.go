package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mlahtinen/liftplan/internal/e2etest"
	"github.com/mlahtinen/liftplan/internal/logging"
	"github.com/mlahtinen/liftplan/internal/testhelpers"
)

// TestProfileFlow exercises the core user journey: create a profile, generate a
// program, and view the rehab rotation.
func TestProfileFlow(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()

	doc, err := client.CreateProfile(ctx, fmt.Sprintf("smoketest-%d", time.Now().UnixNano()))
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	if doc, err = client.GetDoc(ctx, "/program"); err != nil {
		return fmt.Errorf("get program page: %w", err)
	}
	if doc, err = client.SubmitForm(ctx, doc, "/program/generate", nil); err != nil {
		return fmt.Errorf("generate program: %w", err)
	}
	if doc.Find("section.session").Length() == 0 {
		return fmt.Errorf("generated program has no sessions")
	}
	if doc, err = client.GetDoc(ctx, "/rehab"); err != nil {
		return fmt.Errorf("get rehab page: %w", err)
	}
	if doc.Find(".rehab-list input[type='checkbox']").Length() == 0 {
		return fmt.Errorf("rehab rotation is empty")
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestProfileFlow(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing profile flow", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}

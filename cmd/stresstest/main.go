package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/mlahtinen/liftplan/internal/e2etest"
	"github.com/mlahtinen/liftplan/internal/logging"
	"github.com/mlahtinen/liftplan/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const (
	scenarioTimeout         = 30 * time.Second
	maxConcurrentProfiles   = 10
	maxConcurrentOperations = 20
	regenerationRounds      = 5
	successRateThreshold    = 95.0
	expectedArgsCount       = 2
	percentageMultiplier    = 100
)

// profileSession holds a client whose session has a selected profile.
type profileSession struct {
	client *e2etest.Client
	name   string
}

// setupProfile creates a client with its own session and a fresh profile.
func setupProfile(ctx context.Context, serverURL string, index int) (*profileSession, error) {
	client, err := e2etest.NewClient(serverURL)
	if err != nil {
		return nil, fmt.Errorf("creating client for profile %d: %w", index, err)
	}

	name := fmt.Sprintf("stress-%d-%d", index, time.Now().UnixNano())
	if _, err = client.CreateProfile(ctx, name); err != nil {
		return nil, fmt.Errorf("creating profile %d: %w", index, err)
	}

	return &profileSession{client: client, name: name}, nil
}

// setupProfiles creates numProfiles concurrent sessions with bounded parallelism.
func setupProfiles(ctx context.Context, serverURL string, numProfiles int, logger *slog.Logger) ([]*profileSession, error) {
	logger.LogAttrs(ctx, slog.LevelInfo, "creating profiles", slog.Int("num_profiles", numProfiles))

	sessions := make([]*profileSession, numProfiles)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentProfiles)

	for i := range numProfiles {
		g.Go(func() error {
			session, err := setupProfile(gctx, serverURL, i)
			if err != nil {
				return err
			}
			sessions[i] = session
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("setup profiles: %w", err)
	}
	return sessions, nil
}

// runScenario drives one profile through the preference, generation, and rehab
// endpoints so the server sees a realistic write-heavy workload.
func runScenario(ctx context.Context, session *profileSession) error {
	ctx, cancel := context.WithTimeout(ctx, scenarioTimeout)
	defer cancel()
	client := session.client

	doc, err := client.GetDoc(ctx, "/preferences")
	if err != nil {
		return fmt.Errorf("get preferences: %w", err)
	}
	if doc, err = client.SubmitForm(ctx, doc, "/preferences", map[string]string{
		"Training days":    "4",
		"Session duration": "60",
	}); err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	if _, err = client.SubmitForm(ctx, doc, "/preferences/equipment", map[string]string{
		"Equipment name": "barbell",
	}); err != nil {
		return fmt.Errorf("add equipment: %w", err)
	}

	if doc, err = client.GetDoc(ctx, "/program"); err != nil {
		return fmt.Errorf("get program: %w", err)
	}
	if doc, err = client.SubmitForm(ctx, doc, "/program/generate", nil); err != nil {
		return fmt.Errorf("generate program: %w", err)
	}
	if doc.Find("section.session").Length() == 0 {
		return fmt.Errorf("program for %s has no sessions", session.name)
	}

	for range regenerationRounds {
		if doc, err = client.SubmitForm(ctx, doc, "/program/regenerate", nil); err != nil {
			return fmt.Errorf("regenerate program: %w", err)
		}
	}

	if doc, err = client.GetDoc(ctx, "/rehab"); err != nil {
		return fmt.Errorf("get rehab: %w", err)
	}
	name, ok := doc.Find(".rehab-list input[type='checkbox']").First().Attr("value")
	if !ok {
		return fmt.Errorf("rehab rotation for %s is empty", session.name)
	}
	resp, err := client.PostForm(ctx, "/rehab/done", url.Values{"done": {name}})
	if err != nil {
		return fmt.Errorf("mark rehab done: %w", err)
	}
	_ = resp.Body.Close()

	return nil
}

func run(ctx context.Context, serverURL string, numProfiles int, logger *slog.Logger) error {
	start := time.Now()

	sessions, err := setupProfiles(ctx, serverURL, numProfiles, logger)
	if err != nil {
		return err
	}

	var succeeded atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentOperations)

	for _, session := range sessions {
		g.Go(func() error {
			if scenarioErr := runScenario(gctx, session); scenarioErr != nil {
				logger.LogAttrs(gctx, slog.LevelWarn, "scenario failed",
					slog.String("profile", session.name), slog.Any("error", scenarioErr))
				// Individual failures count against the success rate instead of aborting the run.
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return fmt.Errorf("run scenarios: %w", err)
	}

	successRate := float64(succeeded.Load()) / float64(numProfiles) * percentageMultiplier
	logger.LogAttrs(ctx, slog.LevelInfo, "stress test finished",
		slog.Int("profiles", numProfiles),
		slog.Int64("succeeded", succeeded.Load()),
		slog.Float64("success_rate", successRate),
		slog.Duration("duration", time.Since(start)))

	if successRate < successRateThreshold {
		return fmt.Errorf("success rate %.1f%% below threshold %.1f%%", successRate, successRateThreshold)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) < expectedArgsCount {
		logger.LogAttrs(ctx, slog.LevelError, "usage: stresstest <hostname> [num_profiles]")
		os.Exit(1)
	}

	hostname := os.Args[1]
	numProfiles := 50
	if len(os.Args) > expectedArgsCount {
		var err error
		if numProfiles, err = strconv.Atoi(os.Args[2]); err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "invalid profile count", slog.Any("error", err))
			os.Exit(1)
		}
	}

	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	serverURL := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		serverURL = "http://" + hostname
	}

	client, err := e2etest.NewClient(serverURL)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	if err = run(ctx, serverURL, numProfiles, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "stress test failed", slog.Any("error", err))
		os.Exit(1)
	}
}

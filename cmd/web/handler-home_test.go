package main

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func Test_application_home(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	t.Run("Shows profile selection by default", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/")
		if err != nil {
			t.Fatalf("Failed to get home: %v", err)
		}
		if got, want := doc.Find("h2").First().Text(), "Choose a profile"; got != want {
			t.Errorf("Expected heading %q, got %q", want, got)
		}
	})

	t.Run("Creating a profile selects it", func(t *testing.T) {
		doc, err := client.CreateProfile(ctx, "Alice")
		if err != nil {
			t.Fatalf("Failed to create profile: %v", err)
		}
		heading := doc.Find("h2").First().Text()
		if !strings.Contains(heading, "Alice") {
			t.Errorf("Expected heading to contain profile name, got %q", heading)
		}
	})

	t.Run("Switching returns to selection with the profile listed", func(t *testing.T) {
		doc, err := client.SwitchProfile(ctx)
		if err != nil {
			t.Fatalf("Failed to switch profile: %v", err)
		}
		if got, want := doc.Find("h2").First().Text(), "Choose a profile"; got != want {
			t.Errorf("Expected heading %q, got %q", want, got)
		}

		found := false
		doc.Find(".profile-list button").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if strings.TrimSpace(s.Text()) == "Alice" {
				found = true
				return false
			}
			return true
		})
		if !found {
			t.Error("Expected profile list to contain Alice")
		}
	})
}

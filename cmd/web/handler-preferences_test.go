package main

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func Test_application_preferences(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	selectedValue := func(doc *goquery.Document, id string) string {
		t.Helper()
		value, _ := doc.Find("select#" + id + " option[selected]").Attr("value")
		return value
	}

	t.Run("Requires a selected profile", func(t *testing.T) {
		resp, err := client.Get(ctx, "/preferences")
		if err != nil {
			t.Fatalf("Failed to get preferences: %v", err)
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		if got, want := resp.Request.URL.Path, "/"; got != want {
			t.Errorf("Expected redirect to %q, got %q", want, got)
		}
	})

	t.Run("Shows default schedule", func(t *testing.T) {
		if _, err := client.CreateProfile(ctx, "Bob"); err != nil {
			t.Fatalf("Failed to create profile: %v", err)
		}

		doc, err := client.GetDoc(ctx, "/preferences")
		if err != nil {
			t.Fatalf("Failed to get preferences: %v", err)
		}

		if got, want := selectedValue(doc, "days_per_week"), "3"; got != want {
			t.Errorf("Expected default training days %q, got %q", want, got)
		}
		if got, want := selectedValue(doc, "minutes_per_session"), "60"; got != want {
			t.Errorf("Expected default session duration %q, got %q", want, got)
		}
	})

	t.Run("Can update the schedule", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/preferences")
		if err != nil {
			t.Fatalf("Failed to get preferences: %v", err)
		}

		doc, err = client.SubmitForm(ctx, doc, "/preferences", map[string]string{
			"Training days":    "4",
			"Session duration": "90",
		})
		if err != nil {
			t.Fatalf("Failed to submit schedule: %v", err)
		}

		if got, want := selectedValue(doc, "days_per_week"), "4"; got != want {
			t.Errorf("Expected training days %q, got %q", want, got)
		}
		if got, want := selectedValue(doc, "minutes_per_session"), "90"; got != want {
			t.Errorf("Expected session duration %q, got %q", want, got)
		}
	})

	t.Run("Can add equipment", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/preferences")
		if err != nil {
			t.Fatalf("Failed to get preferences: %v", err)
		}

		doc, err = client.SubmitForm(ctx, doc, "/preferences/equipment", map[string]string{
			"Equipment name": "barbell",
		})
		if err != nil {
			t.Fatalf("Failed to add equipment: %v", err)
		}

		if !strings.Contains(doc.Find(".equipment-list").Text(), "barbell") {
			t.Error("Expected equipment list to contain barbell")
		}
	})

	t.Run("Can add a health condition", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/preferences")
		if err != nil {
			t.Fatalf("Failed to get preferences: %v", err)
		}

		doc, err = client.SubmitForm(ctx, doc, "/preferences/conditions", map[string]string{
			"Body zone":  "knee",
			"Diagnosis":  "Jumper's knee",
			"Pain level": "6",
		})
		if err != nil {
			t.Fatalf("Failed to add condition: %v", err)
		}

		conditions := doc.Find(".condition-list").Text()
		if !strings.Contains(conditions, "Jumper's knee") {
			t.Error("Expected condition list to contain the diagnosis")
		}
		if !strings.Contains(conditions, "pain 6/10") {
			t.Error("Expected condition list to show the pain level")
		}
	})
}

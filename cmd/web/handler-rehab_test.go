package main

import (
	"net/url"
	"strings"
	"testing"
)

func Test_application_rehab(t *testing.T) {
	ctx := t.Context()
	server := startTestServer(t)
	client := server.Client()

	if _, err := client.CreateProfile(ctx, "Dana"); err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	doc, err := client.GetDoc(ctx, "/rehab")
	if err != nil {
		t.Fatalf("Failed to get rehab rotation: %v", err)
	}

	checkboxes := doc.Find(".rehab-list input[type='checkbox']")
	if got, want := checkboxes.Length(), 5; got != want {
		t.Fatalf("Expected %d rehab exercises, got %d", want, got)
	}

	first, ok := checkboxes.First().Attr("value")
	if !ok || first == "" {
		t.Fatal("Expected rehab checkbox to carry the exercise name")
	}

	// Submitting with nothing checked is a no-op.
	if _, err = client.SubmitForm(ctx, doc, "/rehab/done", nil); err != nil {
		t.Fatalf("Failed to submit rehab without selection: %v", err)
	}

	// SubmitForm only handles labeled fields, so post the checkbox value directly.
	resp, err := client.PostForm(ctx, "/rehab/done", url.Values{"done": {first}})
	if err != nil {
		t.Fatalf("Failed to mark rehab done: %v", err)
	}
	_ = resp.Body.Close()

	doc, err = client.GetDoc(ctx, "/rehab")
	if err != nil {
		t.Fatalf("Failed to get rehab rotation after marking done: %v", err)
	}

	if strings.Contains(doc.Find(".rehab-list").Text(), first) {
		t.Errorf("Expected %q to rotate out after being marked done", first)
	}
}

package services

import (
	"strings"
	"testing"
)

func TestValidSessionID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"short", false},
		{"abcd1234", true},
		{strings.Repeat("a", 128), true},
		{strings.Repeat("a", 129), false},
		// 128 multibyte characters are 384 bytes; the bound is on characters
		{strings.Repeat("日", 128), true},
	}
	for _, tc := range cases {
		if got := ValidSessionID(tc.in); got != tc.want {
			t.Fatalf("unexpected result for %q: got=%v want=%v", tc.in, got, tc.want)
		}
	}
}

func TestValidResourceURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"https://example.org/help", true},
		{"http://example.org", true},
		{"ftp://example.org", false},
		{"example.org", false},
		{"", false},
		{"https://", false},
	}
	for _, tc := range cases {
		if got := ValidResourceURL(tc.in); got != tc.want {
			t.Fatalf("unexpected result for %q: got=%v want=%v", tc.in, got, tc.want)
		}
	}
}

func TestAssessmentInputValidate(t *testing.T) {
	t.Parallel()

	score := 101
	in := AssessmentInput{SessionID: "abcd1234", Type: "anxiety", Score: &score}
	details := in.Validate()
	if _, ok := details["score"]; !ok {
		t.Fatalf("expected score violation, got details=%v", details)
	}

	score = 50
	in.Score = &score
	if details := in.Validate(); len(details) != 0 {
		t.Fatalf("expected clean validation, got details=%v", details)
	}

	in.Score = nil
	if _, ok := in.Validate()["score"]; !ok {
		t.Fatalf("missing score must be rejected")
	}
}

func TestMoodCheckinInputValidate(t *testing.T) {
	t.Parallel()

	in := MoodCheckinInput{SessionID: "abcd1234", Mood: "ok"}
	if _, ok := in.Validate()["mood"]; !ok {
		t.Fatalf("mood outside the enum must be rejected")
	}

	in.Mood = "good"
	in.Notes = strings.Repeat("x", 501)
	if _, ok := in.Validate()["notes"]; !ok {
		t.Fatalf("notes over 500 characters must be rejected")
	}

	in.Notes = strings.Repeat("x", 500)
	if details := in.Validate(); len(details) != 0 {
		t.Fatalf("expected clean validation, got details=%v", details)
	}

	in.Notes = strings.Repeat("日", 500)
	if details := in.Validate(); len(details) != 0 {
		t.Fatalf("500 multibyte characters must pass, got details=%v", details)
	}
}

func TestSupportResourceInputCountsTitleCharacters(t *testing.T) {
	t.Parallel()

	in := SupportResourceInput{
		Category: "wellbeing",
		Title:    strings.Repeat("心", 100),
		URL:      "https://example.org/help",
	}
	if details := in.Validate(); len(details) != 0 {
		t.Fatalf("100 multibyte characters must pass, got details=%v", details)
	}

	in.Title = strings.Repeat("心", 101)
	if _, ok := in.Validate()["title"]; !ok {
		t.Fatalf("title over 100 characters must be rejected")
	}
}

func TestRiskAnswerInputValidate(t *testing.T) {
	t.Parallel()

	answer := 0
	in := RiskAnswerInput{Question: "sleep?", Answer: &answer, UserID: "u1"}
	if _, ok := in.Validate()["answer"]; !ok {
		t.Fatalf("answer below 1 must be rejected")
	}
	answer = 5
	if details := in.Validate(); len(details) != 0 {
		t.Fatalf("expected clean validation, got details=%v", details)
	}
}

package scoring

import (
	"strings"
	"testing"

	"github.com/pthm/postcheck/internal/features"
	"github.com/pthm/postcheck/internal/heuristic"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	profile, err := heuristic.Load("default")
	if err != nil {
		t.Fatalf("failed to load default profile: %v", err)
	}
	return NewEngine(profile)
}

func (e *Engine) extractForTest(text string) features.Features {
	return features.Extract(text, false, "", false, e.profile.SuspiciousDomains)
}

func TestAnalyzeSafety_Clean(t *testing.T) {
	e := newTestEngine(t)

	score, penalties, warnings := e.analyzeSafety("a perfectly nice post", e.extractForTest("a perfectly nice post"))

	if score != 100 {
		t.Errorf("score = %v, want 100", score)
	}
	if len(penalties) != 0 || len(warnings) != 0 {
		t.Errorf("penalties = %v, warnings = %v, want none", penalties, warnings)
	}
}

func TestAnalyzeSafety_Toxicity(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name         string
		text         string
		wantScore    float64
		wantSeverity Severity
	}{
		{"two matches stay high severity", "that was stupid and pathetic", 70, SeverityHigh},
		{"four matches turn critical", "hate stupid idiot dumb", 40, SeverityCritical},
		{"penalty capped at 60", "hate stupid idiot dumb trash garbage", 40, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, penalties, warnings := e.analyzeSafety(tt.text, e.extractForTest(tt.text))

			if score != tt.wantScore {
				t.Errorf("score = %v, want %v", score, tt.wantScore)
			}
			if len(penalties) != 1 {
				t.Fatalf("penalties = %d, want 1", len(penalties))
			}
			p := penalties[0]
			if p.Kind != "HIGH_TOXICITY" {
				t.Errorf("Kind = %q, want HIGH_TOXICITY", p.Kind)
			}
			if p.Severity != tt.wantSeverity {
				t.Errorf("Severity = %v, want %v", p.Severity, tt.wantSeverity)
			}
			if len(warnings) != 1 {
				t.Errorf("warnings = %d, want 1", len(warnings))
			}
		})
	}
}

func TestAnalyzeSafety_Spam(t *testing.T) {
	e := newTestEngine(t)

	t.Run("single indicator", func(t *testing.T) {
		score, penalties, _ := e.analyzeSafety("click here for details", e.extractForTest("click here for details"))
		if score != 80 {
			t.Errorf("score = %v, want 80", score)
		}
		if len(penalties) != 1 || penalties[0].Kind != "HIGH_SPAMMY_CONTENT" {
			t.Fatalf("penalties = %+v, want one HIGH_SPAMMY_CONTENT", penalties)
		}
		if penalties[0].Severity != SeverityHigh {
			t.Errorf("Severity = %v, want HIGH", penalties[0].Severity)
		}
	})

	t.Run("three indicators turn critical", func(t *testing.T) {
		text := "buy now, act now, click here"
		score, penalties, _ := e.analyzeSafety(text, e.extractForTest(text))
		if score != 40 {
			t.Errorf("score = %v, want 40", score)
		}
		if penalties[0].Severity != SeverityCritical {
			t.Errorf("Severity = %v, want CRITICAL", penalties[0].Severity)
		}
	})
}

func TestAnalyzeSafety_NSFW(t *testing.T) {
	e := newTestEngine(t)

	score, penalties, _ := e.analyzeSafety("this one is nsfw", e.extractForTest("this one is nsfw"))

	if score != 50 {
		t.Errorf("score = %v, want 50", score)
	}
	if len(penalties) != 1 {
		t.Fatalf("penalties = %d, want 1", len(penalties))
	}
	if penalties[0].Kind != "NSFW_CONTENT" {
		t.Errorf("Kind = %q, want NSFW_CONTENT", penalties[0].Kind)
	}
	if penalties[0].Severity != SeverityCritical {
		t.Errorf("Severity = %v, want CRITICAL (always)", penalties[0].Severity)
	}
	if penalties[0].Impact != -50 {
		t.Errorf("Impact = %v, want -50 (fixed)", penalties[0].Impact)
	}
}

func TestAnalyzeSafety_SuspiciousURL(t *testing.T) {
	e := newTestEngine(t)

	text := "check this out https://bit.ly/123abc"
	score, penalties, warnings := e.analyzeSafety(text, e.extractForTest(text))

	if score != 60 {
		t.Errorf("score = %v, want 60", score)
	}
	if len(penalties) != 1 {
		t.Fatalf("penalties = %d, want 1", len(penalties))
	}
	p := penalties[0]
	if p.Kind != "UNTRUSTED_URL" {
		t.Errorf("Kind = %q, want UNTRUSTED_URL", p.Kind)
	}
	if p.Impact != -40 {
		t.Errorf("Impact = %v, want exactly -40", p.Impact)
	}
	if p.Severity != SeverityHigh {
		t.Errorf("Severity = %v, want HIGH", p.Severity)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "Suspicious URLs") {
		t.Errorf("warnings = %v, want one suspicious-URL warning", warnings)
	}
}

func TestAnalyzeSafety_PenaltiesStackAndFloorAtZero(t *testing.T) {
	e := newTestEngine(t)

	text := "hate stupid idiot dumb click here buy now act now nsfw"
	score, penalties, warnings := e.analyzeSafety(text, e.extractForTest(text))

	if score != 0 {
		t.Errorf("score = %v, want 0 (floored)", score)
	}

	wantKinds := []string{"HIGH_TOXICITY", "HIGH_SPAMMY_CONTENT", "NSFW_CONTENT"}
	if len(penalties) != len(wantKinds) {
		t.Fatalf("penalties = %d, want %d", len(penalties), len(wantKinds))
	}
	for i, kind := range wantKinds {
		if penalties[i].Kind != kind {
			t.Errorf("penalties[%d].Kind = %q, want %q (detector order)", i, penalties[i].Kind, kind)
		}
	}
	if len(warnings) != 3 {
		t.Errorf("warnings = %d, want 3", len(warnings))
	}
}

func TestAnalyzeSafety_DetailsTruncatedToDistinct(t *testing.T) {
	e := newTestEngine(t)

	text := "stupid stupid stupid hate dumb trash"
	_, penalties, _ := e.analyzeSafety(text, e.extractForTest(text))

	if len(penalties) != 1 {
		t.Fatalf("penalties = %d, want 1", len(penalties))
	}
	want := "Matched: stupid, hate, dumb"
	if penalties[0].Details != want {
		t.Errorf("Details = %q, want %q (first 3 distinct, in order)", penalties[0].Details, want)
	}
}

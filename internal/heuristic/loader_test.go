package heuristic

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Default(t *testing.T) {
	profile, err := Load("default")
	if err != nil {
		t.Fatalf("Load(default) returned error: %v", err)
	}

	if profile.Name != "default" {
		t.Errorf("Name = %q, want %q", profile.Name, "default")
	}

	th := profile.Thresholds
	if th.OptimalLengthMin != 50 || th.OptimalLengthMax != 280 {
		t.Errorf("optimal length = %d-%d, want 50-280", th.OptimalLengthMin, th.OptimalLengthMax)
	}
	if th.SweetSpotMin != 100 || th.SweetSpotMax != 200 {
		t.Errorf("sweet spot = %d-%d, want 100-200", th.SweetSpotMin, th.SweetSpotMax)
	}
	if th.MaxCapsRatio != 0.3 || th.RecommendedCapsRatio != 0.1 {
		t.Errorf("caps ratios = %v/%v, want 0.3/0.1", th.MaxCapsRatio, th.RecommendedCapsRatio)
	}

	if len(profile.ToxicityPatterns()) == 0 {
		t.Error("toxicity patterns not compiled")
	}
	if len(profile.SpamPatterns()) == 0 {
		t.Error("spam patterns not compiled")
	}
	if len(profile.NSFWPatterns()) == 0 {
		t.Error("nsfw patterns not compiled")
	}
	if len(profile.SuspiciousDomains) == 0 {
		t.Error("suspicious domains missing")
	}
}

func TestLoad_Unknown(t *testing.T) {
	if _, err := Load("definitely-not-a-profile"); err == nil {
		t.Error("Load(unknown) should return an error")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := `name: custom
patterns:
  toxicity:
    - '\bawful\b'
  spam:
    - 'subscribe now'
  nsfw:
    - '\bexplicit\b'
suspicious_domains:
  - sketchy.example
thresholds:
  optimal_length_min: 40
  optimal_length_max: 300
  sweet_spot_min: 90
  sweet_spot_max: 210
  max_caps_ratio: 0.25
  recommended_caps_ratio: 0.05
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write profile: %v", err)
	}

	profile, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile returned error: %v", err)
	}

	if profile.Name != "custom" {
		t.Errorf("Name = %q, want %q", profile.Name, "custom")
	}
	if profile.Thresholds.OptimalLengthMin != 40 {
		t.Errorf("OptimalLengthMin = %d, want 40", profile.Thresholds.OptimalLengthMin)
	}
	if len(profile.ToxicityPatterns()) != 1 {
		t.Errorf("toxicity patterns = %d, want 1", len(profile.ToxicityPatterns()))
	}
	if !profile.ToxicityPatterns()[0].MatchString("AWFUL") {
		t.Error("custom pattern should be case-insensitive")
	}
}

func TestLoadFromFile_BadPattern(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	content := `name: bad
patterns:
  toxicity:
    - '([unclosed'
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write profile: %v", err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Error("LoadFromFile with invalid regex should return an error")
	}
}

func TestAvailable(t *testing.T) {
	names := Available()
	found := false
	for _, name := range names {
		if name == "default" {
			found = true
		}
	}
	if !found {
		t.Errorf("Available() = %v, should include default", names)
	}
}

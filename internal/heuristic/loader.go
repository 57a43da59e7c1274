package heuristic

import (
	"embed"
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed configs/*.yaml
var configFS embed.FS

// builtinProfiles maps profile names to their configurations
var builtinProfiles = map[string]*Profile{}

func init() {
	entries, err := configFS.ReadDir("configs")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		data, err := configFS.ReadFile(path.Join("configs", entry.Name()))
		if err != nil {
			continue
		}

		var profile Profile
		if err := yaml.Unmarshal(data, &profile); err != nil {
			continue
		}
		if err := profile.Compile(); err != nil {
			continue
		}

		builtinProfiles[profile.Name] = &profile
	}
}

// Load loads a builtin heuristic profile by name
func Load(name string) (*Profile, error) {
	if profile, ok := builtinProfiles[name]; ok {
		return profile, nil
	}
	return nil, fmt.Errorf("unknown heuristic profile: %s", name)
}

// Available returns the names of all builtin profiles
func Available() []string {
	names := make([]string, 0, len(builtinProfiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}
	return names
}

// LoadFromFile loads a heuristic profile from a YAML file. This lets users
// swap the lexical pattern sets without a rebuild.
func LoadFromFile(filePath string) (*Profile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", filePath, err)
	}
	if err := profile.Compile(); err != nil {
		return nil, fmt.Errorf("invalid pattern in profile %s: %w", filePath, err)
	}

	return &profile, nil
}

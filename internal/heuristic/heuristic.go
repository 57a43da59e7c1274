package heuristic

import "regexp"

// Profile holds the lexical pattern sets and numeric thresholds that drive
// the scoring engine. Profiles are loaded once, compiled, and treated as
// read-only for the lifetime of the engine built from them.
type Profile struct {
	// Name is the identifier for this profile (e.g., "default")
	Name string `yaml:"name"`

	// Patterns are the case-insensitive lexical pattern sets, one per
	// safety detector
	Patterns PatternSets `yaml:"patterns"`

	// SuspiciousDomains are substrings that mark a URL domain as untrusted
	// (short-link hosts and common promo keywords)
	SuspiciousDomains []string `yaml:"suspicious_domains"`

	// Thresholds are the numeric tuning knobs for quality and engagement
	Thresholds Thresholds `yaml:"thresholds"`

	compiled compiledPatterns
}

// PatternSets groups the raw regex strings per safety detector
type PatternSets struct {
	Toxicity []string `yaml:"toxicity"`
	Spam     []string `yaml:"spam"`
	NSFW     []string `yaml:"nsfw"`
}

// Thresholds are the tuning values derived from ranking-algorithm analysis
type Thresholds struct {
	// OptimalLengthMin/Max bracket the acceptable post length
	OptimalLengthMin int `yaml:"optimal_length_min"`
	OptimalLengthMax int `yaml:"optimal_length_max"`

	// SweetSpotMin/Max bracket the length range with peak engagement
	SweetSpotMin int `yaml:"sweet_spot_min"`
	SweetSpotMax int `yaml:"sweet_spot_max"`

	// MaxCapsRatio is the ratio above which capitalization hurts quality
	MaxCapsRatio float64 `yaml:"max_caps_ratio"`

	// RecommendedCapsRatio is the ratio at or below which formatting is
	// considered clean
	RecommendedCapsRatio float64 `yaml:"recommended_caps_ratio"`
}

type compiledPatterns struct {
	toxicity []*regexp.Regexp
	spam     []*regexp.Regexp
	nsfw     []*regexp.Regexp
}

// Compile compiles every pattern set case-insensitively. Must be called
// before the compiled accessors are used; Load and LoadFromFile do this.
func (p *Profile) Compile() error {
	var err error
	if p.compiled.toxicity, err = compileSet(p.Patterns.Toxicity); err != nil {
		return err
	}
	if p.compiled.spam, err = compileSet(p.Patterns.Spam); err != nil {
		return err
	}
	if p.compiled.nsfw, err = compileSet(p.Patterns.NSFW); err != nil {
		return err
	}
	return nil
}

func compileSet(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pat := range patterns {
		re, err := regexp.Compile("(?i)" + pat)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// ToxicityPatterns returns the compiled toxicity pattern set
func (p *Profile) ToxicityPatterns() []*regexp.Regexp { return p.compiled.toxicity }

// SpamPatterns returns the compiled spam pattern set
func (p *Profile) SpamPatterns() []*regexp.Regexp { return p.compiled.spam }

// NSFWPatterns returns the compiled NSFW pattern set
func (p *Profile) NSFWPatterns() []*regexp.Regexp { return p.compiled.nsfw }

// Package features turns raw post text plus caller-supplied context flags
// into the fixed set of measured attributes the scoring engine consumes.
package features

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	urlPattern     = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.-]*://[^\s]+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	hashtagPattern = regexp.MustCompile(`#\w+`)
)

// Features is the full derived attribute set for a single post. It is
// immutable once computed and flat enough to serialize as-is.
type Features struct {
	TextLength      int      `json:"text_length"`
	CharCount       int      `json:"char_count"`
	CapsRatio       float64  `json:"caps_ratio"`
	UpperCount      int      `json:"upper_count"`
	WhitespaceCount int      `json:"whitespace_count"`
	NewlineCount    int      `json:"newline_count"`
	HasQuestion     bool     `json:"has_question"`
	QuestionCount   int      `json:"question_count"`
	URLs            []string `json:"urls"`
	URLCount        int      `json:"url_count"`
	SuspiciousURLs  []string `json:"suspicious_urls"`
	Mentions        []string `json:"mentions"`
	MentionCount    int      `json:"mention_count"`
	Hashtags        []string `json:"hashtags"`
	HashtagCount    int      `json:"hashtag_count"`
	HasMedia        bool     `json:"has_media"`
	MediaType       string   `json:"media_type"`
	IsReply         bool     `json:"is_reply"`
}

// Extract computes all features for the given post text and context flags.
// It is deterministic and never fails: a URL that does not parse is simply
// recorded as suspicious. Regex-derived lists keep first-occurrence order
// and are not deduplicated.
func Extract(text string, hasMedia bool, mediaType string, isReply bool, suspiciousDomains []string) Features {
	var upperCount, charCount, whitespaceCount int
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			whitespaceCount++
		default:
			charCount++
			if unicode.IsUpper(r) {
				upperCount++
			}
		}
	}

	// char_count is the non-whitespace denominator; zero means all-whitespace
	// or empty input, in which case the ratio is defined as 0.
	capsRatio := 0.0
	if charCount > 0 {
		capsRatio = float64(upperCount) / float64(charCount)
	}

	urls := urlPattern.FindAllString(text, -1)
	mentions := mentionPattern.FindAllString(text, -1)
	hashtags := hashtagPattern.FindAllString(text, -1)

	var suspicious []string
	for _, u := range urls {
		if isSuspiciousURL(u, suspiciousDomains) {
			suspicious = append(suspicious, u)
		}
	}

	return Features{
		TextLength:      utf8.RuneCountInString(text),
		CharCount:       charCount,
		CapsRatio:       capsRatio,
		UpperCount:      upperCount,
		WhitespaceCount: whitespaceCount,
		NewlineCount:    strings.Count(text, "\n"),
		HasQuestion:     strings.Contains(text, "?"),
		QuestionCount:   strings.Count(text, "?"),
		URLs:            urls,
		URLCount:        len(urls),
		SuspiciousURLs:  suspicious,
		Mentions:        mentions,
		MentionCount:    len(mentions),
		Hashtags:        hashtags,
		HashtagCount:    len(hashtags),
		HasMedia:        hasMedia,
		MediaType:       mediaType,
		IsReply:         isReply,
	}
}

// isSuspiciousURL reports whether the URL's domain contains any of the
// untrusted substrings. URLs that fail to parse into a scheme+host are
// themselves suspicious.
func isSuspiciousURL(raw string, suspiciousDomains []string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return true
	}

	domain := strings.ToLower(parsed.Host)
	for _, s := range suspiciousDomains {
		if strings.Contains(domain, s) {
			return true
		}
	}
	return false
}

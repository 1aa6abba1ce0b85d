package keyword

import "strings"

// Matcher scans text for a configured set of alert keywords.
type Matcher struct {
	keywords []string
}

// NewMatcher creates a Matcher from the configured keyword list. Keywords are
// lowercased once at construction; blank entries and duplicates are dropped
// while the configured order is preserved.
func NewMatcher(keywords []string) *Matcher {
	seen := make(map[string]bool, len(keywords))
	cleaned := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		cleaned = append(cleaned, kw)
	}
	return &Matcher{keywords: cleaned}
}

// Match returns the keywords contained in text, in configured order.
// The result is never nil.
func (m *Matcher) Match(text string) []string {
	matched := make([]string, 0)
	if text == "" {
		return matched
	}
	lower := strings.ToLower(text)
	for _, kw := range m.keywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// Keywords returns the configured keyword list in order.
func (m *Matcher) Keywords() []string {
	out := make([]string, len(m.keywords))
	copy(out, m.keywords)
	return out
}

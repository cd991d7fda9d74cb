package sketch

import "strings"

// Flags records which UI concepts the prompt mentions. The flags are
// independent; any combination may be set at once.
type Flags struct {
	Header bool
	List   bool
	Form   bool
	Cards  bool
	Chart  bool
	Avatar bool
}

// Keyword sets for each concept. Matching is substring-based, not tokenized,
// so "card" also matches "cards" and "cardigan".
var (
	headerKeywords = []string{"header", "title", "navbar", "hero"}
	listKeywords   = []string{"list", "items", "menu", "sidebar"}
	formKeywords   = []string{"form", "input", "search", "login", "button"}
	cardKeywords   = []string{"cards", "grid", "gallery", "images", "thumbnails", "card"}
	chartKeywords  = []string{"chart", "graph", "analytics"}
	avatarKeywords = []string{"avatar", "profile", "user"}
)

// Classify lower-cases the prompt once and tests each keyword set for
// substring membership.
func Classify(prompt string) Flags {
	p := strings.ToLower(prompt)
	return Flags{
		Header: containsAny(p, headerKeywords),
		List:   containsAny(p, listKeywords),
		Form:   containsAny(p, formKeywords),
		Cards:  containsAny(p, cardKeywords),
		Chart:  containsAny(p, chartKeywords),
		Avatar: containsAny(p, avatarKeywords),
	}
}

// Any reports whether at least one concept matched. When it returns false the
// composer draws the generic fallback block instead.
func (f Flags) Any() bool {
	return f.Header || f.List || f.Form || f.Cards || f.Chart || f.Avatar
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

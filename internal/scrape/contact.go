package scrape

import (
	"regexp"
	"strings"

	"foretagsradar/internal/domain"
)

var (
	// phonePatterns is an ordered cascade: international prefix first, then
	// leading-zero national, then bare grouped digits. All three require
	// Swedish grouping: a 2-3 digit area code followed by grouped digits.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+46[ \-]?\d{1,3}[ \-]?\d{2,3}(?:[ \-]?\d{2}){2}`),
		regexp.MustCompile(`\b0\d{1,3}[ \-]?\d{2,3}(?:[ \-]?\d{2}){2}\b`),
		regexp.MustCompile(`\b\d{2,3}[ \-]\d{2,3}(?:[ \-]\d{2}){2}\b`),
	}

	// namePatterns is an ordered cascade: a "Kontakt:" label, then the
	// broker label "Mäklare:", then a bare pair of capitalized words
	// directly followed by a phone-like token.
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`Kontakt:\s*([A-ZÅÄÖ][a-zåäöé\-]+(?:\s+[A-ZÅÄÖ][a-zåäöé\-]+)*)`),
		regexp.MustCompile(`Mäklare:\s*([A-ZÅÄÖ][a-zåäöé\-]+(?:\s+[A-ZÅÄÖ][a-zåäöé\-]+)*)`),
		regexp.MustCompile(`([A-ZÅÄÖ][a-zåäöé\-]+\s+[A-ZÅÄÖ][a-zåäöé\-]+)\s*[,:]?\s*(?:\+46|0\d{1,3}[ \-])`),
	}

	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
)

// ExtractContact recovers contact fields from a detail page's title and
// plain text. Each field has its own cascade; the first matching pattern
// wins and later patterns for that field are not tried. A field with no
// match is simply left empty.
func ExtractContact(pageTitle, text string) domain.ContactInfo {
	return domain.ContactInfo{
		BusinessName: businessNameFromTitle(pageTitle),
		PhoneNumber:  extractPhone(text),
		ContactName:  extractContactName(text),
		Email:        emailPattern.FindString(text),
	}
}

func extractPhone(text string) string {
	for _, p := range phonePatterns {
		if m := p.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// extractContactName accepts a candidate only when it is exactly two
// whitespace-separated tokens. Longer runs are generic phrases, not names;
// a rejected candidate falls through to the next pattern.
func extractContactName(text string) string {
	for _, p := range namePatterns {
		m := p.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		if len(strings.Fields(candidate)) == 2 {
			return candidate
		}
	}
	return ""
}

// businessNameFromTitle keeps the segment left of the site-name separator,
// e.g. "Bageri i Solna till salu - Bolagsplatsen" → "Bageri i Solna till
// salu".
func businessNameFromTitle(pageTitle string) string {
	name, _, _ := strings.Cut(pageTitle, " - ")
	return strings.TrimSpace(name)
}

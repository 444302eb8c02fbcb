package scrape

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"foretagsradar/internal/domain"
)

// ExtractCandidates pulls detail-page links out of one listing page. Every
// anchor is resolved against the source's origin, filtered through the
// source's detail URL pattern and gated on the dedup set; only first
// insertions become candidates. Zero candidates is a normal outcome.
func ExtractCandidates(src *domain.SourceConfig, pageURL, pageHTML string, seen *DedupSet) ([]domain.ListingCandidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, &domain.ParseError{URL: pageURL, Err: err}
	}

	var out []domain.ListingCandidate
	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		abs := resolveURL(src.BaseOrigin, href)
		if abs == "" || !src.DetailURLPattern.MatchString(abs) {
			return
		}
		if !seen.Insert(abs) {
			return
		}

		cand := domain.ListingCandidate{URL: abs}

		// Title from the link text, falling back to the first heading in
		// the link's container. A missing title is left empty and filled
		// from the detail page later; titles are never invented.
		cand.Title = cleanText(link.Text())
		container := link.Parent()
		if cand.Title == "" {
			cand.Title = cleanText(container.Find("h1, h2, h3, h4, h5, h6").First().Text())
		}

		if src.SummaryClass != "" {
			metas := container.Find("." + src.SummaryClass)
			var values []string
			metas.Each(func(_ int, m *goquery.Selection) {
				if v := cleanText(m.Text()); v != "" {
					values = append(values, v)
				}
			})
			if len(values) > 0 {
				cand.Location = values[0]
				// Last distinct element is the industry when the
				// container tags more than one field.
				if last := values[len(values)-1]; last != cand.Location {
					cand.Industry = last
				}
			}
		}

		out = append(out, cand)
	})

	return out, nil
}

// ExtractDetail parses a detail page into its plain text and page title.
// Script and style bodies are stripped before text extraction.
func ExtractDetail(pageURL, pageHTML string) (text, title string, err error) {
	doc, derr := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if derr != nil {
		return "", "", &domain.ParseError{URL: pageURL, Err: derr}
	}

	title = cleanText(doc.Find("title").First().Text())
	if title == "" {
		title = cleanText(doc.Find("h1").First().Text())
	}

	doc.Find("script, style").Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})
	text = cleanText(doc.Find("body").Text())
	return text, title, nil
}

// resolveURL makes href absolute against the source origin. Already-absolute
// URLs pass through untouched; naive origin+path concatenation is exactly
// the failure mode this avoids. The result is normalized for use as a dedup
// key: fragment dropped, trailing slash trimmed.
func resolveURL(origin, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	base, err := url.Parse(origin)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	u := base.ResolveReference(ref)
	if u.Scheme == "" || u.Host == "" {
		return ""
	}
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u.String()
}

// cleanText trims and collapses internal whitespace, including the newline
// runs goquery leaves behind in nested markup.
func cleanText(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}

// Package extract converts raw job posting markup into a readable text
// blob, stripping page chrome while preserving headings and bullets.
// It is resilient across job portals, company career pages, and generic
// web pages, and fails explicitly rather than returning garbage.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	// ContentFloor is the minimum combined text length accepted as a
	// real job description.
	ContentFloor = 250

	// sectionFloor is the minimum length for a single portal content
	// region to count as a candidate.
	sectionFloor = 200

	// blockFloor is the minimum length for a fallback text block to be
	// considered at all.
	blockFloor = 120
)

// ErrNoContent is returned when the markup yields no sufficiently long
// readable job description.
var ErrNoContent = errors.New("no readable job content found in markup")

// noiseKeywords mark elements whose class or id identifies page chrome.
var noiseKeywords = []string{
	"cookie", "consent", "banner", "modal",
	"popup", "subscribe", "newsletter",
	"tracking", "advert", "promo",
}

// JobText extracts the job description text from raw HTML. Page title
// and meta descriptions are harvested as prefixed metadata lines so
// downstream stages can tell them apart from body prose. Repeated lines
// are deduplicated preserving first-seen order.
func JobText(markup string) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return "", ErrNoContent
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("failed to parse markup: %w", err)
	}

	var lines []string

	// Page title and meta descriptions are high-signal metadata.
	if title := collapseSpaces(doc.Find("title").First().Text()); title != "" {
		lines = append(lines, "[TITLE] "+title)
	}
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		if name == "" {
			name, _ = s.Attr("property")
		}
		content, _ := s.Attr("content")
		switch name {
		case "description", "og:title", "og:description":
			if c := collapseSpaces(content); c != "" {
				lines = append(lines, "[META] "+c)
			}
		}
	})

	// Strip obvious chrome before looking for content.
	doc.Find("script, style, nav, footer, header, aside, noscript, svg").Remove()
	removeNoiseElements(doc)

	portal := DetectPortal(markup)

	body := ""
	if portal != PortalGeneric {
		body = portalContent(doc, portal)
	}
	if body == "" {
		body = largestTextBlock(doc)
	}
	if body != "" {
		lines = append(lines, body)
	}

	combined := dedupeLines(strings.Join(lines, "\n"))
	if len(combined) < ContentFloor {
		return "", ErrNoContent
	}

	return combined, nil
}

// removeNoiseElements drops hidden elements and elements whose class or
// id matches the noise keyword set.
func removeNoiseElements(doc *goquery.Document) {
	doc.Find(`[hidden], [aria-hidden="true"]`).Remove()

	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		if strings.Contains(strings.ReplaceAll(style, " ", ""), "display:none") {
			s.Remove()
		}
	})

	doc.Find("[class], [id]").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		marker := strings.ToLower(class + " " + id)
		for _, k := range noiseKeywords {
			if strings.Contains(marker, k) {
				s.Remove()
				return
			}
		}
	})
}

// portalContent applies portal-specific selectors and returns the
// combined candidate text, or empty when the portal structure is not
// present or too short.
func portalContent(doc *goquery.Document, portal Portal) string {
	var candidates []string
	for _, selector := range portalSelectors(portal) {
		section := doc.Find(selector).First()
		if section.Length() == 0 {
			continue
		}
		text := blockText(section)
		if len(text) > sectionFloor {
			candidates = append(candidates, text)
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	combined := strings.Join(candidates, "\n")
	if len(combined) <= ContentFloor {
		return ""
	}
	return combined
}

// largestTextBlock is the generic fallback: the single largest
// paragraph-like region that still looks like prose.
func largestTextBlock(doc *goquery.Document) string {
	largest := ""
	doc.Find("body p, body div, body section").Each(func(_ int, s *goquery.Selection) {
		text := blockText(s)
		if len(text) <= blockFloor || !strings.ContainsAny(text, " ") {
			return
		}
		if len(text) > len(largest) {
			largest = text
		}
	})
	if len(largest) <= sectionFloor {
		return ""
	}
	return largest
}

// blockTags are elements that introduce a line break in extracted text.
var blockTags = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"ul": true, "ol": true, "li": true, "br": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// blockText renders a selection as newline-separated text, marking list
// items with a dash bullet so structure survives extraction.
func blockText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		writeNodeText(n, &sb)
	}

	lines := strings.Split(sb.String(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = collapseSpaces(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func writeNodeText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
	case html.ElementNode:
		if n.Data == "li" {
			sb.WriteString("\n- ")
		} else if blockTags[n.Data] {
			sb.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writeNodeText(c, sb)
		}
		if blockTags[n.Data] {
			sb.WriteString("\n")
		}
	}
}

// dedupeLines removes repeated lines while preserving first-seen order.
func dedupeLines(text string) string {
	seen := make(map[string]bool)
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}

// collapseSpaces trims a string and folds internal whitespace runs into
// single spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

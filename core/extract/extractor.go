// ABOUTME: Content extractor finds the original article link and a preview image in feed items
// ABOUTME: Scans the HTML body in document order and falls back to the plaintext snippet

package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"goatland-feeds/core/domain"
	"goatland-feeds/core/interfaces"
)

var (
	bareURLPattern  = regexp.MustCompile(`https?://[^\s<>"']+`)
	imageURLPattern = regexp.MustCompile(`(?i)https?://\S+\.(?:jpg|jpeg|png|gif)`)
)

// trailingPunctuation is stripped from URLs found in running text
const trailingPunctuation = ".,;:!?)]}'\">"

// Extractor derives links and images from raw feed items
type Extractor struct {
	classifier interfaces.LinkClassifier
}

// NewExtractor creates an extractor that uses classifier to reject own-domain links
func NewExtractor(classifier interfaces.LinkClassifier) *Extractor {
	return &Extractor{classifier: classifier}
}

// OriginalURL returns the first external http(s) link in the item, or "" when there is none.
// Anchors in the HTML body are preferred over bare URLs in the snippet.
func (e *Extractor) OriginalURL(item domain.FeedItem) string {
	if doc := parseHTML(item.ContentHTML); doc != nil {
		var found string
		doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			href := strings.TrimSpace(s.AttrOr("href", ""))
			if isAbsoluteHTTP(href) && !e.classifier.IsOwnDomain(href) {
				found = href
				return false
			}
			return true
		})
		if found != "" {
			return found
		}
	}

	for _, candidate := range bareURLPattern.FindAllString(item.Snippet, -1) {
		candidate = strings.TrimRight(candidate, trailingPunctuation)
		if isAbsoluteHTTP(candidate) && !e.classifier.IsOwnDomain(candidate) {
			return candidate
		}
	}

	return ""
}

// Image returns the item's preview image: the feed media attachment, else the first
// img in the body, else the first image-looking URL in the snippet.
func (e *Extractor) Image(item domain.FeedItem) string {
	if media := strings.TrimSpace(item.MediaURL); media != "" {
		return media
	}

	if doc := parseHTML(item.ContentHTML); doc != nil {
		var src string
		doc.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			src = strings.TrimSpace(s.AttrOr("src", ""))
			return src == ""
		})
		if src != "" {
			return src
		}
	}

	return imageURLPattern.FindString(item.Snippet)
}

func parseHTML(body string) *goquery.Document {
	if strings.TrimSpace(body) == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil
	}
	return doc
}

func isAbsoluteHTTP(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(parsed.Scheme)
	return (scheme == "http" || scheme == "https") && parsed.Host != ""
}

// ABOUTME: HTML utilities for turning feed bodies into plaintext snippets
// ABOUTME: Tokenizes with x/net/html so entities are decoded and script/style text is dropped

package html

import (
	"strings"

	nethtml "golang.org/x/net/html"
)

// StripHTML removes tags, decodes entities and collapses whitespace.
// Adjacent elements are separated by a space so words and URLs never merge.
func StripHTML(input string) string {
	if input == "" {
		return ""
	}

	var b strings.Builder
	tokenizer := nethtml.NewTokenizer(strings.NewReader(input))
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case nethtml.ErrorToken:
			// io.EOF or a malformed tail; either way keep what was read
			return CollapseWhitespace(b.String())
		case nethtml.StartTagToken:
			if isRawTextTag(tokenizer) {
				skipDepth++
			}
			b.WriteByte(' ')
		case nethtml.EndTagToken:
			if isRawTextTag(tokenizer) && skipDepth > 0 {
				skipDepth--
			}
			b.WriteByte(' ')
		case nethtml.SelfClosingTagToken:
			b.WriteByte(' ')
		case nethtml.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
			}
		}
	}
}

// CollapseWhitespace replaces every run of whitespace with one space and trims the ends
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func isRawTextTag(tokenizer *nethtml.Tokenizer) bool {
	name, _ := tokenizer.TagName()
	tag := string(name)
	return tag == "script" || tag == "style"
}

// ABOUTME: HTML utilities for turning scraped markup into plain text
// ABOUTME: Used on feed titles, which the producer may publish with tags and entities

package html

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

// breaking elements become a space so adjacent words don't merge
var breaking = map[string]bool{
	"br": true, "p": true, "div": true, "li": true, "td": true, "h1": true, "h2": true, "h3": true,
}

// StripHTML returns the text content of s: tags removed, entities decoded,
// script and style bodies dropped, whitespace collapsed. Input the tokenizer
// cannot close ("Yen<Dollar") and input that is nothing but markup come back
// unchanged apart from whitespace.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return CollapseSpace(s)
	}

	z := xhtml.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	consumed := 0
	skip := 0
	for {
		tt := z.Next()
		if tt == xhtml.ErrorToken {
			break
		}
		consumed += len(z.Raw())

		switch tt {
		case xhtml.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case xhtml.StartTagToken, xhtml.EndTagToken, xhtml.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if tt == xhtml.StartTagToken {
					skip++
				} else if tt == xhtml.EndTagToken && skip > 0 {
					skip--
				}
				continue
			}
			if breaking[tag] {
				b.WriteByte(' ')
			}
		}
	}

	// an unterminated tag swallows the rest of the input
	if consumed < len(s) {
		return CollapseSpace(s)
	}
	text := CollapseSpace(b.String())
	if text == "" {
		return CollapseSpace(s)
	}
	return text
}

// CollapseSpace trims s and folds every whitespace run into one space
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

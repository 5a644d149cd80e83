// Package feature derives comparable surface features from sentences.
package feature

import (
	"regexp"
	"unicode/utf8"

	"github.com/bitext-tools/realign/internal/domain"
)

var (
	// Digit-dominant tokens: plain integers plus formatted numbers and
	// dates such as 1,234.56 or 2018/07/04 or 12:30.
	numberPattern = regexp.MustCompile(`^[0-9]+(?:[.,:/\-][0-9]+)*$`)
	// URL-like tokens: a scheme delimiter or a domain-shaped tail.
	urlPattern = regexp.MustCompile(`^(?:[a-zA-Z][a-zA-Z0-9+.\-]*://\S+|www\.\S+|[a-zA-Z0-9\-]+(?:\.[a-zA-Z0-9\-]+)+(?:/\S*)?)$`)
)

// Extract computes the surface features of one sentence. Pure and total
// on well-formed tokenized input.
func Extract(s domain.Sentence) domain.Features {
	f := domain.Features{
		CharLen:    utf8.RuneCountInString(s.Text),
		TokenCount: len(s.Tokens),
		Numbers:    domain.NewTokenSet(),
		URLs:       domain.NewTokenSet(),
		ASCII:      domain.NewTokenSet(),
	}
	for _, tok := range s.Tokens {
		if tok == "" {
			continue
		}
		if numberPattern.MatchString(tok) {
			f.Numbers.Add(tok)
		} else if urlPattern.MatchString(tok) {
			f.URLs.Add(tok)
		}
		if isASCII(tok) {
			f.ASCII.Add(tok)
		}
	}
	return f
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

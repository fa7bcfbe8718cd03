// Package sanitize strips markup from validation message text before it is
// shown on a form field.
package sanitize

import (
	"html"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"formbind/binding"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func strictPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})

	return policy
}

// maxRounds bounds the sanitize/unescape loop for nested entity encodings.
const maxRounds = 8

// Text removes every HTML element from s and unescapes the remaining
// entities, leaving plain text. Entity-encoded markup is decoded and
// stripped again until the text is stable, so no encoding depth can smuggle
// a tag through. Whitespace is kept as is.
func Text(s string) string {
	for range maxRounds {
		next := html.UnescapeString(strictPolicy().Sanitize(s))
		if next == s {
			return s
		}

		s = next
	}

	// Still changing: return the escaped form, which holds no live markup.
	return strictPolicy().Sanitize(s)
}

// Option returns a driver option applying Text to every message.
func Option() binding.Option {
	return binding.WithTextFilter(Text)
}

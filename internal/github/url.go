package github

import (
	"regexp"
	"strconv"

	"github.com/bruno-garcia/pi-pr-status/internal/model"
)

// URLParser extracts pull-request references of the form
// https://<host>/<owner>/<repo>/pull/<digits> from free text.
type URLParser struct {
	re *regexp.Regexp
}

// NewURLParser builds a parser for PR URLs on the given host
// (e.g. "github.com").
func NewURLParser(host string) *URLParser {
	return &URLParser{
		re: regexp.MustCompile(`https://` + regexp.QuoteMeta(host) + `/([^/\s]+)/([^/\s]+)/pull/(\d+)`),
	}
}

// Parse returns the first PR reference embedded in text. Surrounding prose
// is ignored; issue links and other paths do not match.
func (p *URLParser) Parse(text string) (model.PinRef, bool) {
	m := p.re.FindStringSubmatch(text)
	if m == nil {
		return model.PinRef{}, false
	}
	number, err := strconv.Atoi(m[3])
	if err != nil || number <= 0 {
		return model.PinRef{}, false
	}
	return model.PinRef{Repo: m[1] + "/" + m[2], Number: number}, true
}

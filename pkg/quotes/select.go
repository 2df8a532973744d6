package quotes

import (
	"math/rand/v2"
	"slices"
	"strings"
)

// Tags returns the distinct tags in the store, as stored, sorted ascending.
func (s *Store) Tags() []string {
	tags := make([]string, 0, len(s.quotes))
	for _, q := range s.quotes {
		tags = append(tags, q.Tag)
	}
	slices.Sort(tags)
	return slices.Compact(tags)
}

// Filter returns the quotes whose tag equals tag, ignoring case, in store order.
func (s *Store) Filter(tag string) []Quote {
	var matched []Quote
	for _, q := range s.quotes {
		if strings.EqualFold(q.Tag, tag) {
			matched = append(matched, q)
		}
	}
	return matched
}

func (s *Store) draw(n int) int {
	if s.intN == nil {
		return rand.IntN(n)
	}
	return s.intN(n)
}

// Pick returns a random quote. An empty tag picks from the whole store;
// otherwise the choice is limited to quotes with that tag, compared
// case-insensitively. A tag with no matches yields a *NotFoundError.
func (s *Store) Pick(tag string) (Quote, error) {
	if tag == "" {
		return s.quotes[s.draw(len(s.quotes))], nil
	}

	matched := s.Filter(tag)
	if len(matched) == 0 {
		return Quote{}, &NotFoundError{Tag: tag}
	}
	return matched[s.draw(len(matched))], nil
}

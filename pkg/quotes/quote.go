// Package quotes holds an immutable collection of quotations and the
// operations that list its tags and pick quotes from it at random.
package quotes

import (
	"fmt"
	"math/rand/v2"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Quote is a single quotation with its attribution and category tag.
type Quote struct {
	Text   string `json:"text" yaml:"text" validate:"required"`
	Author string `json:"author" yaml:"author" validate:"required"`
	Tag    string `json:"tag" yaml:"tag" validate:"required"`
}

// collection is the document shape shared by the embedded dataset and
// collection files.
type collection struct {
	Quotes []Quote `json:"quotes" yaml:"quotes" validate:"min=1,dive"`
}

// Store is a fixed, ordered set of quotes. It has no mutating methods and is
// safe to share once built. Build one with NewStore or Default; the zero
// value holds no quotes.
type Store struct {
	quotes []Quote
	intN   func(n int) int
}

// Option configures a Store.
type Option func(*Store)

// WithRand replaces the random source used by Pick. intN must return a value
// in [0, n).
func WithRand(intN func(n int) int) Option {
	return func(s *Store) {
		s.intN = intN
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// NewStore validates qs and returns a Store holding a copy of it.
//
// Example:
//
//	store, err := quotes.NewStore([]quotes.Quote{
//		{Text: "Consistency beats intensity.", Author: "Unknown", Tag: "habit"},
//	})
func NewStore(qs []Quote, opts ...Option) (*Store, error) {
	c := collection{Quotes: qs}
	if err := validate.Struct(c); err != nil {
		return nil, formatValidationErrors(err)
	}

	s := &Store{
		quotes: append([]Quote(nil), qs...),
		intN:   rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// All returns every quote in declaration order. The returned slice is a copy.
func (s *Store) All() []Quote {
	return append([]Quote(nil), s.quotes...)
}

// Len returns the number of quotes in the store.
func (s *Store) Len() int {
	return len(s.quotes)
}

// formatValidationErrors converts validator errors into one readable error
// wrapping ErrInvalidCollection.
func formatValidationErrors(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInvalidCollection, err)
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("%w:\n  %s", ErrInvalidCollection, strings.Join(msgs, "\n  "))
}

// formatFieldError renders "collection.quotes[2].author" as "quotes[2].author is required".
func formatFieldError(e validator.FieldError) string {
	field := e.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must contain at least %s quote", field, e.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

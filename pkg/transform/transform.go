// Package transform provides reusable field transformers for the delim
// tokenizers.
//
// Transformers come in four kinds: plain string builtins (Trim, Upper,
// Lower, Replace), fixed-value substitution (Value), text/template
// rendering with the sprig function map (Template), and expr-lang
// expressions (Expr). A Chain composes several transformers into one.
package transform

import (
	"strings"

	"github.com/delimtok/delimtok/pkg/delim"
)

// Trim returns a transformer that removes leading and trailing whitespace.
func Trim() delim.Transformer {
	return delim.TransformerFunc(func(s string) (string, error) {
		return strings.TrimSpace(s), nil
	})
}

// Upper returns a transformer that upper-cases the field.
func Upper() delim.Transformer {
	return delim.TransformerFunc(func(s string) (string, error) {
		return strings.ToUpper(s), nil
	})
}

// Lower returns a transformer that lower-cases the field.
func Lower() delim.Transformer {
	return delim.TransformerFunc(func(s string) (string, error) {
		return strings.ToLower(s), nil
	})
}

// Replace returns a transformer that replaces all occurrences of old with new.
func Replace(old, new string) delim.Transformer {
	return delim.TransformerFunc(func(s string) (string, error) {
		return strings.ReplaceAll(s, old, new), nil
	})
}

// Value returns a transformer that discards the field content and
// substitutes a fixed value.
func Value(v string) delim.Transformer {
	return delim.TransformerFunc(func(string) (string, error) {
		return v, nil
	})
}

// Chain applies its transformers in order, feeding each one's output to
// the next. An empty chain is the identity.
type Chain []delim.Transformer

// Transform implements delim.Transformer.
func (c Chain) Transform(field string) (string, error) {
	var err error
	for _, t := range c {
		field, err = t.Transform(field)
		if err != nil {
			return "", err
		}
	}
	return field, nil
}

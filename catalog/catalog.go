// Package catalog holds the ordered list of variables a user can place into
// text.
package catalog

import (
	"github.com/sahilm/fuzzy"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"

	"github.com/iw2rmb/varpad/token"
)

var (
	ErrEmptyName           = errors.Base("variable name is empty")
	ErrInvalidIdentifier   = errors.Base("invalid variable identifier")
	ErrDuplicateIdentifier = errors.Base("duplicate variable identifier")
)

// Variable is one placeable variable. Identifier is its identity and the
// text between the token braces; Name is what the palette shows.
type Variable struct {
	Name       string `mapstructure:"name"`
	Identifier string `mapstructure:"identifier"`
}

// Token returns the token text placed for v.
func (v Variable) Token() string { return token.Format(v.Identifier) }

// Catalog is an ordered list of variables.
type Catalog []Variable

// Default returns the two-entry reference catalog.
func Default() Catalog {
	return Catalog{
		{Name: "Company name", Identifier: "COMPANY_NAME"},
		{Name: "User name", Identifier: "USER_NAME"},
	}
}

// Available returns the variables of all not yet used in text, in catalog
// order.
func Available(all Catalog, text string) Catalog {
	used := token.Identifiers(text)
	out := make(Catalog, 0, len(all))
	for _, v := range all {
		if used.Has(v.Identifier) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (c Catalog) Available(text string) Catalog { return Available(c, text) }

// Lookup finds the variable with identifier id.
func (c Catalog) Lookup(id string) (Variable, bool) {
	for _, v := range c {
		if v.Identifier == id {
			return v, true
		}
	}
	return Variable{}, false
}

// Identifiers returns the identifiers in catalog order.
func (c Catalog) Identifiers() []string {
	out := make([]string, 0, len(c))
	for _, v := range c {
		out = append(out, v.Identifier)
	}
	return out
}

// Validate reports every entry with an empty name, an identifier the token
// grammar rejects, or an identifier already used by an earlier entry.
func (c Catalog) Validate() error {
	var err error
	seen := make(map[string]int, len(c))
	for i, v := range c {
		if v.Name == "" {
			err = multierr.Append(err, errors.Errorf("variable %d: %w", i, ErrEmptyName))
		}
		if !token.IsIdentifier(v.Identifier) {
			err = multierr.Append(err, errors.Errorf("variable %d: %q: %w", i, v.Identifier, ErrInvalidIdentifier))
			continue
		}
		if first, ok := seen[v.Identifier]; ok {
			err = multierr.Append(err, errors.Errorf("variable %d: %q already defined by variable %d: %w", i, v.Identifier, first, ErrDuplicateIdentifier))
			continue
		}
		seen[v.Identifier] = i
	}
	return err
}

type filterSource Catalog

func (s filterSource) String(i int) string { return s[i].Name + " " + s[i].Identifier }
func (s filterSource) Len() int            { return len(s) }

// Filter returns the variables matching query, best match first. An empty
// query returns c unchanged.
func (c Catalog) Filter(query string) Catalog {
	if query == "" {
		return c
	}
	matches := fuzzy.FindFrom(query, filterSource(c))
	out := make(Catalog, 0, len(matches))
	for _, m := range matches {
		out = append(out, c[m.Index])
	}
	return out
}

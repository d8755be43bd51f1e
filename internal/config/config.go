// Package config loads tokenizer profiles from YAML files.
//
// A profile describes one row-tokenizer run: delimiter, field-count policy
// and per-column transformation chains.
//
//	delimiter: ","
//	minFields: 3
//	maxFields: 3
//	onUnderfull: error
//	onOverfull: skip
//	columns:
//	  - index: 2
//	    transformations:
//	      - kind: trim
//	      - kind: expr
//	        source: upper(value)
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/delimtok/delimtok/pkg/delim"
	"github.com/delimtok/delimtok/pkg/transform"
)

// Policy modes accepted by OnUnderfull and OnOverfull.
const (
	// ModeError raises an error on a violated bound.
	ModeError = "error"
	// ModeSkip silently suppresses the violating row.
	ModeSkip = "skip"
	// ModeKeep delivers the violating row: as-is when underfull, truncated
	// to the bound when overfull.
	ModeKeep = "keep"
)

// Profile is the YAML representation of one tokenizer configuration.
type Profile struct {
	// Delimiter is a single-character field delimiter. Empty means tab.
	Delimiter string `yaml:"delimiter,omitempty"`
	// MinFields and MaxFields bound the per-row field count; 0 disables
	// the respective bound.
	MinFields int `yaml:"minFields,omitempty"`
	MaxFields int `yaml:"maxFields,omitempty"`
	// OnUnderfull and OnOverfull select the policy mode for each bound.
	// Empty means ModeError.
	OnUnderfull string `yaml:"onUnderfull,omitempty"`
	OnOverfull  string `yaml:"onOverfull,omitempty"`
	// Columns lists per-column transformation chains.
	Columns []ColumnConfig `yaml:"columns,omitempty"`
}

// ColumnConfig attaches a transformation chain to a 1-based column index.
type ColumnConfig struct {
	Index           int                    `yaml:"index"`
	Transformations []TransformationConfig `yaml:"transformations"`
}

// TransformationConfig describes one transformation step.
type TransformationConfig struct {
	// Kind is one of: trim, upper, lower, replace, value, template, expr.
	Kind string `yaml:"kind"`
	// Source is the template text or expression source for the template
	// and expr kinds.
	Source string `yaml:"source,omitempty"`
	// Value is the substitute for the value kind.
	Value string `yaml:"value,omitempty"`
	// Old and New parameterize the replace kind.
	Old string `yaml:"old,omitempty"`
	New string `yaml:"new,omitempty"`
}

// Load reads and parses a profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read profile: %w", err)
	}
	return Parse(data)
}

// Parse parses a profile from YAML bytes.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("cannot parse profile: %w", err)
	}
	return &p, nil
}

// RowOptions converts the profile into validated tokenizer options.
func (p *Profile) RowOptions() (delim.RowOptions, error) {
	opts := delim.DefaultRowOptions()

	if p.Delimiter != "" {
		if len(p.Delimiter) != 1 {
			return opts, fmt.Errorf("delimiter %q must be a single character", p.Delimiter)
		}
		opts.Delimiter = p.Delimiter[0]
	}
	opts.MinFields = p.MinFields
	opts.MaxFields = p.MaxFields

	enforce, ignore, err := policyFlags("onUnderfull", p.OnUnderfull)
	if err != nil {
		return opts, err
	}
	opts.EnforceMinFields = enforce
	opts.IgnoreUnderfullRow = ignore

	enforce, ignore, err = policyFlags("onOverfull", p.OnOverfull)
	if err != nil {
		return opts, err
	}
	opts.EnforceMaxFields = enforce
	opts.IgnoreOverfullRow = ignore

	transforms, err := p.transformMap()
	if err != nil {
		return opts, err
	}
	opts.Transforms = transforms

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// policyFlags maps a mode name onto the enforce/ignore flag pair.
func policyFlags(field, mode string) (enforce, ignore bool, err error) {
	switch mode {
	case "", ModeError:
		return true, true, nil
	case ModeSkip:
		return false, true, nil
	case ModeKeep:
		return false, false, nil
	default:
		return false, false, fmt.Errorf("unknown %s mode %q", field, mode)
	}
}

// transformMap builds the per-column transformer chains.
func (p *Profile) transformMap() (delim.TransformMap, error) {
	if len(p.Columns) == 0 {
		return nil, nil
	}
	m := make(delim.TransformMap, len(p.Columns))
	for _, col := range p.Columns {
		if col.Index < 1 {
			return nil, fmt.Errorf("column index %d must be positive", col.Index)
		}
		if _, dup := m[col.Index]; dup {
			return nil, fmt.Errorf("column index %d configured twice", col.Index)
		}
		chain := make(transform.Chain, 0, len(col.Transformations))
		for _, tc := range col.Transformations {
			tr, err := buildTransformer(tc)
			if err != nil {
				return nil, fmt.Errorf("column %d: %w", col.Index, err)
			}
			chain = append(chain, tr)
		}
		m[col.Index] = chain
	}
	return m, nil
}

func buildTransformer(tc TransformationConfig) (delim.Transformer, error) {
	switch tc.Kind {
	case "trim":
		return transform.Trim(), nil
	case "upper":
		return transform.Upper(), nil
	case "lower":
		return transform.Lower(), nil
	case "replace":
		return transform.Replace(tc.Old, tc.New), nil
	case "value":
		return transform.Value(tc.Value), nil
	case "template":
		return transform.NewTemplate(tc.Source)
	case "expr":
		return transform.NewExpr(tc.Source)
	default:
		return nil, fmt.Errorf("unknown transformation kind %q", tc.Kind)
	}
}

package config_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/delimtok/delimtok/internal/config"
	"github.com/delimtok/delimtok/pkg/delim"
)

func TestParse(t *testing.T) {
	data := []byte(`
delimiter: ","
minFields: 2
maxFields: 4
onUnderfull: skip
onOverfull: keep
columns:
  - index: 2
    transformations:
      - kind: trim
      - kind: upper
`)
	p, err := config.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Delimiter != "," || p.MinFields != 2 || p.MaxFields != 4 {
		t.Errorf("profile = %+v", p)
	}
	if len(p.Columns) != 1 || p.Columns[0].Index != 2 || len(p.Columns[0].Transformations) != 2 {
		t.Errorf("columns = %+v", p.Columns)
	}
}

func TestProfile_RowOptions(t *testing.T) {
	p := &config.Profile{
		Delimiter:   ",",
		MinFields:   2,
		OnUnderfull: config.ModeSkip,
		OnOverfull:  config.ModeError,
		Columns: []config.ColumnConfig{
			{
				Index: 2,
				Transformations: []config.TransformationConfig{
					{Kind: "trim"},
					{Kind: "expr", Source: `upper(value)`},
				},
			},
		},
	}
	opts, err := p.RowOptions()
	if err != nil {
		t.Fatalf("RowOptions: %v", err)
	}
	if opts.Delimiter != ',' {
		t.Errorf("Delimiter = %q, want ','", opts.Delimiter)
	}
	if opts.EnforceMinFields || !opts.IgnoreUnderfullRow {
		t.Error("onUnderfull skip should clear enforce and set ignore")
	}
	if !opts.EnforceMaxFields {
		t.Error("onOverfull error should set enforce")
	}

	rows, err := delim.ParseWithOptions("a, b \nc,d\n", opts)
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	want := [][]string{{"a", "B"}, {"c", "D"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestProfile_RowOptionsErrors(t *testing.T) {
	tests := []struct {
		name    string
		profile config.Profile
		wantMsg string
	}{
		{
			name:    "multi-character delimiter",
			profile: config.Profile{Delimiter: "ab"},
			wantMsg: "single character",
		},
		{
			name:    "unknown mode",
			profile: config.Profile{OnUnderfull: "explode"},
			wantMsg: "unknown onUnderfull mode",
		},
		{
			name: "unknown transformation kind",
			profile: config.Profile{
				Columns: []config.ColumnConfig{
					{Index: 1, Transformations: []config.TransformationConfig{{Kind: "rot13"}}},
				},
			},
			wantMsg: "unknown transformation kind",
		},
		{
			name: "non-positive column index",
			profile: config.Profile{
				Columns: []config.ColumnConfig{{Index: 0}},
			},
			wantMsg: "must be positive",
		},
		{
			name: "duplicate column index",
			profile: config.Profile{
				Columns: []config.ColumnConfig{{Index: 1}, {Index: 1}},
			},
			wantMsg: "configured twice",
		},
		{
			name:    "invalid bounds",
			profile: config.Profile{MinFields: 5, MaxFields: 3},
			wantMsg: "exceeds MaxFields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.profile.RowOptions()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestParse_BadYAML(t *testing.T) {
	if _, err := config.Parse([]byte("delimiter: [")); err == nil {
		t.Error("expected parse error")
	}
}

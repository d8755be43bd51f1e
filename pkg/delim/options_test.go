package delim_test

import (
	"testing"

	"github.com/delimtok/delimtok/pkg/delim"
)

func TestDefaultRowOptions(t *testing.T) {
	opts := delim.DefaultRowOptions()

	if opts.Delimiter != '\t' {
		t.Errorf("Delimiter = %q, want tab", opts.Delimiter)
	}
	if opts.MinFields != 0 || opts.MaxFields != 0 {
		t.Errorf("bounds = (%d, %d), want disabled", opts.MinFields, opts.MaxFields)
	}
	if !opts.EnforceMinFields || !opts.EnforceMaxFields {
		t.Error("both bounds should be enforced by default")
	}
	if !opts.IgnoreUnderfullRow || !opts.IgnoreOverfullRow {
		t.Error("both ignore flags should be set by default")
	}
	if opts.Transforms != nil {
		t.Error("Transforms should be nil by default")
	}
}

func TestRowOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*delim.RowOptions)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*delim.RowOptions) {}},
		{name: "comma delimiter", mutate: func(o *delim.RowOptions) { o.Delimiter = ',' }},
		{name: "zero delimiter", mutate: func(o *delim.RowOptions) { o.Delimiter = 0 }, wantErr: true},
		{name: "newline delimiter", mutate: func(o *delim.RowOptions) { o.Delimiter = '\n' }, wantErr: true},
		{name: "negative min", mutate: func(o *delim.RowOptions) { o.MinFields = -1 }, wantErr: true},
		{name: "negative max", mutate: func(o *delim.RowOptions) { o.MaxFields = -1 }, wantErr: true},
		{name: "min above max", mutate: func(o *delim.RowOptions) { o.MinFields = 5; o.MaxFields = 3 }, wantErr: true},
		{name: "min without max", mutate: func(o *delim.RowOptions) { o.MinFields = 5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := delim.DefaultRowOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultFieldOptions(t *testing.T) {
	opts := delim.DefaultFieldOptions()

	if opts.Delimiters != "\t" {
		t.Errorf("Delimiters = %q, want tab", opts.Delimiters)
	}
	if opts.Terminators != "\n" {
		t.Errorf("Terminators = %q, want newline", opts.Terminators)
	}
	if opts.Masked != "" {
		t.Errorf("Masked = %q, want empty", opts.Masked)
	}
	if !opts.EnforceFieldNumber {
		t.Error("EnforceFieldNumber should default to true")
	}
	if !opts.IgnoreUnderfullData {
		t.Error("IgnoreUnderfullData should default to true")
	}
}

func TestFieldOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*delim.FieldOptions)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*delim.FieldOptions) {}},
		{name: "several delimiters", mutate: func(o *delim.FieldOptions) { o.Delimiters = ",;\t" }},
		{name: "no delimiters", mutate: func(o *delim.FieldOptions) { o.Delimiters = "" }, wantErr: true},
		{name: "delimiter in terminators", mutate: func(o *delim.FieldOptions) { o.Delimiters = "\n\t" }, wantErr: true},
		{name: "masked delimiter", mutate: func(o *delim.FieldOptions) { o.Masked = "\t" }, wantErr: true},
		{name: "masked terminator", mutate: func(o *delim.FieldOptions) { o.Masked = "\n" }, wantErr: true},
		{name: "disjoint masked", mutate: func(o *delim.FieldOptions) { o.Masked = "#_" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := delim.DefaultFieldOptions()
			tt.mutate(&opts)
			err := opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenizerCopiesOptions(t *testing.T) {
	// Mutating the caller's transform map after construction must not
	// affect the tokenizer.
	m := delim.TransformMap{
		1: delim.TransformerFunc(func(s string) (string, error) { return s + "-a", nil }),
	}
	opts := delim.DefaultRowOptions()
	opts.Transforms = m
	tok := delim.NewRowTokenizer(opts)

	m[1] = delim.TransformerFunc(func(s string) (string, error) { return s + "-b", nil })

	var row []string
	if _, err := tok.ParseRow(reader("x\n"), &row); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(row) != 1 || row[0] != "x-a" {
		t.Errorf("row = %v, want [x-a]", row)
	}
}

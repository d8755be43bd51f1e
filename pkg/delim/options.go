package delim

// RowOptions configures a RowTokenizer.
//
// An options value is copied (including the transform map) when a tokenizer
// is constructed; later changes to the value or the map do not affect the
// tokenizer. To change configuration, build a new tokenizer from a modified
// options value. Options must never be mutated concurrently with an
// in-flight parse call on a tokenizer built from them.
type RowOptions struct {
	// Delimiter is the single byte separating fields within a row.
	// Default: '\t'
	Delimiter byte

	// MinFields is the minimum number of fields expected per row.
	// 0 disables the bound entirely.
	// Default: 0
	MinFields int

	// MaxFields is the maximum number of fields allowed per row.
	// 0 disables the bound entirely.
	// Default: 0
	MaxFields int

	// EnforceMinFields converts a MinFields violation into a
	// FieldCountError wrapping ErrMissingFields.
	// Default: true
	EnforceMinFields bool

	// IgnoreUnderfullRow suppresses rows that violate MinFields when
	// EnforceMinFields is false. When both are false the underfull row is
	// delivered as-is.
	// Default: true
	IgnoreUnderfullRow bool

	// EnforceMaxFields converts a MaxFields violation into a
	// FieldCountError wrapping ErrUnexpectedFields, raised at the
	// delimiter that caused the overflow.
	// Default: true
	EnforceMaxFields bool

	// IgnoreOverfullRow suppresses rows that violate MaxFields when
	// EnforceMaxFields is false. When both are false the row is delivered
	// truncated to the first MaxFields fields.
	// Default: true
	IgnoreOverfullRow bool

	// Transforms maps 1-based field indexes to Transformers applied at
	// field commit. Absent indexes pass through unmodified.
	Transforms TransformMap
}

// DefaultRowOptions returns the default row tokenizer configuration:
// tab-delimited, unbounded field counts, both bounds enforced and both
// ignore flags set.
func DefaultRowOptions() RowOptions {
	return RowOptions{
		Delimiter:          '\t',
		MinFields:          0,
		MaxFields:          0,
		EnforceMinFields:   true,
		IgnoreUnderfullRow: true,
		EnforceMaxFields:   true,
		IgnoreOverfullRow:  true,
	}
}

// Validate checks if the options are valid.
// Returns an error if the options are invalid.
func (o RowOptions) Validate() error {
	if o.Delimiter == 0 {
		return &OptionsError{Field: "Delimiter", Message: "delimiter must be set"}
	}
	if o.Delimiter == '\n' {
		return &OptionsError{Field: "Delimiter", Message: "delimiter collides with the row terminator"}
	}
	if o.MinFields < 0 {
		return &OptionsError{Field: "MinFields", Message: "must not be negative"}
	}
	if o.MaxFields < 0 {
		return &OptionsError{Field: "MaxFields", Message: "must not be negative"}
	}
	if o.MaxFields > 0 && o.MinFields > o.MaxFields {
		return &OptionsError{Field: "MinFields", Message: "exceeds MaxFields"}
	}
	return nil
}

// FieldOptions configures a FieldTokenizer.
//
// Delimiters, Terminators and Masked are byte sets given as strings; each
// byte of the string is a member. Classification precedence when a byte
// appears in more than one set is terminator, then delimiter, then masked.
// Multi-byte UTF-8 sequences in field content pass through untouched; only
// the classification sets are byte-valued.
//
// The same copy-on-construction and no-concurrent-mutation rules as
// RowOptions apply.
type FieldOptions struct {
	// Delimiters is the set of bytes separating fields.
	// Default: "\t"
	Delimiters string

	// Terminators is the set of bytes that end a read immediately.
	// Default: "\n"
	Terminators string

	// Masked is the set of bytes consumed from the stream but excluded
	// from field content.
	// Default: "" (empty)
	Masked string

	// EnforceFieldNumber converts an underfull read into a
	// FieldCountError wrapping ErrMissingFields.
	// Default: true
	EnforceFieldNumber bool

	// IgnoreUnderfullData suppresses underfull reads when
	// EnforceFieldNumber is false. When both are false the partial field
	// group is delivered as-is.
	// Default: true
	IgnoreUnderfullData bool

	// Transforms maps 1-based field indexes to Transformers applied at
	// field commit. Absent indexes pass through unmodified.
	Transforms TransformMap
}

// DefaultFieldOptions returns the default field tokenizer configuration:
// tab delimiters, newline terminators, no masked bytes, field number
// enforced, underfull data ignored.
func DefaultFieldOptions() FieldOptions {
	return FieldOptions{
		Delimiters:          "\t",
		Terminators:         "\n",
		Masked:              "",
		EnforceFieldNumber:  true,
		IgnoreUnderfullData: true,
	}
}

// Validate checks if the options are valid.
// Returns an error if the options are invalid.
func (o FieldOptions) Validate() error {
	if o.Delimiters == "" {
		return &OptionsError{Field: "Delimiters", Message: "at least one delimiter byte is required"}
	}
	if overlaps(o.Delimiters, o.Terminators) {
		return &OptionsError{Field: "Delimiters", Message: "byte also present in Terminators"}
	}
	if overlaps(o.Masked, o.Delimiters) {
		return &OptionsError{Field: "Masked", Message: "byte also present in Delimiters"}
	}
	if overlaps(o.Masked, o.Terminators) {
		return &OptionsError{Field: "Masked", Message: "byte also present in Terminators"}
	}
	return nil
}

// overlaps reports whether the two byte sets share a member.
func overlaps(a, b string) bool {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] == b[j] {
				return true
			}
		}
	}
	return false
}

// byteSet is a membership table over single bytes.
type byteSet [256]bool

func makeByteSet(members string) byteSet {
	var s byteSet
	for i := 0; i < len(members); i++ {
		s[members[i]] = true
	}
	return s
}

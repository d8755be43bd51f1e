package delim

// Transformer rewrites a single committed field.
// Transformers registered in a TransformMap are invoked synchronously, in
// field-commit order, and any error they return propagates out of the
// tokenizer call unmodified.
type Transformer interface {
	// Transform receives the accumulated raw field and returns its
	// replacement.
	Transform(field string) (string, error)
}

// TransformerFunc is a function adapter for the Transformer interface.
type TransformerFunc func(string) (string, error)

// Transform implements Transformer.
func (f TransformerFunc) Transform(field string) (string, error) {
	return f(field)
}

// TransformMap maps 1-based field indexes to Transformers.
// Keys need not be contiguous or start at 1. A field whose index has no
// entry is passed through byte-identical to its raw characters.
type TransformMap map[int]Transformer

// clone returns a copy of the map so that a tokenizer built from an options
// value is unaffected by later changes to the caller's map.
func (m TransformMap) clone() TransformMap {
	if m == nil {
		return nil
	}
	out := make(TransformMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// apply runs the transformer registered under index, if any.
func (m TransformMap) apply(index int, field string) (string, error) {
	t, ok := m[index]
	if !ok {
		return field, nil
	}
	return t.Transform(field)
}

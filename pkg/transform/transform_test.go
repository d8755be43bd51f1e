package transform_test

import (
	"errors"
	"testing"

	"github.com/delimtok/delimtok/pkg/delim"
	"github.com/delimtok/delimtok/pkg/transform"
)

func TestBuiltins(t *testing.T) {
	tests := []struct {
		name string
		tr   delim.Transformer
		in   string
		want string
	}{
		{name: "trim", tr: transform.Trim(), in: "  padded  ", want: "padded"},
		{name: "upper", tr: transform.Upper(), in: "abc", want: "ABC"},
		{name: "lower", tr: transform.Lower(), in: "ABC", want: "abc"},
		{name: "replace", tr: transform.Replace("-", "_"), in: "a-b-c", want: "a_b_c"},
		{name: "value", tr: transform.Value("xxx"), in: "secret", want: "xxx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.tr.Transform(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Transform(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestChain(t *testing.T) {
	c := transform.Chain{
		transform.Trim(),
		transform.Upper(),
	}
	got, err := c.Transform("  abc  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ABC" {
		t.Errorf("Transform = %q, want ABC", got)
	}

	t.Run("empty chain is identity", func(t *testing.T) {
		got, err := transform.Chain{}.Transform("as-is")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "as-is" {
			t.Errorf("Transform = %q, want as-is", got)
		}
	})

	t.Run("error stops the chain", func(t *testing.T) {
		boom := errors.New("boom")
		c := transform.Chain{
			delim.TransformerFunc(func(string) (string, error) { return "", boom }),
			transform.Upper(),
		}
		if _, err := c.Transform("x"); !errors.Is(err, boom) {
			t.Errorf("err = %v, want boom", err)
		}
	})
}

func TestTemplate(t *testing.T) {
	tr, err := transform.NewTemplate(`{{ upper .Value }}`)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	got, err := tr.Transform("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ABC" {
		t.Errorf("Transform = %q, want ABC", got)
	}

	t.Run("sprig pipeline", func(t *testing.T) {
		tr, err := transform.NewTemplate(`{{ .Value | trim | lower }}`)
		if err != nil {
			t.Fatalf("NewTemplate: %v", err)
		}
		got, err := tr.Transform("  ABC  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "abc" {
			t.Errorf("Transform = %q, want abc", got)
		}
	})

	t.Run("bad template", func(t *testing.T) {
		if _, err := transform.NewTemplate(`{{ upper `); err == nil {
			t.Error("expected compile error")
		}
	})
}

func TestExpr(t *testing.T) {
	tr, err := transform.NewExpr(`upper(value)`)
	if err != nil {
		t.Fatalf("NewExpr: %v", err)
	}
	got, err := tr.Transform("abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ABC" {
		t.Errorf("Transform = %q, want ABC", got)
	}

	t.Run("conditional", func(t *testing.T) {
		tr, err := transform.NewExpr(`value == "" ? "n/a" : value`)
		if err != nil {
			t.Fatalf("NewExpr: %v", err)
		}
		got, err := tr.Transform("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "n/a" {
			t.Errorf("Transform = %q, want n/a", got)
		}
	})

	t.Run("non-string result", func(t *testing.T) {
		tr, err := transform.NewExpr(`len(value)`)
		if err != nil {
			t.Fatalf("NewExpr: %v", err)
		}
		if _, err := tr.Transform("abc"); err == nil {
			t.Error("expected error for non-string result")
		}
	})

	t.Run("bad expression", func(t *testing.T) {
		if _, err := transform.NewExpr(`upper(`); err == nil {
			t.Error("expected compile error")
		}
	})
}

func TestTransformersInTokenizer(t *testing.T) {
	tmpl, err := transform.NewTemplate(`{{ .Value | trim }}`)
	if err != nil {
		t.Fatalf("NewTemplate: %v", err)
	}
	opts := delim.DefaultRowOptions()
	opts.Transforms = delim.TransformMap{
		1: transform.Upper(),
		2: tmpl,
	}
	rows, err := delim.ParseWithOptions("ab\t cd \n", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0][0] != "AB" || rows[0][1] != "cd" {
		t.Errorf("rows = %v, want [[AB cd]]", rows)
	}
}

package precastro

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestModuleRegistersTableOnce(t *testing.T) {
	mod, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	infos := mod.Builtins()
	if len(infos) != 2 {
		t.Fatalf("expected 2 builtins, got %d", len(infos))
	}
	if infos[0].Name != "novas_astro_star" || infos[1].Name != "novas_ephemeris" {
		t.Fatalf("unexpected registration table: %+v", infos)
	}
	want := "novas_astro_star (jdtt, ra, dec, promora, promodec, parallax, rv) => (ra, dec)"
	if infos[0].Usage != want {
		t.Fatalf("usage string mismatch: %q", infos[0].Usage)
	}
}

func TestErrorKindAttachedAtConstruction(t *testing.T) {
	mod, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	kind, ok := mod.ErrorKind("NovasError")
	if !ok {
		t.Fatal("NovasError kind not attached")
	}
	if kind != ErrNovas {
		t.Fatalf("attached kind is not the shared sentinel: %v", kind)
	}
}

func TestCallUnknownFunction(t *testing.T) {
	mod, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	_, err = mod.Call(context.Background(), "nope", nil)
	if !errors.Is(err, ErrUnknownFunction) {
		t.Fatalf("expected ErrUnknownFunction, got %v", err)
	}
	if !strings.Contains(err.Error(), "precastro.nope") {
		t.Fatalf("error should carry the qualified name: %v", err)
	}
}

func TestSignatureParsing(t *testing.T) {
	cases := []struct {
		format string
		kinds  []ValueKind
		ok     bool
	}{
		{"ddddddd", []ValueKind{KindFloat, KindFloat, KindFloat, KindFloat, KindFloat, KindFloat, KindFloat}, true},
		{"i", []ValueKind{KindInt}, true},
		{"dii", []ValueKind{KindFloat, KindInt, KindInt}, true},
		{"", nil, true},
		{"dxd", nil, false},
	}
	for _, tc := range cases {
		sig, err := ParseSignature(tc.format)
		if tc.ok != (err == nil) {
			t.Fatalf("ParseSignature(%q) error = %v, want ok=%v", tc.format, err, tc.ok)
		}
		if err != nil {
			continue
		}
		if len(sig) != len(tc.kinds) {
			t.Fatalf("ParseSignature(%q) returned %d kinds, want %d", tc.format, len(sig), len(tc.kinds))
		}
		for i, k := range tc.kinds {
			if sig[i] != k {
				t.Fatalf("ParseSignature(%q)[%d] = %v, want %v", tc.format, i, sig[i], k)
			}
		}
	}
}

func TestDuplicateBuiltinRejected(t *testing.T) {
	fn := func(ctx context.Context, args []Value) (Value, error) { return NewNil(), nil }
	_, err := newModule("dup", []BuiltinSpec{
		{Name: "f", Sig: "i", Fn: fn},
		{Name: "f", Sig: "i", Fn: fn},
	})
	if err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestBadSignatureRejectedAtConstruction(t *testing.T) {
	fn := func(ctx context.Context, args []Value) (Value, error) { return NewNil(), nil }
	_, err := newModule("bad", []BuiltinSpec{{Name: "f", Sig: "q", Fn: fn}})
	if err == nil {
		t.Fatal("expected bad signature to fail registration")
	}
}

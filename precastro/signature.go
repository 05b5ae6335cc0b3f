package precastro

import "fmt"

// Signature is the fixed positional argument shape of a builtin, parsed once
// at registration from the "ddddddd"-style format convention. 'd' binds a
// float (integer arguments are widened) and 'i' binds an integer.
type Signature []ValueKind

func ParseSignature(format string) (Signature, error) {
	sig := make(Signature, 0, len(format))
	for i, c := range format {
		switch c {
		case 'd':
			sig = append(sig, KindFloat)
		case 'i':
			sig = append(sig, KindInt)
		default:
			return nil, fmt.Errorf("signature %q: unsupported format char %q at position %d", format, c, i)
		}
	}
	return sig, nil
}

// bind validates arity and kinds and returns a coerced copy of the
// arguments. A failed bind means the adapter never runs.
func (s Signature) bind(name string, args []Value) ([]Value, error) {
	if len(args) != len(s) {
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d", ErrBadArgs, name, len(s), len(args))
	}
	bound := make([]Value, len(args))
	for i, want := range s {
		got := args[i]
		switch want {
		case KindFloat:
			if got.Kind() != KindFloat && got.Kind() != KindInt {
				return nil, fmt.Errorf("%w: %s argument %d must be numeric, got %s", ErrBadArgs, name, i+1, got.Kind())
			}
			bound[i] = NewFloat(got.Float())
		case KindInt:
			if got.Kind() != KindInt {
				return nil, fmt.Errorf("%w: %s argument %d must be an integer, got %s", ErrBadArgs, name, i+1, got.Kind())
			}
			bound[i] = got
		default:
			return nil, fmt.Errorf("%w: %s argument %d has unsupported kind", ErrBadArgs, name, i+1)
		}
	}
	return bound, nil
}

package precastro

import "context"

// NewThingie builds the degenerate passthrough module: a single integer
// identity builtin registered through the same table mechanism, used to
// exercise registration and dispatch end to end. It attaches no error kind;
// the module has no failure surface of its own.
func NewThingie() (*Module, error) {
	specs := []BuiltinSpec{
		{
			Name: "thingie",
			Sig:  "i",
			Doc:  "(i) => i",
			Fn: func(ctx context.Context, args []Value) (Value, error) {
				return args[0], nil
			},
		},
	}
	return newModule("thingie", specs)
}

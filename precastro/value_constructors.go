package precastro

func NewNil() Value            { return Value{kind: KindNil} }
func NewInt(i int64) Value     { return Value{kind: KindInt, data: i} }
func NewFloat(f float64) Value { return Value{kind: KindFloat, data: f} }
func NewString(s string) Value { return Value{kind: KindString, data: s} }

func NewTuple(elems ...float64) Value {
	return Value{kind: KindTuple, data: append([]float64(nil), elems...)}
}

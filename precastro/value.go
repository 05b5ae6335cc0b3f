package precastro

type ValueKind int

const (
	KindNil ValueKind = iota
	KindInt
	KindFloat
	KindString
	KindTuple
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTuple:
		return "tuple"
	default:
		return "unknown"
	}
}

type Value struct {
	kind ValueKind
	data any
}

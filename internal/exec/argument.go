package exec

import "github.com/agbru/deccalc/internal/decimal"

// Kind tags the category of a call argument.
type Kind uint8

const (
	// KindDecimal is a decimal-category operand, either an array or a
	// broadcast constant.
	KindDecimal Kind = iota
	// KindScale is the optional third argument: a constant unsigned integer
	// fixing the result scale.
	KindScale
)

// Argument is one argument of an engine call, mirroring how the surrounding
// query engine hands operands over: a value together with its declared type
// metadata.
type Argument struct {
	// Kind is the argument category.
	Kind Kind

	// Type is the declared decimal type (width and scale). Valid for
	// KindDecimal.
	Type decimal.Type

	// Col holds the rows of an array operand. Nil for a broadcast constant.
	Col decimal.AnyColumn

	// Const holds the native element of a broadcast constant operand
	// (int32, int64, decimal128.Num or decimal256.Num) when Col is nil.
	Const any

	// Scale is the constant unsigned integer value of a KindScale argument.
	Scale uint64
}

// ColumnArg builds an array operand argument.
func ColumnArg(t decimal.Type, col decimal.AnyColumn) Argument {
	return Argument{Kind: KindDecimal, Type: t, Col: col}
}

// ConstArg builds a broadcast constant operand argument. v must be the native
// element matching t's width.
func ConstArg(t decimal.Type, v any) Argument {
	return Argument{Kind: KindDecimal, Type: t, Const: v}
}

// ScaleArg builds the optional constant result-scale argument.
func ScaleArg(scale uint64) Argument {
	return Argument{Kind: KindScale, Scale: scale}
}

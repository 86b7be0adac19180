package exec

import (
	"github.com/agbru/deccalc/internal/decimal"
	apperrors "github.com/agbru/deccalc/internal/errors"
)

// plan is a validated call, ready for dispatch: both operands, the resolved
// row count and the declared result type.
type plan struct {
	a, b       Argument
	rows       int
	resultType decimal.Type
}

// validate checks arity and argument categories eagerly, before any row is
// evaluated, and resolves the result scale: the explicit third argument when
// present, otherwise max(scaleA, scaleB). The declared result type is always
// a 256-bit decimal with precision 76 at that scale.
func validate(function string, args []Argument) (plan, error) {
	if len(args) != 2 && len(args) != 3 {
		return plan{}, apperrors.ArityError{Function: function, Got: len(args)}
	}

	ordinals := [2]string{"first", "second"}
	for i, arg := range args[:2] {
		if arg.Kind != KindDecimal {
			return plan{}, apperrors.NewTypeError(function, "%s argument must be a decimal operand", ordinals[i])
		}
		if !arg.Type.Width.Valid() {
			return plan{}, apperrors.NewTypeError(function, "%s argument has unsupported width %d", ordinals[i], arg.Type.Width)
		}
		if err := checkStorage(function, ordinals[i], arg); err != nil {
			return plan{}, err
		}
	}
	a, b := args[0], args[1]

	resultScale := a.Type.Scale
	if b.Type.Scale > resultScale {
		resultScale = b.Type.Scale
	}
	if len(args) == 3 {
		third := args[2]
		if third.Kind != KindScale {
			return plan{}, apperrors.NewTypeError(function,
				"third argument must be a constant unsigned integer in range [0, %d]", decimal.MaxPrecision)
		}
		if third.Scale > decimal.MaxPrecision {
			return plan{}, apperrors.NewTypeError(function,
				"illegal value %d of third argument: must be integer in range [0, %d]", third.Scale, decimal.MaxPrecision)
		}
		resultScale = uint16(third.Scale)
	}

	var rows int
	switch {
	case a.Col != nil && b.Col != nil:
		if a.Col.Len() != b.Col.Len() {
			return plan{}, apperrors.NewTypeError(function,
				"operand row counts differ: %d vs %d", a.Col.Len(), b.Col.Len())
		}
		rows = a.Col.Len()
	case a.Col != nil:
		rows = a.Col.Len()
	case b.Col != nil:
		rows = b.Col.Len()
	default:
		return plan{}, apperrors.NewTypeError(function, "at least one operand must be an array")
	}

	return plan{a: a, b: b, rows: rows, resultType: decimal.ResultType(resultScale)}, nil
}

// checkStorage verifies that an operand's storage matches its declared width:
// an array column of the right element width, or a constant of the right
// native element type.
func checkStorage(function, ordinal string, arg Argument) error {
	if arg.Col != nil {
		if arg.Col.Width() != arg.Type.Width {
			return apperrors.NewTypeError(function,
				"%s argument column stores %s elements but is declared %s", ordinal, arg.Col.Width(), arg.Type.Width)
		}
		return nil
	}
	w, ok := decimal.ElementWidth(arg.Const)
	if !ok {
		return apperrors.NewTypeError(function, "%s argument constant has unsupported element type %T", ordinal, arg.Const)
	}
	if w != arg.Type.Width {
		return apperrors.NewTypeError(function,
			"%s argument constant is a %s element but is declared %s", ordinal, w, arg.Type.Width)
	}
	return nil
}

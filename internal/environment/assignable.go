package environment

import "github.com/brennacourt/plc/internal/plcerr"

// RequireAssignable reports whether a value of type actual may be stored
// into a slot declared as target, per the three fixed subtyping rules:
//
//   - target == Any accepts any actual type.
//   - target == Comparable accepts Integer, Decimal, Character, or String.
//   - otherwise actual must be nominally identical to target.
//
// There is no other subtyping in the language: no numeric widening, no
// structural matching on Fields/Methods.
func RequireAssignable(target, actual *Type) error {
	switch {
	case target == Any:
		return nil
	case target == Comparable:
		switch actual {
		case Integer, Decimal, Character, String:
			return nil
		default:
			return plcerr.NewTypeError("%s is not Comparable", actual.Name)
		}
	case target == actual:
		return nil
	default:
		return plcerr.NewTypeError("expected %s, found %s", target.Name, actual.Name)
	}
}

// Package approx provides tolerant floating-point comparison: a magnitude-aware
// tolerance model and a complete family of fuzzy relational predicates.
//
// 🚀 What is approx?
//
//	Two floating-point results of the same computation rarely compare equal
//	with ==. approx defines what "numerically equal" means for a given pair
//	of magnitudes and builds every useful relation on top of it:
//	  • Equal / NotEqual / Less / Greater / LessOrEqual / GreaterOrEqual
//	  • combined forms that also report a secondary flag in one comparison
//	  • the zero family: IsZero, IsPositive, IsNotNegative, …
//	  • tolerant intervals (bounded, semi-bounded, unbounded)
//	  • exact power-of-two checks for floats and integers
//
// ✨ Key ideas:
//
//   - Tolerance scales with operand magnitude: For(a, b) yields
//     eps·clamp(32·max(|a|,|b|), eps, maxFinite) — a fixed relative
//     tolerance in spirit, that never collapses to zero nor overflows.
//   - Magnitude values propagate through derived quantities via the
//     Add/Sub/Mul/Div combinators, so a tolerance can follow an expression.
//   - Every predicate exists in a convenience form (tolerance derived from
//     the operands) and an explicit ...Tol form.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlmath/approx"
//
//	if approx.Equal(sum, expected) { ... }
//
//	tol := approx.Mag(a, b).Mul(approx.Mag(c)).Tolerance()
//	if approx.LessTol(a*c, b*c, tol) { ... }
//
// Preconditions: Tol panics on a negative tolerance value — that is a
// programmer error, not a data condition. All predicates are total over
// finite inputs and are safe from any goroutine (the package holds no
// mutable state).
package approx

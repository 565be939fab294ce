// Package boolean provides the two valued logic used to branch on the
// results of equality and overflow queries.
package boolean

// Bool is either True or False.
type Bool bool

// Boolean values.
const (
	True  Bool = true
	False Bool = false
)

// Of converts a builtin bool.
func Of(b bool) Bool {
	return Bool(b)
}

func (b Bool) String() string {
	if b {
		return "True"
	}

	return "False"
}

// Eq returns True if a and b are the same value.
func Eq(a, b Bool) Bool {
	return a == b
}

// Not returns the negation of b.
func Not(b Bool) Bool {
	return !b
}

// If selects then when cond is True and els otherwise. Both branches are
// already computed; use IfFunc when a branch is expensive or only valid
// under its condition.
func If[T any](cond Bool, then, els T) T {
	if cond {
		return then
	}

	return els
}

// IfFunc evaluates and returns only the selected branch.
func IfFunc[T any](cond Bool, then, els func() T) T {
	if cond {
		return then()
	}

	return els()
}

// Package cnf defines the value types shared across pbcnf: literals,
// clauses, formulas and their basic validation, plus DIMACS emission.
//
// A Literal is a signed 32-bit variable reference: positive asserts the
// variable, negative negates it, and 0 is never a valid literal. A Clause
// is a disjunction of literals, and a Formula is an ordered conjunction of
// clauses together with the next-free-variable watermark produced by the
// encoding engine that built it.
package cnf

// Literal identifies a boolean variable and its polarity.
// The zero value is invalid; it is reserved as the DIMACS clause terminator.
type Literal = int32

// Weight is a signed coefficient paired positionally with a literal in
// weighted pseudo-boolean constraints.
type Weight = int64

// Variable is a variable index. Literals reference variables by absolute
// value, so Variable(abs(lit)) recovers the variable of a literal.
type Variable = int32

// Clause is an ordered disjunction of literals.
type Clause []Literal

// Formula is an ordered sequence of clauses plus the next free auxiliary
// variable after all variables the producing engine introduced.
//
// A Formula is produced fresh by every encoding call; it never accumulates
// across calls. NextFreeVar is strictly greater than every variable index
// referenced inside Clauses.
type Formula struct {
	Clauses     []Clause
	NextFreeVar Variable
}

// NumClauses returns the number of clauses in the formula.
func (f Formula) NumClauses() int {
	return len(f.Clauses)
}

// NumLiterals returns the total literal count across all clauses.
func (f Formula) NumLiterals() int {
	n := 0
	for _, c := range f.Clauses {
		n += len(c)
	}

	return n
}

// MaxVar returns the highest variable index referenced by any clause,
// or 0 if the formula has no literals.
func (f Formula) MaxVar() Variable {
	var maxVar Variable
	for _, c := range f.Clauses {
		for _, lit := range c {
			v := lit
			if v < 0 {
				v = -v
			}
			if v > maxVar {
				maxVar = v
			}
		}
	}

	return maxVar
}

// Neg returns the negation of the given literal.
func Neg(lit Literal) Literal {
	return -lit
}

// NegateAll returns a new slice containing the negation of every literal.
// The input slice is not modified.
func NegateAll(lits []Literal) []Literal {
	out := make([]Literal, len(lits))
	for i, lit := range lits {
		out[i] = -lit
	}

	return out
}

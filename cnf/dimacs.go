package cnf

import (
	"fmt"
	"io"
	"strings"
)

// WriteDIMACS writes the formula in DIMACS CNF format: a problem line
// followed by one line per clause, each terminated by 0.
//
// The variable count on the problem line is the larger of MaxVar and
// NextFreeVar-1, so auxiliary variables introduced by an engine are always
// declared even when a clause does not mention the highest one.
func (f Formula) WriteDIMACS(w io.Writer) error {
	numVars := f.MaxVar()
	if f.NextFreeVar > 0 && f.NextFreeVar-1 > numVars {
		numVars = f.NextFreeVar - 1
	}

	if _, err := fmt.Fprintf(w, "p cnf %d %d\n", numVars, len(f.Clauses)); err != nil {
		return err
	}

	for _, clause := range f.Clauses {
		for _, lit := range clause {
			if _, err := fmt.Fprintf(w, "%d ", lit); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "0\n"); err != nil {
			return err
		}
	}

	return nil
}

// DIMACS returns the formula rendered as a DIMACS CNF string.
func (f Formula) DIMACS() string {
	var builder strings.Builder
	// strings.Builder never returns a write error.
	_ = f.WriteDIMACS(&builder)

	return builder.String()
}

// Package astdump renders an ast.Node back into Go source text: the
// sequence of NewX constructor calls that would (re)build an
// equivalent tree. It exists purely as a debugging/CLI aid (the
// "reflective debug helper" the CLI driver prints alongside a
// pattern's parse and English rendering) — a small, focused helper
// package in the same spot internal/conv occupies in the layout this
// repo is adapted from.
package astdump

import (
	"fmt"
	"strings"

	"github.com/coregx/trimatch/ast"
)

// Dump renders n as the Go expression that constructs it.
func Dump(n *ast.Node) string {
	if n == nil {
		return "nil"
	}
	switch n.Kind {
	case ast.KindEpsilon:
		return "ast.Epsilon"
	case ast.KindNull:
		return "ast.Null"
	case ast.KindAnyChar:
		return "ast.AnyChar"
	case ast.KindChar:
		return fmt.Sprintf("ast.NewChar(%q)", n.Char)
	case ast.KindCharClass:
		return dumpCharClass(n)
	case ast.KindOr:
		return fmt.Sprintf("ast.NewOr(%s, %s)", Dump(n.Left), Dump(n.Right))
	case ast.KindSequence:
		return fmt.Sprintf("ast.NewSequence(%s, %s)", Dump(n.Left), Dump(n.Right))
	case ast.KindZeroOrMore:
		return fmt.Sprintf("ast.NewZeroOrMore(%s)", Dump(n.Left))
	case ast.KindOptional:
		return fmt.Sprintf("ast.NewOptional(%s)", Dump(n.Left))
	default:
		return fmt.Sprintf("<invalid kind %d>", n.Kind)
	}
}

// dumpCharClass writes members as ast.CharRange struct literals
// rather than re-invoking ast.NewCharRange: n already exists and is
// known-valid, so there is no construction error to thread through a
// debug string.
func dumpCharClass(n *ast.Node) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ast.NewCharClass(%v, []ast.Atom{", n.Invert)
	for i, m := range n.Members {
		if i > 0 {
			b.WriteString(", ")
		}
		if m.Range != nil {
			fmt.Fprintf(&b, "ast.AtomRange(ast.CharRange{Start: %q, End: %q})", m.Range.Start, m.Range.End)
		} else {
			fmt.Fprintf(&b, "ast.AtomChar(%q)", m.Char)
		}
	}
	b.WriteString("})")
	return b.String()
}

package ast

import (
	"strconv"
	"strings"
)

// ToEnglish renders r as a human-readable description, for
// diagnostics (the CLI driver prints one alongside the parsed
// pattern and AST dump). Its semantics mirror ToPattern's precedence
// and the a+ special case; it never fails, even on Null (unlike
// ToPattern), since "matches nothing" is itself a legitimate
// description.
func ToEnglish(r *Node) string {
	return describe(r)
}

func describe(n *Node) string {
	if base, ok := asPlus(n); ok {
		return "one or more of (" + describe(base) + ")"
	}
	switch n.Kind {
	case KindEpsilon:
		return "the empty string"
	case KindNull:
		return "nothing"
	case KindChar:
		return "the character " + strconv.QuoteRune(n.Char)
	case KindAnyChar:
		return "any character"
	case KindCharClass:
		return describeClass(n)
	case KindOr:
		return "either (" + describe(n.Left) + ") or (" + describe(n.Right) + ")"
	case KindSequence:
		return describe(n.Left) + " followed by " + describe(n.Right)
	case KindZeroOrMore:
		return "zero or more of (" + describe(n.Left) + ")"
	case KindOptional:
		return "optionally (" + describe(n.Left) + ")"
	default:
		return "?"
	}
}

func describeClass(n *Node) string {
	var b strings.Builder
	if n.Invert {
		b.WriteString("any character other than ")
	} else {
		b.WriteString("one of ")
	}
	for i, m := range n.Members {
		if i > 0 {
			b.WriteString(", ")
		}
		if m.Range != nil {
			b.WriteString(strconv.QuoteRune(m.Range.Start))
			b.WriteString(" through ")
			b.WriteString(strconv.QuoteRune(m.Range.End))
		} else {
			b.WriteString(strconv.QuoteRune(m.Char))
		}
	}
	return b.String()
}

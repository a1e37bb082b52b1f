// Command trimatch parses a pattern, compiles it, and reports how the
// three matchers (derivative, NFA, DFA) handle a subject string.
//
// Usage: trimatch <pattern> <subject>
package main

import (
	"fmt"
	"os"

	"github.com/coregx/trimatch"
	"github.com/coregx/trimatch/ast"
	"github.com/coregx/trimatch/internal/astdump"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: trimatch <pattern> <subject>\n")
		os.Exit(1)
	}

	pattern, subject := os.Args[1], os.Args[2]

	re, err := trimatch.Compile(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("pattern: %s\n", re.String())
	fmt.Printf("ast:     %s\n", astdump.Dump(re.AST()))
	fmt.Printf("english: %s\n", ast.ToEnglish(re.AST()))
	fmt.Printf("derivative match: %v\n", re.MatchDerivative(subject))
	fmt.Printf("nfa match:        %v\n", re.MatchNFA(subject))
	fmt.Printf("dfa match:        %v\n", re.MatchDFA(subject))
	fmt.Printf("subset matches:   %v\n", re.FindSubsetMatches(subject))
}

package srcparse

import "strings"

// preprocessIndentation rewrites Python-style significant-whitespace
// source into a token stream the grammar can consume without a
// stateful indentation-aware lexer: every logical line keeps its own
// text (leading whitespace stripped) and is terminated by the literal
// keyword "NEWLINE", and indentation changes become literal "INDENT"
// / "DEDENT" keywords. Blank lines and full-line comments are dropped;
// tabs are not supported (spaces only), and this is a test/demo
// convenience, not a general Python tokenizer.
func preprocessIndentation(src string) string {
	lines := strings.Split(src, "\n")
	stack := []int{0}
	var out strings.Builder

	for _, raw := range lines {
		trimmed := strings.TrimRight(raw, " \t\r")
		stripped := strings.TrimLeft(trimmed, " \t")
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}

		width := len(trimmed) - len(stripped)
		top := stack[len(stack)-1]
		switch {
		case width > top:
			stack = append(stack, width)
			out.WriteString(" INDENT ")
		case width < top:
			for len(stack) > 1 && stack[len(stack)-1] > width {
				stack = stack[:len(stack)-1]
				out.WriteString(" DEDENT ")
			}
		}

		out.WriteString(stripped)
		out.WriteString(" NEWLINE\n")
	}

	for len(stack) > 1 {
		stack = stack[:len(stack)-1]
		out.WriteString(" DEDENT ")
	}

	return out.String()
}

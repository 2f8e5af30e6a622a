// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rewrite converts reference-style markdown links into
// inline-style links. It is a pure text transform: no I/O, no state
// between calls, and no error conditions for any input string.
package rewrite

import (
	"regexp"
	"strings"
)

var (
	// definitionRe matches a reference definition line like
	// [openai-ref]: https://openai.com
	definitionRe = regexp.MustCompile(`(?m)^\[([^\]]+)\]:\s*(.+)$`)

	// usageRe matches a reference-style link usage like [OpenAI][openai-ref].
	usageRe = regexp.MustCompile(`\[([^\]]+)\]\[([^\]]+)\]`)
)

// ReferenceTable maps a reference key, as it literally appears between
// brackets, to its target URL. Keys are case-sensitive; when a key is
// defined more than once the last definition wins.
type ReferenceTable map[string]string

// References collects every reference definition in doc. Targets keep
// embedded content verbatim; trailing whitespace is trimmed.
func References(doc string) ReferenceTable {
	table := make(ReferenceTable)
	for _, m := range definitionRe.FindAllStringSubmatch(doc, -1) {
		table[m[1]] = strings.TrimRight(m[2], " \t\r")
	}
	return table
}

// Rewrite converts every resolvable reference-style link in doc to
// inline form and strips the definition lines. The boolean reports
// whether any reference definitions were found; when it is false the
// document is returned unchanged and there was nothing to convert.
func Rewrite(doc string) (string, bool) {
	table := References(doc)
	if len(table) == 0 {
		return doc, false
	}
	return Apply(doc, table), true
}

// Apply rewrites usages against an already-extracted table, removes
// the remaining definition lines, and trims leading and trailing
// whitespace from the result. Usages whose key has no definition are
// left byte-identical. Unreferenced definitions are still removed.
func Apply(doc string, table ReferenceTable) string {
	out := substitute(doc, table)
	// Definition lines are blanked in place; the line's newline survives.
	out = definitionRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

// substitute replaces each resolvable [text][ref] usage with
// [text](url), splicing around unresolvable ones.
func substitute(doc string, table ReferenceTable) string {
	matches := usageRe.FindAllStringSubmatchIndex(doc, -1)
	if len(matches) == 0 {
		return doc
	}

	var b strings.Builder
	b.Grow(len(doc))
	last := 0
	for _, m := range matches {
		text := doc[m[2]:m[3]]
		key := doc[m[4]:m[5]]
		url, ok := table[key]
		if !ok {
			continue
		}
		b.WriteString(doc[last:m[0]])
		b.WriteString("[")
		b.WriteString(text)
		b.WriteString("](")
		b.WriteString(url)
		b.WriteString(")")
		last = m[1]
	}
	b.WriteString(doc[last:])
	return b.String()
}

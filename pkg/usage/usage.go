// Copyright (c) 2025 The humane authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package usage recognizes command line option syntax, environment
// variable references and meta variables inside free-form usage text and
// rewrites the matched spans through a caller supplied transform.
package usage

import (
	"regexp"
	"sort"
	"strings"
)

// tokenPattern recognizes, in priority order: a short option (-v) or
// long option (--verbose, --format-size=VALUE), an environment variable
// ($HOME) and a candidate meta variable (an all-uppercase word of at
// least two characters). RE2 has no lookbehind, so the requirement that
// a token is not immediately preceded by a non-whitespace character is
// expressed as a captured boundary group.
var tokenPattern = regexp.MustCompile(
	`(?m)(^|\s)((?:-\w|--\w+(?:-\w+)*(?:=\S+)?)|\$[A-Za-z_][A-Za-z0-9_]*|[A-Z][A-Z0-9_]+)`)

// metaVariablePattern recognizes the candidate meta variable shape on its own.
var metaVariablePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]+$`)

// FindMetaVariables finds the meta variables in a usage message: when a
// command line option takes an argument the convention is to write it as
// --option=ARG, and ARG is the meta variable. The returned names are
// sorted and deduplicated.
func FindMetaVariables(usageText string) []string {
	seen := make(map[string]struct{})
	for _, match := range tokenPattern.FindAllStringSubmatch(usageText, -1) {
		token := match[2]
		if strings.HasPrefix(token, "-") {
			if _, value, ok := strings.Cut(token, "="); ok && value != "" {
				seen[value] = struct{}{}
			}
		}
	}
	variables := make([]string, 0, len(seen))
	for v := range seen {
		variables = append(variables, v)
	}
	sort.Strings(variables)
	return variables
}

// FormatUsage rewrites the special items of a usage message through the
// highlight function: the initial "Usage: ..." line as a whole, command
// line options, environment variables and meta variables. An uppercase
// word that never appears as the VALUE part of an --option=VALUE form is
// left untouched, so incidental all-caps prose is not rewritten.
func FormatUsage(usageText string, highlight func(string) string) string {
	metaVariables := FindMetaVariables(usageText)
	lines := strings.Split(strings.TrimSpace(usageText), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "Usage:") {
			lines[i] = highlight(line)
		} else {
			lines[i] = replaceTokens(line, metaVariables, highlight)
		}
	}
	return strings.Join(lines, "\n")
}

// replaceTokens rewrites every token of the usage grammar in text via
// replace, except uppercase words that are not known meta variables.
func replaceTokens(text string, metaVariables []string, replace func(string) string) string {
	var out strings.Builder
	last := 0
	for _, loc := range tokenPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[4], loc[5] // token group, boundary group excluded
		token := text[start:end]
		out.WriteString(text[last:start])
		if metaVariablePattern.MatchString(token) && !contains(metaVariables, token) {
			out.WriteString(token)
		} else {
			out.WriteString(replace(token))
		}
		last = end
	}
	out.WriteString(text[last:])
	return out.String()
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}

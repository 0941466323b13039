package main

import (
	"regexp"
	"strings"
)

// $var or ${var}
var varRef = regexp.MustCompile(`\$\w+|\$\{[^}]+\}`)

// VarRefs returns the names of the ninja variables text refers to, in order
// of appearance. "$$" is ninja's escaped dollar and refers to nothing.
func VarRefs(text string) []string {
	text = strings.ReplaceAll(text, "$$", " ")

	var names []string
	for _, m := range varRef.FindAllString(text, -1) {
		name := strings.TrimPrefix(m, "$")
		name = strings.Trim(name, "{}")
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

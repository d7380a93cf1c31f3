// Package vocab holds the fixed vocabulary the lexer classifies identifiers
// against: the known HTML element names and the known CSS property names.
// Both sets are loaded once from embedded resource data and never mutated.
package vocab

import (
	_ "embed"
	"strings"
)

//go:embed resources/html_elements.txt
var htmlElementsData string

//go:embed resources/css_properties.txt
var cssPropertiesData string

var (
	htmlElements  = makeSet(htmlElementsData)
	cssProperties = makeSet(cssPropertiesData)
)

func makeSet(data string) map[string]bool {
	set := make(map[string]bool)
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		set[line] = true
	}
	return set
}

// IsHTMLElement reports whether name is a known HTML element. Names in the
// set are lowercase; callers pass a lowercased name.
func IsHTMLElement(name string) bool {
	return htmlElements[name]
}

// IsCSSProperty reports whether name is a known CSS property.
func IsCSSProperty(name string) bool {
	return cssProperties[name]
}

package format

import (
	"fmt"
	"strings"
)

// Style selects the array literal syntax.
type Style uint8

const (
	// StyleBracket prints ["a", "b"].
	StyleBracket Style = iota
	// StyleGo prints [2]string{"a", "b"}; mutable arrays print as []string{...}.
	StyleGo
)

func (s Style) String() string {
	switch s {
	case StyleBracket:
		return "bracket"
	case StyleGo:
		return "go"
	}
	return "Style(?)"
}

// ParseStyle parses a style name as written in config and flags.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "bracket":
		return StyleBracket, nil
	case "go":
		return StyleGo, nil
	}
	return StyleBracket, fmt.Errorf("unknown emit style %q (want bracket or go)", name)
}

type Options struct {
	Style Style
	// Multiline puts every element on its own line with a trailing comma.
	Multiline   bool
	UseTabs     bool
	IndentWidth int
	// Indent is the indentation level of the line the array starts on.
	Indent int
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	if o.Indent < 0 {
		o.Indent = 0
	}
	return o
}

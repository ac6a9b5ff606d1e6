// Package guide provides access to the embedded rule reference pages shown
// by "datalint rules".
package guide

import (
	"embed"
	"strings"
)

//go:embed *.md
var files embed.FS

// Get returns the content of a page by name. If name is empty the default
// "rules" overview is returned.
func Get(name string) (string, error) {
	if name == "" {
		name = "rules"
	}
	data, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the available topic names (without the .md suffix),
// excluding the default overview.
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name != "rules" {
			names = append(names, name)
		}
	}
	return names, nil
}

// Package docs embeds the help topics shipped with the abc command.
package docs

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed *.md
var pages embed.FS

// Topics returns the names of the embedded topics, sorted. The readme is the
// index of the topics, not a topic itself.
func Topics() ([]string, error) {
	entries, err := pages.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == e.Name() || name == "readme" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Get returns the content of the named topics, concatenated in order. The
// name "*" expands to every topic.
func Get(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		if name == "*" {
			all, err := Topics()
			if err != nil {
				return "", err
			}
			expanded, err := Get(all...)
			if err != nil {
				return "", err
			}
			b.WriteString(expanded)
			continue
		}
		content, err := pages.ReadFile(name + ".md")
		if err != nil {
			return "", fmt.Errorf("no help topic %q, see 'abc topic readme' for the list", name)
		}
		b.Write(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

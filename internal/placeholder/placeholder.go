// Package placeholder resolves the named tokens allowed in input path
// patterns, e.g. {HOME} or {ENV:LANG}. The registry is read-only at
// resolution time: values are fixed when the process starts.
package placeholder

import (
	"os"
	"sort"
	"strings"
	"sync"
)

const envPrefix = "{ENV:"

var (
	once   sync.Once
	values map[string]string
)

func registry() map[string]string {
	once.Do(func() {
		values = map[string]string{}
		if home, err := os.UserHomeDir(); err == nil {
			values["HOME"] = home
		}
		if cwd, err := os.Getwd(); err == nil {
			values["CWD"] = cwd
		}
		values["TMP"] = os.TempDir()
	})
	return values
}

// Expand replaces every known {NAME} token in s. {ENV:NAME} expands to the
// environment variable NAME, empty when unset. Unknown tokens are left
// untouched.
func Expand(s string) string {
	if !strings.Contains(s, "{") {
		return s
	}
	for name, value := range registry() {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	for {
		start := strings.Index(s, envPrefix)
		if start < 0 {
			break
		}
		end := strings.Index(s[start:], "}")
		if end < 0 {
			break
		}
		name := s[start+len(envPrefix) : start+end]
		s = s[:start] + os.Getenv(name) + s[start+end+1:]
	}
	return s
}

// List returns the supported placeholder tokens for help text.
func List() []string {
	names := make([]string, 0, len(registry())+1)
	for name := range registry() {
		names = append(names, "{"+name+"}")
	}
	names = append(names, envPrefix+"NAME}")
	sort.Strings(names)
	return names
}

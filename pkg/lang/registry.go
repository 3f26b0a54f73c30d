package lang

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Dialect registry. Populated by init() in builtin.go and read-only
// afterwards.
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// UnsupportedDialectError is returned when a language name does not
// resolve to a registered dialect. It carries the offending name for
// diagnostics.
type UnsupportedDialectError struct {
	Name string
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("unsupported language: %q", e.Name)
}

// Register registers a dialect under its name and all of its aliases.
// Called by builtin dialect declarations in their init() function.
func Register(d *Dialect) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.Name)] = d
	for _, alias := range d.Aliases {
		dialects[strings.ToLower(alias)] = d
	}
}

// Lookup resolves a dialect by name, case-insensitively.
func Lookup(name string) (*Dialect, error) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	if !ok {
		return nil, &UnsupportedDialectError{Name: name}
	}
	return d, nil
}

// List returns all registered names, aliases included, sorted.
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

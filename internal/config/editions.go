// internal/config/editions.go
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EditionSelector implements pflag.Value for the repeatable -vsnCCC=EDITION
// flag (§6): each occurrence pins one category to one edition string, the
// same textual version the reference document uses (e.g. "1.32"). It
// generalizes idefix's fixed DumpCat0NN bool flags to an arbitrary
// category/edition map, so adding a category never touches the CLI layer.
type EditionSelector struct {
	editions map[uint8]string
}

// NewEditionSelector creates an empty selector.
func NewEditionSelector() *EditionSelector {
	return &EditionSelector{editions: make(map[uint8]string)}
}

// String implements pflag.Value.
func (e *EditionSelector) String() string {
	if e == nil || len(e.editions) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.editions))
	for cat, ed := range e.editions {
		parts = append(parts, fmt.Sprintf("vsn%03d=%s", cat, ed))
	}
	return strings.Join(parts, ",")
}

// Set implements pflag.Value. It accepts "vsnCCC=EDITION" (the flag's own
// spelling, for --flag=value forms) or bare "CCC=EDITION".
func (e *EditionSelector) Set(raw string) error {
	spec := strings.TrimPrefix(raw, "vsn")
	parts := strings.SplitN(spec, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid edition selector %q, want vsnCCC=EDITION", raw)
	}
	cat, err := strconv.Atoi(parts[0])
	if err != nil || cat < 0 || cat > 255 {
		return fmt.Errorf("invalid category %q in %q", parts[0], raw)
	}
	edition := strings.TrimSpace(parts[1])
	if edition == "" {
		return fmt.Errorf("empty edition in %q", raw)
	}
	e.editions[uint8(cat)] = edition
	return nil
}

// Type implements pflag.Value.
func (e *EditionSelector) Type() string {
	return "vsnCCC=EDITION"
}

// Lookup returns the edition pinned for a category, if any.
func (e *EditionSelector) Lookup(cat uint8) (string, bool) {
	if e == nil {
		return "", false
	}
	ed, ok := e.editions[cat]
	return ed, ok
}

// Categories lists every category with a pinned edition.
func (e *EditionSelector) Categories() []uint8 {
	cats := make([]uint8, 0, len(e.editions))
	for cat := range e.editions {
		cats = append(cats, cat)
	}
	return cats
}

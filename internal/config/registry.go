// internal/config/registry.go
package config

import (
	"fmt"
	"sort"

	"github.com/surveillance-tools/panoramix/asterix"
	"github.com/surveillance-tools/panoramix/cat/cat001"
	"github.com/surveillance-tools/panoramix/cat/cat002"
	"github.com/surveillance-tools/panoramix/cat/cat010"
	"github.com/surveillance-tools/panoramix/cat/cat011"
	"github.com/surveillance-tools/panoramix/cat/cat020"
	"github.com/surveillance-tools/panoramix/cat/cat021"
	"github.com/surveillance-tools/panoramix/cat/cat023"
	"github.com/surveillance-tools/panoramix/cat/cat034"
	"github.com/surveillance-tools/panoramix/cat/cat048"
	"github.com/surveillance-tools/panoramix/cat/cat062"
	"github.com/surveillance-tools/panoramix/cat/cat063"
	"github.com/surveillance-tools/panoramix/cat/cat247"
)

// categoryPlugin adapts one category package's NewUAP/LatestVersion pair
// (idefix/internal/decoder's CreateDecoder wired one bool flag per
// category; here every package is entered once, generically).
type categoryPlugin struct {
	category uint8
	newUAP   func(version string) (asterix.UAP, error)
	latest   func() string
}

var registry = []categoryPlugin{
	{1, cat001.NewUAP, cat001.LatestVersion},
	{2, cat002.NewUAP, cat002.LatestVersion},
	{10, cat010.NewUAP, cat010.LatestVersion},
	{11, cat011.NewUAP, cat011.LatestVersion},
	{20, cat020.NewUAP, cat020.LatestVersion},
	{21, cat021.NewUAP, cat021.LatestVersion},
	{23, cat023.NewUAP, cat023.LatestVersion},
	{34, cat034.NewUAP, cat034.LatestVersion},
	{48, cat048.NewUAP, cat048.LatestVersion},
	{62, cat062.NewUAP, cat062.LatestVersion},
	{63, cat063.NewUAP, cat063.LatestVersion},
	{247, cat247.NewUAP, cat247.LatestVersion},
}

// KnownCategories lists every category this build can decode, in
// ascending order (used by the `list` subcommand).
func KnownCategories() []uint8 {
	cats := make([]uint8, 0, len(registry))
	for _, p := range registry {
		cats = append(cats, p.category)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// BuildDecoder registers one UAP per requested category, pinned to the
// edition the selector names, or to that category's latest edition
// otherwise. An empty want registers every known category. This is the
// generalization of idefix/internal/decoder.CreateDecoder's per-category
// bool-flag fan-out.
func BuildDecoder(want []uint8, sel *EditionSelector) (*asterix.Decoder, error) {
	decoder, err := asterix.NewDecoder()
	if err != nil {
		return nil, fmt.Errorf("creating decoder: %w", err)
	}

	wanted := func(cat uint8) bool {
		if len(want) == 0 {
			return true
		}
		for _, c := range want {
			if c == cat {
				return true
			}
		}
		return false
	}

	registered := 0
	for _, p := range registry {
		if !wanted(p.category) {
			continue
		}
		version := p.latest()
		if sel != nil {
			if ed, ok := sel.Lookup(p.category); ok {
				version = ed
			}
		}
		uap, err := p.newUAP(version)
		if err != nil {
			return nil, fmt.Errorf("%w: category %d edition %s: %v", asterix.ErrUnsupportedEdition, p.category, version, err)
		}
		if err := decoder.RegisterUAP(uap); err != nil {
			return nil, fmt.Errorf("registering category %d: %w", p.category, err)
		}
		registered++
	}

	if registered == 0 {
		return nil, fmt.Errorf("%w: no categories selected", asterix.ErrUnknownDataFormat)
	}

	return decoder, nil
}

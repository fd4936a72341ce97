// cat/cat023/version.go
package cat023

import (
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
	"github.com/surveillance-tools/panoramix/cat/cat023/uap"
)

// Version constants
const (
	Version126 = "1.26"
)

// NewUAP returns the UAP for the specified version of CAT023
func NewUAP(version string) (asterix.UAP, error) {
	switch version {
	case Version126:
		return uap.NewUAP126()
	default:
		return nil, fmt.Errorf("unsupported CAT023 version: %s", version)
	}
}

// LatestVersion returns the latest available version
func LatestVersion() string {
	return Version126
}

// AvailableVersions returns all supported versions
func AvailableVersions() []string {
	return []string{Version126}
}

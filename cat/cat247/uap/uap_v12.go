// cat/cat247/uap/uap_v12.go
package uap

import (
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
	v12 "github.com/surveillance-tools/panoramix/cat/cat247/dataitems/v12"
	common "github.com/surveillance-tools/panoramix/cat/common/dataitems"
)

// UAP12 implements the User Application Profile for ASTERIX Category 247
// v1.2 - Version Number Exchange, the handshake peers use to announce
// which category editions they speak.
type UAP12 struct {
	*asterix.BaseUAP
}

// NewUAP12 creates a new instance of the Category 247 v1.2 UAP.
func NewUAP12() (*UAP12, error) {
	base, err := asterix.NewBaseUAP(asterix.Cat247, "1.2", cat247Fields)
	if err != nil {
		return nil, err
	}

	return &UAP12{BaseUAP: base}, nil
}

// CreateDataItem creates a new instance of a Cat247 data item.
func (u *UAP12) CreateDataItem(id string) (asterix.DataItem, error) {
	switch id {
	case "I247/010":
		return &common.DataSourceIdentifier{}, nil
	case "I247/015":
		return &common.ServiceIdentification{}, nil
	case "I247/140":
		return &common.TimeOfDay{}, nil
	case "I247/550":
		return v12.NewVersionNumberReport(), nil
	default:
		return nil, fmt.Errorf("%w: %s", asterix.ErrUnknownDataItem, id)
	}
}

// Validate implements validation for Cat247.
func (u *UAP12) Validate(items map[string]asterix.DataItem) error {
	return u.BaseUAP.Validate(items)
}

// cat247Fields defines the complete UAP for Category 247 v1.2.
var cat247Fields = []asterix.DataField{
	{
		FRN:         1,
		DataItem:    "I247/010",
		Description: "Data Source Identifier",
		Type:        asterix.Fixed,
		Length:      2,
		Mandatory:   true,
	},
	{
		FRN:         2,
		DataItem:    "I247/015",
		Description: "Service Identification",
		Type:        asterix.Fixed,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         3,
		DataItem:    "I247/140",
		Description: "Time of Day",
		Type:        asterix.Fixed,
		Length:      3,
		Mandatory:   false,
	},
	{
		FRN:         4,
		DataItem:    "I247/550",
		Description: "Category Version Number Report",
		Type:        asterix.Repetitive,
		Length:      3,
		Mandatory:   true,
	},
}

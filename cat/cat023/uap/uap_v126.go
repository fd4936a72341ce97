// cat/cat023/uap/uap_v126.go
package uap

import (
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
	v126 "github.com/surveillance-tools/panoramix/cat/cat023/dataitems/v126"
	common "github.com/surveillance-tools/panoramix/cat/common/dataitems"
)

// UAP126 implements the User Application Profile for ASTERIX Category 023
// v1.26 - CNS/ATM Ground Station and Service Status reports.
type UAP126 struct {
	*asterix.BaseUAP
}

// NewUAP126 creates a new instance of the Category 023 v1.26 UAP.
func NewUAP126() (*UAP126, error) {
	base, err := asterix.NewBaseUAP(asterix.Cat023, "1.26", cat023Fields)
	if err != nil {
		return nil, err
	}

	return &UAP126{BaseUAP: base}, nil
}

// CreateDataItem creates a new instance of a Cat023 data item.
func (u *UAP126) CreateDataItem(id string) (asterix.DataItem, error) {
	switch id {
	case "I023/000":
		return v126.NewReportType(), nil
	case "I023/010":
		return &common.DataSourceIdentifier{}, nil
	case "I023/015":
		return v126.NewServiceTypeIdentification(), nil
	case "I023/070":
		return &common.TimeOfDay{}, nil
	case "I023/100":
		return v126.NewGroundStationStatus(), nil
	case "I023/110":
		return v126.NewServiceStatus(), nil
	case "I023/120":
		return v126.NewServiceStatistics(), nil
	case "RE023":
		return &v126.ReservedExpansion{}, nil
	case "SP023":
		return &v126.SpecialPurpose{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", asterix.ErrUnknownDataItem, id)
	}
}

// Validate implements validation for Cat023.
func (u *UAP126) Validate(items map[string]asterix.DataItem) error {
	return u.BaseUAP.Validate(items)
}

// cat023Fields defines the complete UAP for Category 023 v1.26, per
// the reference document's first-edition field-reference order.
var cat023Fields = []asterix.DataField{
	{
		FRN:         1,
		DataItem:    "I023/000",
		Description: "Report Type",
		Type:        asterix.Fixed,
		Length:      1,
		Mandatory:   true,
	},
	{
		FRN:         2,
		DataItem:    "I023/010",
		Description: "Data Source Identifier",
		Type:        asterix.Fixed,
		Length:      2,
		Mandatory:   true,
	},
	{
		FRN:         3,
		DataItem:    "I023/015",
		Description: "Service Type and Identification",
		Type:        asterix.Fixed,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         4,
		DataItem:    "I023/070",
		Description: "Time of Day",
		Type:        asterix.Fixed,
		Length:      3,
		Mandatory:   false,
	},
	{
		FRN:         5,
		DataItem:    "I023/100",
		Description: "Ground Station Status",
		Type:        asterix.Variable,
		Mandatory:   false,
	},
	{
		FRN:         6,
		DataItem:    "I023/110",
		Description: "Service Status",
		Type:        asterix.Variable,
		Mandatory:   false,
	},
	{
		FRN:         7,
		DataItem:    "I023/120",
		Description: "Service Statistics",
		Type:        asterix.Repetitive,
		Length:      6,
		Mandatory:   false,
	},
	{
		FRN:         13,
		DataItem:    "RE023",
		Description: "Reserved Expansion Field",
		Type:        asterix.Immediate,
		Mandatory:   false,
	},
	{
		FRN:         14,
		DataItem:    "SP023",
		Description: "Special Purpose Field",
		Type:        asterix.Immediate,
		Mandatory:   false,
	},
}

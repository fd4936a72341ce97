// dataitems/cat062/uap_v117.go
package uap

import (
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
	cat062 "github.com/surveillance-tools/panoramix/cat/cat062/dataitems/v117"
	common "github.com/surveillance-tools/panoramix/cat/common/dataitems"
)

// UAP062v117 implements the User Application Profile for ASTERIX Category
// 062 edition 1.17.
type UAP062v117 struct {
	*asterix.BaseUAP
}

// NewUAP117 creates a new instance of the Category 062 UAP version 1.17.
// Edition 1.17 predates Mode 5 Data Reports (I062/110), Track Mode 2 Code
// (I062/120), the split geometric/barometric altitude items (I062/130,
// I062/135), Measured Flight Level (I062/136), Target Identification
// (I062/245) and Composed Track Number (I062/510) - all introduced in
// later editions.
func NewUAP117() (*UAP062v117, error) {
	base, err := asterix.NewBaseUAP(asterix.Cat062, "1.17", cat062FieldsV117)
	if err != nil {
		return nil, err
	}

	return &UAP062v117{
		BaseUAP: base,
	}, nil
}

// cat062ConstructorsV117 maps each Cat062 (1.17) data item identifier to a
// constructor for its decoded representation.
var cat062ConstructorsV117 = map[string]func() asterix.DataItem{
	"I062/010": func() asterix.DataItem { return &common.DataSourceIdentifier{} },
	"I062/015": func() asterix.DataItem { return &common.ServiceIdentification{} },
	"I062/040": func() asterix.DataItem { return &cat062.TrackNumber{} },
	"I062/060": func() asterix.DataItem { return &cat062.TrackMode3ACode{} },
	"I062/070": func() asterix.DataItem { return &cat062.TimeOfTrackInformation{} },
	"I062/080": func() asterix.DataItem { return &cat062.TrackStatus{} },
	"I062/100": func() asterix.DataItem { return &cat062.CalculatedTrackPositionCartesian{} },
	"I062/105": func() asterix.DataItem { return &cat062.CalculatedPositionWGS84{} },
	"I062/185": func() asterix.DataItem { return &cat062.CalculatedTrackVelocity{} },
	"I062/200": func() asterix.DataItem { return &cat062.ModeOfMovement{} },
	"I062/210": func() asterix.DataItem { return &cat062.CalculatedAcceleration{} },
	"I062/220": func() asterix.DataItem { return &cat062.CalculatedRateOfClimbDescent{} },
	"I062/270": func() asterix.DataItem { return &cat062.TargetSizeOrientation{} },
	"I062/290": func() asterix.DataItem { return &cat062.SystemTrackUpdateAges{} },
	"I062/295": func() asterix.DataItem { return &cat062.TrackDataAges{} },
	"I062/300": func() asterix.DataItem { return &cat062.VehicleFleetIdentification{} },
	"I062/340": func() asterix.DataItem { return &cat062.MeasuredInformation{} },
	"I062/380": func() asterix.DataItem { return &cat062.AircraftDerivedData{} },
	"I062/390": func() asterix.DataItem { return &cat062.FlightPlanRelatedData{} },
	"I062/500": func() asterix.DataItem { return &cat062.EstimatedAccuracies{} },
	"RE062":    func() asterix.DataItem { return &cat062.ReservedExpansion{} },
	"SP062":    func() asterix.DataItem { return &cat062.SpecialPurpose{} },
}

// CreateDataItem creates a new instance of a Cat062 (1.17) data item.
func (u *UAP062v117) CreateDataItem(id string) (asterix.DataItem, error) {
	ctor, ok := cat062ConstructorsV117[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", asterix.ErrUnknownDataItem, id)
	}
	return ctor(), nil
}

// Validate implements critical validations for Cat062 edition 1.17.
func (u *UAP062v117) Validate(items map[string]asterix.DataItem) error {
	return u.BaseUAP.Validate(items)
}

// cat062FieldsV117 defines the UAP for Category 062 edition 1.17.
var cat062FieldsV117 = []asterix.DataField{
	{
		FRN:         1,
		DataItem:    "I062/010",
		Description: "Data Source Identifier",
		Type:        asterix.Fixed,
		Length:      2,
		Mandatory:   true,
	},
	{
		FRN:         2,
		DataItem:    "",
		Description: "Spare",
		Type:        asterix.Fixed,
		Length:      0,
		Mandatory:   false,
	},
	{
		FRN:         3,
		DataItem:    "I062/015",
		Description: "Service Identification",
		Type:        asterix.Fixed,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         4,
		DataItem:    "I062/070",
		Description: "Time Of Track Information",
		Type:        asterix.Fixed,
		Length:      3,
		Mandatory:   true,
	},
	{
		FRN:         5,
		DataItem:    "I062/105",
		Description: "Calculated Position in WGS-84 Co-ordinates",
		Type:        asterix.Fixed,
		Length:      8,
		Mandatory:   false,
	},
	{
		FRN:         6,
		DataItem:    "I062/100",
		Description: "Calculated Track Position (Cartesian)",
		Type:        asterix.Fixed,
		Length:      6,
		Mandatory:   false,
	},
	{
		FRN:         7,
		DataItem:    "I062/185",
		Description: "Calculated Track Velocity (Cartesian)",
		Type:        asterix.Fixed,
		Length:      4,
		Mandatory:   false,
	},
	{
		FRN:         8,
		DataItem:    "I062/210",
		Description: "Calculated Acceleration (Cartesian)",
		Type:        asterix.Fixed,
		Length:      2,
		Mandatory:   false,
	},
	{
		FRN:         9,
		DataItem:    "I062/060",
		Description: "Track Mode 3/A Code",
		Type:        asterix.Fixed,
		Length:      2,
		Mandatory:   false,
	},
	{
		FRN:         10,
		DataItem:    "I062/380",
		Description: "Aircraft Derived Data",
		Type:        asterix.Immediate,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         11,
		DataItem:    "I062/040",
		Description: "Track Number",
		Type:        asterix.Fixed,
		Length:      2,
		Mandatory:   true,
	},
	{
		FRN:         12,
		DataItem:    "I062/080",
		Description: "Track Status",
		Type:        asterix.Variable,
		Length:      1,
		Mandatory:   true,
	},
	{
		FRN:         13,
		DataItem:    "I062/290",
		Description: "System Track Update Ages",
		Type:        asterix.Immediate,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         14,
		DataItem:    "I062/200",
		Description: "Mode of Movement",
		Type:        asterix.Fixed,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         15,
		DataItem:    "I062/295",
		Description: "Track Data Ages",
		Type:        asterix.Immediate,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         16,
		DataItem:    "I062/220",
		Description: "Calculated Rate Of Climb/Descent",
		Type:        asterix.Fixed,
		Length:      2,
		Mandatory:   false,
	},
	{
		FRN:         17,
		DataItem:    "I062/390",
		Description: "Flight Plan Related Data",
		Type:        asterix.Immediate,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         18,
		DataItem:    "I062/270",
		Description: "Target Size & Orientation",
		Type:        asterix.Variable,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         19,
		DataItem:    "I062/300",
		Description: "Vehicle Fleet Identification",
		Type:        asterix.Fixed,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         20,
		DataItem:    "I062/500",
		Description: "Estimated Accuracies",
		Type:        asterix.Immediate,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         21,
		DataItem:    "I062/340",
		Description: "Measured Information",
		Type:        asterix.Immediate,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         22,
		DataItem:    "",
		Description: "Spare",
		Type:        asterix.Fixed,
		Length:      0,
		Mandatory:   false,
	},
	{
		FRN:         23,
		DataItem:    "",
		Description: "Spare",
		Type:        asterix.Fixed,
		Length:      0,
		Mandatory:   false,
	},
	{
		FRN:         24,
		DataItem:    "",
		Description: "Spare",
		Type:        asterix.Fixed,
		Length:      0,
		Mandatory:   false,
	},
	{
		FRN:         25,
		DataItem:    "",
		Description: "Spare",
		Type:        asterix.Fixed,
		Length:      0,
		Mandatory:   false,
	},
	{
		FRN:         26,
		DataItem:    "",
		Description: "Spare",
		Type:        asterix.Fixed,
		Length:      0,
		Mandatory:   false,
	},
	{
		FRN:         27,
		DataItem:    "RE062",
		Description: "Reserved Expansion Field",
		Type:        asterix.Immediate,
		Length:      0,
		Mandatory:   false,
	},
	{
		FRN:         28,
		DataItem:    "SP062",
		Description: "Special Purpose Field",
		Type:        asterix.Immediate,
		Length:      0,
		Mandatory:   false,
	},
}

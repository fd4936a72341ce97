// cat/cat063/uap/uap_v16.go
package uap

import (
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
	v16 "github.com/surveillance-tools/panoramix/cat/cat063/dataitems/v16"
	common "github.com/surveillance-tools/panoramix/cat/common/dataitems"
)

// UAP063 implements the User Application Profile for ASTERIX Category 063
type UAP063 struct {
	*asterix.BaseUAP
}

// NewUAP063 creates a new instance of the Category 063 UAP
func NewUAP063() (*UAP063, error) {
	base, err := asterix.NewBaseUAP(asterix.Cat063, "1.6", cat063Fields)
	if err != nil {
		return nil, err
	}

	return &UAP063{
		BaseUAP: base,
	}, nil
}

// cat063Constructors maps each Cat063 data item identifier to a constructor
// for its decoded representation.
var cat063Constructors = map[string]func() asterix.DataItem{
	"I063/010": func() asterix.DataItem { return &common.DataSourceIdentifier{} },
	"I063/015": func() asterix.DataItem { return &common.ServiceIdentification{} },
	"I063/030": func() asterix.DataItem { return &v16.TimeOfMessage{} },
	"I063/050": func() asterix.DataItem { return &v16.SensorIdentifier{} },
	"I063/060": func() asterix.DataItem { return &v16.SensorConfigurationAndStatus{} },
	"I063/070": func() asterix.DataItem { return &v16.TimeStampingBias{} },
	"I063/080": func() asterix.DataItem { return &v16.SSRModeSRangeGainAndBias{} },
	"I063/081": func() asterix.DataItem { return &v16.SSRModeSAzimuthBias{} },
	"I063/090": func() asterix.DataItem { return &v16.PSRRangeGainAndBias{} },
	"I063/091": func() asterix.DataItem { return &v16.PSRAzimuthBias{} },
	"I063/092": func() asterix.DataItem { return &v16.PSRElevationBias{} },
	"RE063":    func() asterix.DataItem { return &v16.ReservedExpansion{} },
	"SP063":    func() asterix.DataItem { return &v16.SpecialPurpose{} },
}

// CreateDataItem creates a new instance of a Cat063 data item
func (u *UAP063) CreateDataItem(id string) (asterix.DataItem, error) {
	ctor, ok := cat063Constructors[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", asterix.ErrUnknownDataItem, id)
	}
	return ctor(), nil
}

// Validate implements critical validations for Cat063
func (u *UAP063) Validate(items map[string]asterix.DataItem) error {
	// First do base validation (mandatory fields)
	if err := u.BaseUAP.Validate(items); err != nil {
		return err
	}

	// Check for the mandatory items according to the specification
	_, dataSourceExists := items["I063/010"]
	_, timeOfMessageExists := items["I063/030"]
	_, sensorIdentifierExists := items["I063/050"]

	if !dataSourceExists || !timeOfMessageExists || !sensorIdentifierExists {
		return fmt.Errorf("%w: missing mandatory field(s)", asterix.ErrMandatoryField)
	}

	return nil
}

// cat063Fields defines the complete UAP for Category 063
var cat063Fields = []asterix.DataField{
	{
		FRN:         1,
		DataItem:    "I063/010",
		Description: "Data Source Identifier",
		Type:        asterix.Fixed,
		Length:      2,
		Mandatory:   true,
	},
	{
		FRN:         2,
		DataItem:    "I063/015",
		Description: "Service Identification",
		Type:        asterix.Fixed,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         3,
		DataItem:    "I063/030",
		Description: "Time of Message",
		Type:        asterix.Fixed,
		Length:      3,
		Mandatory:   true,
	},
	{
		FRN:         4,
		DataItem:    "I063/050",
		Description: "Sensor Identifier",
		Type:        asterix.Fixed,
		Length:      2,
		Mandatory:   true,
	},
	{
		FRN:         5,
		DataItem:    "I063/060",
		Description: "Sensor Configuration and Status",
		Type:        asterix.Variable,
		Length:      1,
		Mandatory:   false,
	},
	{
		FRN:         6,
		DataItem:    "I063/070",
		Description: "Time Stamping Bias",
		Type:        asterix.Fixed,
		Length:      2,
		Mandatory:   false,
	},
	{
		FRN:         7,
		DataItem:    "I063/080",
		Description: "SSR/Mode S Range Gain and Bias",
		Type:        asterix.Fixed,
		Length:      4,
		Mandatory:   false,
	},
	{
		FRN:         8,
		DataItem:    "I063/081",
		Description: "SSR/Mode S Azimuth Bias",
		Type:        asterix.Fixed,
		Length:      2,
		Mandatory:   false,
	},
	{
		FRN:         9,
		DataItem:    "I063/090",
		Description: "PSR Range Gain and Bias",
		Type:        asterix.Fixed,
		Length:      4,
		Mandatory:   false,
	},
	{
		FRN:         10,
		DataItem:    "I063/091",
		Description: "PSR Azimuth Bias",
		Type:        asterix.Fixed,
		Length:      2,
		Mandatory:   false,
	},
	{
		FRN:         11,
		DataItem:    "I063/092",
		Description: "PSR Elevation Bias",
		Type:        asterix.Fixed,
		Length:      2,
		Mandatory:   false,
	},
	{
		FRN:         12,
		DataItem:    "",
		Description: "Spare",
		Type:        asterix.Fixed,
		Length:      0,
		Mandatory:   false,
	},

	{
		FRN:         13,
		DataItem:    "RE063",
		Description: "Reserved Expansion Field",
		Type:        asterix.Immediate,
		Length:      0,
		Mandatory:   false,
	},
	{
		FRN:         14,
		DataItem:    "SP063",
		Description: "Special Purpose Field",
		Type:        asterix.Immediate,
		Length:      0,
		Mandatory:   false,
	},
}

// cat/cat011/uap/uap_v12.go
package uap

import (
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
	v12 "github.com/surveillance-tools/panoramix/cat/cat011/dataitems/v12"
	common "github.com/surveillance-tools/panoramix/cat/common/dataitems"
)

// UAP12 implements the User Application Profile for ASTERIX Category 011
// (MLAT Surface Movement Data), edition 1.2. As with cat010, this is a
// minimal UAP covering the fields common to every MLAT plot/track: the full
// category 011 item set has no reference recording in this pack to ground
// it against.
type UAP12 struct {
	*asterix.BaseUAP
}

// NewUAP12 creates a new instance of the Category 011 v1.2 UAP
func NewUAP12() (*UAP12, error) {
	base, err := asterix.NewBaseUAP(asterix.Cat011, "1.2", cat011Fields)
	if err != nil {
		return nil, err
	}
	return &UAP12{BaseUAP: base}, nil
}

// CreateDataItem creates a new instance of a Cat011 data item
func (u *UAP12) CreateDataItem(id string) (asterix.DataItem, error) {
	switch id {
	case "I011/010":
		return &common.DataSourceIdentifier{}, nil
	case "I011/000":
		return &v12.MessageType{}, nil
	case "I011/140":
		return &common.TimeOfDay{}, nil
	case "I011/041":
		return &common.Position{}, nil
	case "I011/161":
		return &v12.TrackNumber{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", asterix.ErrUnknownDataItem, id)
	}
}

var cat011Fields = []asterix.DataField{
	{FRN: 1, DataItem: "I011/010", Description: "Data Source Identifier", Type: asterix.Fixed, Length: 2, Mandatory: true},
	{FRN: 2, DataItem: "I011/000", Description: "Message Type", Type: asterix.Fixed, Length: 1, Mandatory: true},
	{FRN: 3, DataItem: "I011/140", Description: "Time of Day", Type: asterix.Fixed, Length: 3, Mandatory: false},
	{FRN: 4, DataItem: "I011/041", Description: "Position in WGS-84 Coordinates", Type: asterix.Fixed, Length: 6, Mandatory: false},
	{FRN: 5, DataItem: "I011/161", Description: "Track Number", Type: asterix.Fixed, Length: 2, Mandatory: false},
}

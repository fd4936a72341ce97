// cat/cat010/uap/uap_v12.go
package uap

import (
	"fmt"

	"github.com/surveillance-tools/panoramix/asterix"
	v12 "github.com/surveillance-tools/panoramix/cat/cat010/dataitems/v12"
	common "github.com/surveillance-tools/panoramix/cat/common/dataitems"
)

// UAP12 implements the User Application Profile for ASTERIX Category 010
// (Monosensor Surface Movement Data), edition 1.2. Only the fields common
// to every surface-movement plot/track are covered: the full category 010
// item set (mode-S data, vehicle fleet id, pre-programmed message, etc.) has
// no reference recording in this pack to ground it against, so this UAP is
// intentionally small.
type UAP12 struct {
	*asterix.BaseUAP
}

// NewUAP12 creates a new instance of the Category 010 v1.2 UAP
func NewUAP12() (*UAP12, error) {
	base, err := asterix.NewBaseUAP(asterix.Cat010, "1.2", cat010Fields)
	if err != nil {
		return nil, err
	}
	return &UAP12{BaseUAP: base}, nil
}

// CreateDataItem creates a new instance of a Cat010 data item
func (u *UAP12) CreateDataItem(id string) (asterix.DataItem, error) {
	switch id {
	case "I010/010":
		return &common.DataSourceIdentifier{}, nil
	case "I010/000":
		return &v12.MessageType{}, nil
	case "I010/140":
		return &common.TimeOfDay{}, nil
	case "I010/041":
		return &common.Position{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", asterix.ErrUnknownDataItem, id)
	}
}

var cat010Fields = []asterix.DataField{
	{FRN: 1, DataItem: "I010/010", Description: "Data Source Identifier", Type: asterix.Fixed, Length: 2, Mandatory: true},
	{FRN: 2, DataItem: "I010/000", Description: "Message Type", Type: asterix.Fixed, Length: 1, Mandatory: true},
	{FRN: 3, DataItem: "I010/140", Description: "Time of Day", Type: asterix.Fixed, Length: 3, Mandatory: false},
	{FRN: 4, DataItem: "I010/041", Description: "Position in WGS-84 Coordinates", Type: asterix.Fixed, Length: 6, Mandatory: false},
}

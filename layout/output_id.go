package layout

import (
	"encoding/json"
	"fmt"
)

// OutputId is a tagged union identifying an output: Edid (preferred) or
// Name (fallback when no EDID is available). It is totally ordered; Edid
// variants sort before Name variants, and within a variant by the
// underlying value.
type OutputId struct {
	hasEdid bool
	edid    Edid
	name    string
}

// EdidId builds an Edid-variant OutputId.
func EdidId(e Edid) OutputId {
	return OutputId{hasEdid: true, edid: e}
}

// NameId builds a Name-variant OutputId.
func NameId(name string) OutputId {
	return OutputId{name: name}
}

// IsEdid reports whether o is the Edid variant, returning its payload.
func (o OutputId) IsEdid() (Edid, bool) {
	return o.edid, o.hasEdid
}

// Name returns the Name-variant payload; meaningless if IsEdid is true.
func (o OutputId) Name() string {
	return o.name
}

// Equal reports structural equality.
func (o OutputId) Equal(other OutputId) bool {
	return o.Compare(other) == 0
}

// Compare orders o relative to other: Edid variants sort before Name
// variants; within a variant, by the payload.
func (o OutputId) Compare(other OutputId) int {
	if o.hasEdid != other.hasEdid {
		if o.hasEdid {
			return -1
		}
		return 1
	}
	if o.hasEdid {
		return o.edid.Compare(other.edid)
	}
	switch {
	case o.name < other.name:
		return -1
	case o.name > other.name:
		return 1
	default:
		return 0
	}
}

func (o OutputId) String() string {
	if o.hasEdid {
		return fmt.Sprintf("Edid(%016x)", uint64(o.edid))
	}
	return fmt.Sprintf("Name(%q)", o.name)
}

// wireOutputId mirrors the persisted JSON shape from spec §6:
// {"Edid": <u64>} or {"Name": <string>}.
type wireOutputId struct {
	Edid *uint64 `json:"Edid,omitempty"`
	Name *string `json:"Name,omitempty"`
}

// MarshalJSON renders o as {"Edid": <u64>} or {"Name": <string>}.
func (o OutputId) MarshalJSON() ([]byte, error) {
	if o.hasEdid {
		v := uint64(o.edid)
		return json.Marshal(wireOutputId{Edid: &v})
	}
	return json.Marshal(wireOutputId{Name: &o.name})
}

// UnmarshalJSON parses the {"Edid": <u64>} / {"Name": <string>} shape.
func (o *OutputId) UnmarshalJSON(data []byte) error {
	var w wireOutputId
	if err := json.Unmarshal(data, &w); err != nil {
		return layoutErrorf("OutputId.UnmarshalJSON", err)
	}
	switch {
	case w.Edid != nil:
		*o = EdidId(Edid(*w.Edid))
	case w.Name != nil:
		*o = NameId(*w.Name)
	default:
		return layoutErrorf("OutputId.UnmarshalJSON", fmt.Errorf("neither Edid nor Name present"))
	}
	return nil
}

package store

import (
	"encoding/json"
	"fmt"

	"github.com/fgindraud/slam/layout"
)

// decode parses the persisted JSON array of Layout records and re-runs
// sort/normalize/classify on each one (spec §4.D: "deserialization of an
// OutputEntry list runs the same normalization and validation as
// LayoutInfo::from"). A non-empty UnsupportedCauses on any layout is a
// hard parse error.
func decode(data []byte) ([]layout.Layout, error) {
	var raw []layout.Layout
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, storeErrorf("decode", err)
	}

	out := make([]layout.Layout, len(raw))
	for i, l := range raw {
		info := layout.From(l.Entries, l.Primary)
		if !info.UnsupportedCauses.Empty() {
			return nil, storeErrorf("decode", fmt.Errorf("%w: %s", layout.ErrUnsupportedLayout, info.UnsupportedCauses))
		}
		out[i] = info.Layout
	}
	return out, nil
}

// encode renders the stored layouts back to the same JSON shape.
func encode(layouts []layout.Layout) ([]byte, error) {
	data, err := json.MarshalIndent(layouts, "", "  ")
	if err != nil {
		return nil, storeErrorf("encode", err)
	}
	return data, nil
}

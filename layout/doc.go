// Package layout is the data model for a connected set of display outputs:
// output identity (Edid/Name), mode, on/off state and position, and the
// validated, sorted collection (Layout) plus its classification into
// supported/unsupported (LayoutInfo).
package layout

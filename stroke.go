package render

// LineCap specifies the shape of stroked line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of stroked line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// StrokeStyle collects the optional stroke parameters beyond line width.
// Backends apply what they support; the zero value requests solid lines
// with miter joins and butt caps.
type StrokeStyle struct {
	// LineJoin is the shape of line joins.
	LineJoin LineJoin

	// LineCap is the shape of line endpoints.
	LineCap LineCap

	// DashPattern lists alternating on/off lengths. Empty means solid.
	DashPattern []float64

	// DashOffset shifts the start of the dash pattern.
	DashOffset float64

	// MiterLimit converts sharp miter joins to bevels beyond this ratio.
	// Zero means the backend default.
	MiterLimit float64
}

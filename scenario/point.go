package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Point is the location of a generated city.
//
// In scenario files a point is written as a flow sequence [x, y, elevation]
// (elevation may be omitted). The mapping form {x: .., y: .., elevation: ..}
// is accepted as well; YAML 1.1 reads a bare y key as the boolean true, so
// that key is matched too.
type Point struct {
	X         float64
	Y         float64
	Elevation float64
}

// pointMapping is the mapping form of a Point after YAML→JSON conversion.
type pointMapping struct {
	X         float64  `json:"x"`
	Y         *float64 `json:"y"`
	YBool     *float64 `json:"true"`
	Elevation float64  `json:"elevation"`
}

// MarshalJSON writes p as [x, y, elevation].
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.X, p.Y, p.Elevation})
}

// UnmarshalJSON reads either form of a point.
func (p *Point) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var xs []float64
		if err := json.Unmarshal(data, &xs); err != nil {
			return err
		}
		if len(xs) < 2 || len(xs) > 3 {
			return fmt.Errorf("%w: want [x, y] or [x, y, elevation], got %d values", ErrInvalidPoint, len(xs))
		}
		*p = Point{X: xs[0], Y: xs[1]}
		if len(xs) == 3 {
			p.Elevation = xs[2]
		}

		return nil
	}

	var (
		m   pointMapping
		dec = json.NewDecoder(bytes.NewReader(data))
	)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	if m.Y != nil && m.YBool != nil {
		return fmt.Errorf("%w: y given twice", ErrInvalidPoint)
	}
	*p = Point{X: m.X, Elevation: m.Elevation}
	switch {
	case m.Y != nil:
		p.Y = *m.Y
	case m.YBool != nil:
		p.Y = *m.YBool
	}

	return nil
}

package point

import (
	"bytes"
	"encoding/gob"
)

// pointWire is the exported mirror of Point's fields, used only to round-trip
// through encoding/gob: gob cannot see unexported struct fields directly, so
// Point and Edge implement GobEncoder/GobDecoder themselves instead of
// relying on gob's default struct encoding.
type pointWire struct {
	X, Y      float64
	PolygonID int
}

// GobEncode implements gob.GobEncoder.
func (p Point) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(pointWire{X: p.x, Y: p.y, PolygonID: p.polygonID})
	return buf.Bytes(), err
}

// GobDecode implements gob.GobDecoder.
func (p *Point) GobDecode(data []byte) error {
	var w pointWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	p.x, p.y, p.polygonID = w.X, w.Y, w.PolygonID
	return nil
}

// edgeWire is the exported mirror of Edge's endpoints.
type edgeWire struct {
	P1, P2 Point
}

// GobEncode implements gob.GobEncoder.
func (e Edge) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(edgeWire{P1: e.p1, P2: e.p2})
	return buf.Bytes(), err
}

// GobDecode implements gob.GobDecoder.
func (e *Edge) GobDecode(data []byte) error {
	var w edgeWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	e.p1, e.p2 = w.P1, w.P2
	return nil
}

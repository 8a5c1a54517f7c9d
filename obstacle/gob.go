package obstacle

import (
	"bytes"
	"encoding/gob"

	"github.com/kushrm2803/visgraph/point"
)

// graphWire is the exported mirror of Graph's contents, used to round-trip
// through encoding/gob: Graph's btree-backed vertex and edge sets, and its
// unexported fields generally, aren't things gob can see directly.
type graphWire struct {
	Vertices []point.Point
	Edges    []point.Edge
	Polygons map[int][]point.Edge
}

// GobEncode implements gob.GobEncoder.
func (g *Graph) GobEncode() ([]byte, error) {
	w := graphWire{
		Vertices: g.Points(),
		Edges:    g.Edges(),
		Polygons: g.polygons,
	}
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(w)
	return buf.Bytes(), err
}

// GobDecode implements gob.GobDecoder.
func (g *Graph) GobDecode(data []byte) error {
	var w graphWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}

	*g = *NewGraph()
	for _, edge := range w.Edges {
		g.AddEdge(edge)
	}
	for _, v := range w.Vertices {
		g.addVertex(v)
	}
	if w.Polygons != nil {
		g.polygons = w.Polygons
	}
	return nil
}

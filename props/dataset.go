// Package props holds plain-data property types shared by chart components.
package props

import "github.com/charmbracelet/lipgloss"

// Marker selects the symbol used to plot points.
type Marker uint8

const (
	MarkerDot Marker = iota
	MarkerBlock
	MarkerHalfBlock
	MarkerBraille
)

// GraphType selects how a dataset is drawn.
type GraphType uint8

const (
	GraphScatter GraphType = iota
	GraphLine
)

// Point is a single (x, y) record.
type Point struct {
	X, Y float64
}

// Dataset describes a set of data for a chart. Builder-style setters return
// the dataset so construction chains:
//
//	d := props.NewDataset().WithName("Avg temperatures").WithMarker(props.MarkerBraille)
type Dataset struct {
	Name      string
	Marker    Marker
	GraphType GraphType
	Style     lipgloss.Style

	data []Point
}

// NewDataset returns an empty scatter dataset with dot markers.
func NewDataset() Dataset {
	return Dataset{
		Marker:    MarkerDot,
		GraphType: GraphScatter,
		Style:     lipgloss.NewStyle(),
	}
}

// WithName sets the dataset name.
func (d Dataset) WithName(name string) Dataset {
	d.Name = name
	return d
}

// WithMarker sets the marker type.
func (d Dataset) WithMarker(m Marker) Dataset {
	d.Marker = m
	return d
}

// WithGraphType sets how the dataset is drawn.
func (d Dataset) WithGraphType(g GraphType) Dataset {
	d.GraphType = g
	return d
}

// WithStyle sets the render style.
func (d Dataset) WithStyle(s lipgloss.Style) Dataset {
	d.Style = s
	return d
}

// WithData replaces the dataset's points.
func (d Dataset) WithData(points []Point) Dataset {
	d.data = make([]Point, len(points))
	copy(d.data, points)
	return d
}

// Push appends a record to the back of the dataset.
func (d *Dataset) Push(p Point) {
	d.data = append(d.data, p)
}

// Pop removes the last record.
func (d *Dataset) Pop() {
	if len(d.data) > 0 {
		d.data = d.data[:len(d.data)-1]
	}
}

// PopFront removes the first record.
func (d *Dataset) PopFront() {
	if len(d.data) > 0 {
		d.data = d.data[1:]
	}
}

// Data returns the dataset's points.
func (d Dataset) Data() []Point {
	return d.data
}

// Equal compares datasets by name and data, ignoring presentation.
func (d Dataset) Equal(o Dataset) bool {
	if d.Name != o.Name || len(d.data) != len(o.data) {
		return false
	}
	for i := range d.data {
		if d.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

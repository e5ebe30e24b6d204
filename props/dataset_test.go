package props

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestDataset_Builder(t *testing.T) {
	d := NewDataset().
		WithName("avg temperatures").
		WithMarker(MarkerBraille).
		WithGraphType(GraphLine).
		WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00"))).
		WithData([]Point{{X: 1, Y: 1}, {X: 2, Y: 2}})

	require.Equal(t, "avg temperatures", d.Name)
	require.Equal(t, MarkerBraille, d.Marker)
	require.Equal(t, GraphLine, d.GraphType)
	require.Len(t, d.Data(), 2)
}

func TestDataset_Defaults(t *testing.T) {
	d := NewDataset()
	require.Equal(t, MarkerDot, d.Marker)
	require.Equal(t, GraphScatter, d.GraphType)
	require.Empty(t, d.Data())
}

func TestDataset_PushPop(t *testing.T) {
	d := NewDataset()
	d.Push(Point{X: 1, Y: 1})
	d.Push(Point{X: 2, Y: 2})
	d.Push(Point{X: 3, Y: 3})
	require.Len(t, d.Data(), 3)

	d.Pop()
	require.Equal(t, []Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, d.Data())

	d.PopFront()
	require.Equal(t, []Point{{X: 2, Y: 2}}, d.Data())

	// Popping an empty dataset is a no-op.
	d.Pop()
	d.Pop()
	d.PopFront()
	require.Empty(t, d.Data())
}

func TestDataset_WithDataCopies(t *testing.T) {
	src := []Point{{X: 1, Y: 1}}
	d := NewDataset().WithData(src)
	src[0] = Point{X: 99, Y: 99}
	require.Equal(t, Point{X: 1, Y: 1}, d.Data()[0])
}

func TestDataset_Equal(t *testing.T) {
	a := NewDataset().WithName("a").WithData([]Point{{X: 1, Y: 1}})
	b := NewDataset().WithName("a").WithData([]Point{{X: 1, Y: 1}})
	require.True(t, a.Equal(b))

	// Presentation does not participate in equality.
	b = b.WithMarker(MarkerBlock).WithStyle(lipgloss.NewStyle().Bold(true))
	require.True(t, a.Equal(b))

	require.False(t, a.Equal(b.WithName("c")))
	require.False(t, a.Equal(b.WithData(nil)))
}
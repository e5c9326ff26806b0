package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewClampsInputs(t *testing.T) {
	p := New(0, 0, 45)
	require.Equal(t, 1, p.Page)
	require.Equal(t, DefaultLimit, p.Limit)
	require.Equal(t, 3, p.Pages)
	require.True(t, p.HasNext)
	require.False(t, p.HasPrev)

	p = New(2, 500, 10)
	require.Equal(t, MaxLimit, p.Limit)
	require.Equal(t, 1, p.Pages)
}

func TestBounds(t *testing.T) {
	start, end := New(1, 20, 50).Bounds()
	require.Equal(t, 0, start)
	require.Equal(t, 20, end)

	start, end = New(3, 20, 50).Bounds()
	require.Equal(t, 40, start)
	require.Equal(t, 50, end)

	start, end = New(9, 20, 50).Bounds()
	require.Equal(t, 50, start)
	require.Equal(t, 50, end)

	start, end = New(1, 20, 0).Bounds()
	require.Equal(t, 0, start)
	require.Equal(t, 0, end)
}

func TestFromRequest(t *testing.T) {
	req := FromRequest("abc", "")
	require.Equal(t, 1, req.Page)
	require.Equal(t, DefaultLimit, req.Limit)

	req = FromRequest("4", "15")
	require.Equal(t, 4, req.Page)
	require.Equal(t, 15, req.Limit)
}

func TestHugePageStaysInBounds(t *testing.T) {
	req := FromRequest("9223372036854775807", "20")
	require.Equal(t, math.MaxInt/20, req.Page)

	p := New(math.MaxInt, 20, 50)
	require.GreaterOrEqual(t, p.Offset, 0)
	require.False(t, p.HasNext)

	start, end := p.Bounds()
	require.Equal(t, 50, start)
	require.Equal(t, 50, end)
}

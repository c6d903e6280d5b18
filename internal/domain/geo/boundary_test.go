package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Roughly 100m x 100m near the equator.
const squarePolygon = `{"type":"Polygon","coordinates":[[[0,0],[0.000898,0],[0.000898,0.000904],[0,0.000904],[0,0]]]}`

func TestParseBoundary_Polygon(t *testing.T) {
	t.Parallel()

	b, err := ParseBoundary([]byte(squarePolygon))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, b.AreaHectares(), 0.05)

	c := b.Centroid()
	assert.InDelta(t, 0.000449, c.Lon(), 1e-6)
	assert.InDelta(t, 0.000452, c.Lat(), 1e-6)
}

func TestParseBoundary_Feature(t *testing.T) {
	t.Parallel()

	raw := `{"type":"Feature","properties":{"name":"north"},"geometry":` + squarePolygon + `}`

	b, err := ParseBoundary([]byte(raw))
	require.NoError(t, err)
	assert.Len(t, b.Polygon[0], 5)
}

func TestParseBoundary_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{name: "not json", raw: `{`, want: ErrMalformedInput},
		{name: "point", raw: `{"type":"Point","coordinates":[1,2]}`, want: ErrNotPolygon},
		{name: "feature with line", raw: `{"type":"Feature","properties":{},"geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]}}`, want: ErrNotPolygon},
		{name: "too short", raw: `{"type":"Polygon","coordinates":[[[0,0],[1,0],[0,0]]]}`, want: ErrRingTooShort},
		{name: "open ring", raw: `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1]]]}`, want: ErrRingNotClosed},
		{name: "latitude out of range", raw: `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,91],[0,0]]]}`, want: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseBoundary([]byte(tt.raw))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBoundary_MarshalGeometry(t *testing.T) {
	t.Parallel()

	b, err := ParseBoundary([]byte(squarePolygon))
	require.NoError(t, err)

	out, err := b.MarshalGeometry()
	require.NoError(t, err)
	assert.JSONEq(t, squarePolygon, string(out))
}

// Package geo validates and measures field boundaries expressed as GeoJSON.
package geo

import (
	"encoding/json"
	"math"

	"farmdesk/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

const (
	squareMetersPerHectare = 10_000
	minRingPoints          = 4
)

var (
	ErrNotPolygon     = errors.New("boundary must be a GeoJSON Polygon")
	ErrRingTooShort   = errors.New("boundary ring needs at least 4 points")
	ErrRingNotClosed  = errors.New("boundary ring is not closed")
	ErrOutOfRange     = errors.New("boundary coordinate out of range")
	ErrMalformedInput = errors.New("boundary is not valid GeoJSON")
)

// Boundary is a validated field outline.
type Boundary struct {
	Polygon orb.Polygon
}

type geoJSONType struct {
	Type string `json:"type"`
}

// ParseBoundary accepts a GeoJSON Polygon geometry or a Feature wrapping one.
func ParseBoundary(raw []byte) (*Boundary, error) {
	var envelope geoJSONType
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}

	var g orb.Geometry
	switch envelope.Type {
	case "Feature":
		feature, err := geojson.UnmarshalFeature(raw)
		if err != nil {
			return nil, errors.Wrap(ErrMalformedInput, err.Error())
		}
		g = feature.Geometry
	case "Polygon":
		geometry, err := geojson.UnmarshalGeometry(raw)
		if err != nil {
			return nil, errors.Wrap(ErrMalformedInput, err.Error())
		}
		g = geometry.Geometry()
	default:
		return nil, ErrNotPolygon
	}

	polygon, ok := g.(orb.Polygon)
	if !ok || len(polygon) == 0 {
		return nil, ErrNotPolygon
	}

	if err := validatePolygon(polygon); err != nil {
		return nil, err
	}

	return &Boundary{Polygon: polygon}, nil
}

func validatePolygon(polygon orb.Polygon) error {
	for _, ring := range polygon {
		if len(ring) < minRingPoints {
			return ErrRingTooShort
		}
		if !ring.Closed() {
			return ErrRingNotClosed
		}
		for _, p := range ring {
			if math.Abs(p.Lon()) > 180 || math.Abs(p.Lat()) > 90 {
				return ErrOutOfRange
			}
		}
	}

	return nil
}

// AreaHectares returns the geodesic area of the outline, holes excluded.
func (b *Boundary) AreaHectares() float64 {
	return math.Abs(geo.Area(b.Polygon)) / squareMetersPerHectare
}

// Centroid returns the planar centroid as lon/lat.
func (b *Boundary) Centroid() orb.Point {
	point, _ := planar.CentroidArea(b.Polygon)

	return point
}

// MarshalGeometry re-encodes the outline as a bare GeoJSON Polygon.
func (b *Boundary) MarshalGeometry() ([]byte, error) {
	return json.Marshal(geojson.NewGeometry(b.Polygon))
}

package route

import (
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// FromGeoJSON reads waypoints from a Feature, the first feature of a
// FeatureCollection, or a bare geometry.
func FromGeoJSON(data []byte) (*Route, error) {
	if f, err := geojson.UnmarshalFeature(data); err == nil {
		return fromGeometry(f.Geometry)
	}
	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil {
		if len(fc.Features) == 0 {
			return nil, errors.New("route: feature collection is empty")
		}
		return fromGeometry(fc.Features[0].Geometry)
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrap(err, "route: not a geojson feature or geometry")
	}
	return fromGeometry(g.Geometry())
}

func LoadFile(path string) (*Route, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "route: read %s", path)
	}
	r, err := FromGeoJSON(b)
	if err != nil {
		return nil, errors.Wrapf(err, "route: load %s", path)
	}
	return r, nil
}

func fromGeometry(g orb.Geometry) (*Route, error) {
	switch v := g.(type) {
	case orb.LineString:
		return New(v...)
	case orb.MultiPoint:
		return New(v...)
	case orb.Ring:
		return New(openRing(v)...)
	case orb.Polygon:
		if len(v) == 0 {
			return nil, ErrEmptyRoute
		}
		return New(openRing(v[0])...)
	case nil:
		return nil, errors.New("route: feature has no geometry")
	}
	return nil, errors.Errorf("route: unsupported geometry %s", g.GeoJSONType())
}

// openRing drops the closing point; the route wraps on its own.
func openRing(r orb.Ring) []orb.Point {
	if len(r) > 1 && r[0] == r[len(r)-1] {
		return r[:len(r)-1]
	}
	return r
}

package portfolio

import (
	"math"

	"github.com/finsolar/investordash/internal/domain"
)

const (
	DefaultZoom   = 5
	boundsPadding = 0.2
)

// DefaultCenter is the middle of Mexico.
var DefaultCenter = domain.LatLng{Lat: 23.6345, Lng: -102.5528}

// MapView places a marker for every solar project with usable coordinates
// and fits the view to them. With no markers it falls back to DefaultCenter.
func MapView(projects []domain.Project) domain.MapView {
	view := domain.MapView{
		Center:  DefaultCenter,
		Zoom:    DefaultZoom,
		Markers: []domain.Marker{},
	}

	for _, p := range projects {
		if p.Kind != domain.KindSolar || p.Solar.Coordinates == nil {
			continue
		}
		c := p.Solar.Coordinates
		if !c.Lat.Valid || !c.Lng.Valid {
			continue
		}
		view.Markers = append(view.Markers, domain.Marker{
			Position: domain.LatLng{Lat: c.Lat.Value, Lng: c.Lng.Value},
			Name:     p.Solar.Name,
			Location: p.Solar.Location,
			SizeKWp:  p.Solar.SizeKWp.Float(),
		})
	}

	if len(view.Markers) == 0 {
		return view
	}

	b := fitBounds(view.Markers)
	view.Bounds = &b
	view.Center = domain.LatLng{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
	// The client derives zoom from Bounds.
	view.Zoom = 0
	return view
}

// fitBounds returns the markers' bounding box grown by boundsPadding of its
// height and width on every side.
func fitBounds(markers []domain.Marker) domain.Bounds {
	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLng, maxLng := math.Inf(1), math.Inf(-1)
	for _, m := range markers {
		minLat = math.Min(minLat, m.Position.Lat)
		maxLat = math.Max(maxLat, m.Position.Lat)
		minLng = math.Min(minLng, m.Position.Lng)
		maxLng = math.Max(maxLng, m.Position.Lng)
	}

	padLat := (maxLat - minLat) * boundsPadding
	padLng := (maxLng - minLng) * boundsPadding
	return domain.Bounds{
		SouthWest: domain.LatLng{Lat: minLat - padLat, Lng: minLng - padLng},
		NorthEast: domain.LatLng{Lat: maxLat + padLat, Lng: maxLng + padLng},
	}
}

// Package routeview projects a geographic delivery route onto the fixed 2D
// canvas the order pages draw, and renders the interactive map diagram. All
// of it is pure computation over the route slice.
package routeview

import (
	"fmt"
	"strings"

	"github.com/dronexpress/console-api/models"
)

// Canvas geometry. The projection centers the route's centroid on
// (OriginX, OriginY) and spreads the widest coordinate range over ZoomSpan
// pixels.
const (
	CanvasWidth  = 600
	CanvasHeight = 500
	OriginX      = 300
	OriginY      = 250
	ZoomSpan     = 400
	// FallbackScale is used when every stop shares one point, so a
	// single-stop route never divides by zero.
	FallbackScale = 2000
)

// Point is one stop projected to canvas pixels.
type Point struct {
	Stop models.RouteStop `json:"stop"`
	X    float64          `json:"x"`
	Y    float64          `json:"y"`
}

// StopKind classifies a stop's position in the route.
type StopKind int

const (
	StopWaypoint StopKind = iota
	StopOrigin
	StopDestination
)

// Kind classifies the stop at index in a route of count stops. The first
// stop is the origin even when it is the only one.
func Kind(index, count int) StopKind {
	switch {
	case index == 0:
		return StopOrigin
	case index == count-1:
		return StopDestination
	default:
		return StopWaypoint
	}
}

// Scale derives the degrees-to-pixels factor for a route's coordinate spread.
func Scale(route []models.RouteStop) float64 {
	if len(route) == 0 {
		return FallbackScale
	}
	minLat, maxLat := route[0].Latitude, route[0].Latitude
	minLng, maxLng := route[0].Longitude, route[0].Longitude
	for _, stop := range route[1:] {
		minLat = min(minLat, stop.Latitude)
		maxLat = max(maxLat, stop.Latitude)
		minLng = min(minLng, stop.Longitude)
		maxLng = max(maxLng, stop.Longitude)
	}
	maxRange := max(maxLat-minLat, maxLng-minLng)
	if maxRange > 0 {
		return ZoomSpan / maxRange
	}
	return FallbackScale
}

// Centroid returns the mean latitude and longitude over all stops.
func Centroid(route []models.RouteStop) (lat, lng float64) {
	if len(route) == 0 {
		return 0, 0
	}
	for _, stop := range route {
		lat += stop.Latitude
		lng += stop.Longitude
	}
	n := float64(len(route))
	return lat / n, lng / n
}

// Project maps every stop to canvas pixels, preserving route order. The y
// axis is inverted: latitude grows northward, canvas y grows downward.
// An empty route yields nil; callers render the empty-state placeholder.
func Project(route []models.RouteStop) []Point {
	if len(route) == 0 {
		return nil
	}
	centroidLat, centroidLng := Centroid(route)
	scale := Scale(route)
	points := make([]Point, len(route))
	for i, stop := range route {
		points[i] = Point{
			Stop: stop,
			X:    OriginX + (stop.Longitude-centroidLng)*scale,
			Y:    OriginY - (stop.Latitude-centroidLat)*scale,
		}
	}
	return points
}

// PathData renders the projected points as an SVG path, connecting them in
// sequence order.
func PathData(points []Point) string {
	var b strings.Builder
	for i, p := range points {
		if i == 0 {
			fmt.Fprintf(&b, "M %s %s", trimFloat(p.X), trimFloat(p.Y))
		} else {
			fmt.Fprintf(&b, " L %s %s", trimFloat(p.X), trimFloat(p.Y))
		}
	}
	return b.String()
}

// CalloutCoords formats a stop's raw coordinates for the detail callout.
func CalloutCoords(stop models.RouteStop) string {
	return fmt.Sprintf("%.4f, %.4f", stop.Latitude, stop.Longitude)
}

// ListCoords formats a stop's raw coordinates for the side list, at higher
// precision than the callout.
func ListCoords(stop models.RouteStop) string {
	return fmt.Sprintf("%.6f, %.6f", stop.Latitude, stop.Longitude)
}

// trimFloat prints a coordinate without trailing zero noise.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

package routeview

import (
	"math"
	"reflect"
	"testing"

	"github.com/dronexpress/console-api/models"
)

func sampleRoute() []models.RouteStop {
	return []models.RouteStop{
		{CenterID: 1, CenterName: "Central Norte", Latitude: 14.65, Longitude: -90.51},
		{CenterID: 2, CenterName: "Centro Relay", Latitude: 14.60, Longitude: -90.49},
		{CenterID: 3, CenterName: "Punto Sur", Latitude: 14.55, Longitude: -90.52},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestProjectEmptyRoute(t *testing.T) {
	if got := Project(nil); got != nil {
		t.Fatalf("Project(nil) = %v, want nil", got)
	}
	if got := Project([]models.RouteStop{}); got != nil {
		t.Fatalf("Project(empty) = %v, want nil", got)
	}
}

func TestProjectIsDeterministic(t *testing.T) {
	route := sampleRoute()
	first := Project(route)
	second := Project(route)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated projection differs:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestProjectPreservesOrder(t *testing.T) {
	route := sampleRoute()
	points := Project(route)
	if len(points) != len(route) {
		t.Fatalf("got %d points, want %d", len(points), len(route))
	}
	for i, p := range points {
		if p.Stop.CenterID != route[i].CenterID {
			t.Errorf("point %d carries stop %d, want %d", i, p.Stop.CenterID, route[i].CenterID)
		}
	}
}

func TestProjectCentersCentroid(t *testing.T) {
	points := Project(sampleRoute())
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	if !almostEqual(sumX/n, OriginX) || !almostEqual(sumY/n, OriginY) {
		t.Fatalf("projected centroid = (%v, %v), want (%v, %v)", sumX/n, sumY/n, OriginX, OriginY)
	}
}

func TestProjectInvertsYAxis(t *testing.T) {
	points := Project(sampleRoute())
	// Stop 0 is the northernmost, so it must sit highest on the canvas.
	if points[0].Y >= points[2].Y {
		t.Fatalf("northern stop y=%v not above southern stop y=%v", points[0].Y, points[2].Y)
	}
	if points[0].X >= points[1].X {
		t.Fatalf("western stop x=%v not left of eastern stop x=%v", points[0].X, points[1].X)
	}
}

func TestProjectSingleStop(t *testing.T) {
	points := Project([]models.RouteStop{{CenterName: "Solo", Latitude: 14.6, Longitude: -90.5}})
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	if !almostEqual(points[0].X, OriginX) || !almostEqual(points[0].Y, OriginY) {
		t.Fatalf("single stop projected to (%v, %v), want canvas center (%v, %v)",
			points[0].X, points[0].Y, OriginX, OriginY)
	}
}

func TestProjectCoincidentStops(t *testing.T) {
	stop := models.RouteStop{Latitude: 14.6, Longitude: -90.5}
	points := Project([]models.RouteStop{stop, stop, stop})
	for i, p := range points {
		if !almostEqual(p.X, OriginX) || !almostEqual(p.Y, OriginY) {
			t.Fatalf("coincident stop %d projected to (%v, %v), want (%v, %v)", i, p.X, p.Y, OriginX, OriginY)
		}
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name  string
		route []models.RouteStop
		want  float64
	}{
		{"empty", nil, FallbackScale},
		{"single stop", []models.RouteStop{{Latitude: 14.6, Longitude: -90.5}}, FallbackScale},
		{
			"latitude dominates",
			[]models.RouteStop{{Latitude: 14, Longitude: -90.5}, {Latitude: 16, Longitude: -90}},
			ZoomSpan / 2.0,
		},
		{
			"longitude dominates",
			[]models.RouteStop{{Latitude: 14.6, Longitude: -91}, {Latitude: 14.7, Longitude: -89}},
			ZoomSpan / 2.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Scale(tt.route); !almostEqual(got, tt.want) {
				t.Fatalf("Scale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleSpreadsWidestAxisOverZoomSpan(t *testing.T) {
	route := []models.RouteStop{
		{Latitude: 14.6, Longitude: -1},
		{Latitude: 14.6, Longitude: 1},
	}
	points := Project(route)
	spread := math.Abs(points[1].X - points[0].X)
	if !almostEqual(spread, ZoomSpan) {
		t.Fatalf("x spread = %v, want %v", spread, float64(ZoomSpan))
	}
}

func TestKind(t *testing.T) {
	if Kind(0, 3) != StopOrigin {
		t.Error("first stop should be the origin")
	}
	if Kind(2, 3) != StopDestination {
		t.Error("last stop should be the destination")
	}
	if Kind(1, 3) != StopWaypoint {
		t.Error("middle stop should be a waypoint")
	}
	// A single stop is the origin, not the destination.
	if Kind(0, 1) != StopOrigin {
		t.Error("sole stop should be the origin")
	}
}

func TestPathData(t *testing.T) {
	points := []Point{
		{X: 100, Y: 50},
		{X: 300.5, Y: 250},
		{X: 500, Y: 449.25},
	}
	want := "M 100 50 L 300.5 250 L 500 449.25"
	if got := PathData(points); got != want {
		t.Fatalf("PathData = %q, want %q", got, want)
	}
	if got := PathData(nil); got != "" {
		t.Fatalf("PathData(nil) = %q, want empty", got)
	}
}

func TestCoordFormatting(t *testing.T) {
	stop := models.RouteStop{Latitude: 14.634915, Longitude: -90.506882}
	if got := CalloutCoords(stop); got != "14.6349, -90.5069" {
		t.Fatalf("CalloutCoords = %q", got)
	}
	if got := ListCoords(stop); got != "14.634915, -90.506882" {
		t.Fatalf("ListCoords = %q", got)
	}
}

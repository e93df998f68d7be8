package routeview

import (
	"fmt"
	"html"
	"strings"

	"github.com/dronexpress/console-api/models"
)

// Marker styling per stop kind, matching the web client's palette.
const (
	colorOrigin      = "#10b981"
	colorDestination = "#ef4444"
	colorWaypoint    = "#6366f1"
	colorRoute       = "#8b5cf6"

	markerRadiusEndpoint = 10
	markerRadiusWaypoint = 8
)

// NoSelection disables the detail callout.
const NoSelection = -1

// RenderSVG draws the route diagram for an order: background grid, dashed
// route polyline, colored stop markers with 1-based index labels, and an
// optional detail callout for the selected stop. An order without a route
// renders a placeholder with no geometry.
func RenderSVG(order models.Order, selected int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="100%%" height="%d" viewBox="0 0 %d %d">`,
		CanvasHeight-100, CanvasWidth, CanvasHeight)
	writeGrid(&b)

	route := order.DeliveryRoute
	if len(route) == 0 {
		fmt.Fprintf(&b, `<text x="%d" y="%d" text-anchor="middle" fill="#6b7280">No route information available</text>`,
			OriginX, OriginY)
		b.WriteString(`</svg>`)
		return b.String()
	}

	points := Project(route)
	fmt.Fprintf(&b, `<path d="%s" stroke="%s" stroke-width="3" fill="none" stroke-dasharray="5,5"/>`,
		PathData(points), colorRoute)

	for i, p := range points {
		color, radius := markerStyle(Kind(i, len(points)))
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%d" fill="%s" stroke="white" stroke-width="3"/>`,
			trimFloat(p.X), trimFloat(p.Y), radius, color)
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="middle" font-size="14" font-weight="bold" fill="#4b5563">%d</text>`,
			trimFloat(p.X), trimFloat(p.Y+25), i+1)
	}

	if selected >= 0 && selected < len(points) {
		writeCallout(&b, points[selected])
	}

	b.WriteString(`</svg>`)
	return b.String()
}

// writeGrid emits the light background grid pattern.
func writeGrid(b *strings.Builder) {
	b.WriteString(`<defs><pattern id="grid" width="20" height="20" patternUnits="userSpaceOnUse">` +
		`<path d="M 20 0 L 0 0 0 20" fill="none" stroke="#f0f0f0" stroke-width="1"/>` +
		`</pattern></defs>` +
		`<rect width="100%" height="100%" fill="url(#grid)"/>`)
}

// writeCallout anchors the detail box above a projected stop.
func writeCallout(b *strings.Builder, p Point) {
	fmt.Fprintf(b, `<rect x="%s" y="%s" width="160" height="45" fill="white" stroke="%s" stroke-width="2" rx="8"/>`,
		trimFloat(p.X-80), trimFloat(p.Y-60), colorWaypoint)
	fmt.Fprintf(b, `<text x="%s" y="%s" text-anchor="middle" font-size="13" font-weight="bold" fill="#1f2937">%s</text>`,
		trimFloat(p.X), trimFloat(p.Y-40), html.EscapeString(p.Stop.CenterName))
	fmt.Fprintf(b, `<text x="%s" y="%s" text-anchor="middle" font-size="11" fill="#4b5563">%s</text>`,
		trimFloat(p.X), trimFloat(p.Y-25), CalloutCoords(p.Stop))
}

// markerStyle returns the fill color and radius for a stop kind.
func markerStyle(kind StopKind) (string, int) {
	switch kind {
	case StopOrigin:
		return colorOrigin, markerRadiusEndpoint
	case StopDestination:
		return colorDestination, markerRadiusEndpoint
	default:
		return colorWaypoint, markerRadiusWaypoint
	}
}

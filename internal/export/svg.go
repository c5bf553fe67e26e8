package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/dpend/internal/physics"
)

const svgHeader = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="`

// TrajectoryToSVG draws points as one SVG path scaled to fit the image
// with 10% padding. It returns "" for fewer than two points.
func TrajectoryToSVG(points []physics.Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	lo, hi := physics.Bounds(points, 0.1)
	sx := float64(width) / (hi.X - lo.X)
	sy := float64(height) / (hi.Y - lo.Y)

	var sb strings.Builder
	fmt.Fprintf(&sb, svgHeader, width, height, width, height, strokeColor)
	for i, p := range points {
		cmd := " L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&sb, "%s%.1f,%.1f", cmd, (p.X-lo.X)*sx, float64(height)-(p.Y-lo.Y)*sy)
	}
	sb.WriteString("\"/>\n</svg>\n")
	return sb.String()
}

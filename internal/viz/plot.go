package viz

import (
	"github.com/guptarohit/asciigraph"
)

// Plot renders one series as an asciigraph line chart. Series longer than
// width are decimated to at most width points.
func Plot(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(Decimate(data, width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// PlotMany overlays several equally long series in one chart.
func PlotMany(series [][]float64, width, height int, caption string) string {
	if len(series) == 0 {
		return ""
	}
	decimated := make([][]float64, 0, len(series))
	for _, s := range series {
		if len(s) == 0 {
			continue
		}
		decimated = append(decimated, Decimate(s, width))
	}
	if len(decimated) == 0 {
		return ""
	}
	return asciigraph.PlotMany(decimated,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Decimate keeps every k-th sample, with k the smallest stride leaving at
// most n, and always appends the last sample.
func Decimate(data []float64, n int) []float64 {
	if n <= 0 || len(data) <= n {
		return data
	}
	k := (len(data) + n - 1) / n
	out := make([]float64, 0, n+1)
	for i := 0; i < len(data); i += k {
		out = append(out, data[i])
	}
	if (len(data)-1)%k != 0 {
		out = append(out, data[len(data)-1])
	}
	return out
}

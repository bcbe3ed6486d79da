// Package render turns field batches into terminal output: asciigraph
// scan plots and lipgloss-styled tables.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/magsim/internal/magmath"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ccff"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff88"))

	graphStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)
)

// ScanPlot renders the component and magnitude curves of a line scan.
func ScanPlot(fieldName string, values []magmath.Vec3, width, height int) string {
	if len(values) < 2 {
		return ""
	}
	if width <= 0 {
		width = 72
	}
	if height <= 0 {
		height = 12
	}

	mag := make([]float64, len(values))
	zc := make([]float64, len(values))
	for i, v := range values {
		mag[i] = v.Norm()
		zc[i] = v.Z
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("|%s| along scan", fieldName)) + "\n")
	sb.WriteString(graphStyle.Render(asciigraph.Plot(mag,
		asciigraph.Width(width), asciigraph.Height(height))) + "\n")
	sb.WriteString(headerStyle.Render(fieldName+"z along scan") + "\n")
	sb.WriteString(graphStyle.Render(asciigraph.Plot(zc,
		asciigraph.Width(width), asciigraph.Height(height))) + "\n")
	return sb.String()
}

// Table renders observer positions and field vectors side by side.
// maxRows truncates long batches; 0 means no limit.
func Table(fieldName, unit string, observers, values []magmath.Vec3, maxRows int) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(
		fmt.Sprintf("%-36s %s [%s]", "observer [m]", fieldName, unit)) + "\n")

	n := len(values)
	shown := n
	if maxRows > 0 && shown > maxRows {
		shown = maxRows
	}
	for i := 0; i < shown; i++ {
		obs := observers[i]
		v := values[i]
		sb.WriteString(labelStyle.Render(
			fmt.Sprintf("(%10.4g, %10.4g, %10.4g)", obs.X, obs.Y, obs.Z)))
		sb.WriteString("  ")
		sb.WriteString(valueStyle.Render(
			fmt.Sprintf("(%12.6g, %12.6g, %12.6g)  |%s|=%.6g",
				v.X, v.Y, v.Z, fieldName, v.Norm())))
		sb.WriteString("\n")
	}
	if shown < n {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("... %d more rows", n-shown)) + "\n")
	}
	return sb.String()
}

// Summary renders per-batch aggregates.
func Summary(fieldName string, values []magmath.Vec3) string {
	if len(values) == 0 {
		return ""
	}
	minMag, maxMag, sum := values[0].Norm(), values[0].Norm(), 0.0
	for _, v := range values {
		m := v.Norm()
		if m < minMag {
			minMag = m
		}
		if m > maxMag {
			maxMag = m
		}
		sum += m
	}
	var sb strings.Builder
	sb.WriteString(labelStyle.Render("points ") + valueStyle.Render(fmt.Sprintf("%d", len(values))) + "  ")
	sb.WriteString(labelStyle.Render(fmt.Sprintf("|%s| min ", fieldName)) + valueStyle.Render(fmt.Sprintf("%.6g", minMag)) + "  ")
	sb.WriteString(labelStyle.Render("max ") + valueStyle.Render(fmt.Sprintf("%.6g", maxMag)) + "  ")
	sb.WriteString(labelStyle.Render("mean ") + valueStyle.Render(fmt.Sprintf("%.6g", sum/float64(len(values)))))
	return sb.String()
}

// FieldUnit returns the SI unit string for a field selector name.
func FieldUnit(fieldName string) string {
	switch fieldName {
	case "H", "M":
		return "A/m"
	default:
		return "T"
	}
}

package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goalsim/goalsim/internal/tui/tuistyles"
)

// DataSeries is a single line in a chart.
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart draws one or more series as a terminal line chart.
type ASCIIChart struct {
	Title  string
	Series []*DataSeries
	Width  int
	Height int
}

// NewASCIIChart creates a chart with default dimensions.
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:  title,
		Width:  60,
		Height: 12,
	}
}

// AddSeries appends a data series.
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithSize sets the chart dimensions.
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart.
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary)
		content.WriteString(titleStyle.Render(c.Title))
		content.WriteString("\n")
	}

	minVal, maxVal := c.bounds()
	content.WriteString(c.renderGrid(minVal, maxVal))
	return content.String()
}

// bounds finds the global min/max across all series, with 10% padding.
func (c *ASCIIChart) bounds() (float64, float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for _, series := range c.Series {
		for _, point := range series.Points {
			minVal = math.Min(minVal, point)
			maxVal = math.Max(maxVal, point)
		}
	}
	if minVal == maxVal {
		// Flat series still needs a visible range.
		maxVal = minVal + 1
	}
	padding := (maxVal - minVal) * 0.1
	return minVal - padding, maxVal + padding
}

func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	const yAxisWidth = 10
	chartWidth := c.Width - yAxisWidth
	if chartWidth < 10 {
		chartWidth = 10
	}

	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for seriesIdx, series := range c.Series {
		if len(series.Points) < 2 {
			continue
		}
		ch := seriesChar(seriesIdx)
		for i, point := range series.Points {
			x := int(float64(i) / float64(len(series.Points)-1) * float64(chartWidth-1))
			y := c.Height - 1 - int((point-minVal)/(maxVal-minVal)*float64(c.Height-1))
			if y < 0 {
				y = 0
			}
			if y >= c.Height {
				y = c.Height - 1
			}
			grid[y][x] = ch
		}
	}

	yAxisStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Width(yAxisWidth).
		Align(lipgloss.Right)

	var out strings.Builder
	for i, row := range grid {
		yValue := maxVal - float64(i)/float64(c.Height-1)*(maxVal-minVal)
		out.WriteString(yAxisStyle.Render(tuistyles.FormatCurrency(yValue)))
		out.WriteString(" │")
		out.WriteString(string(row))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", chartWidth))
	return out.String()
}

func seriesChar(index int) rune {
	chars := []rune{'·', '●', '■', '▲'}
	return chars[index%len(chars)]
}

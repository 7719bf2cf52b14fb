package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats collects counters for one render
type RenderStats struct {
	Iterations      int
	MaxDepth        int
	PrimaryRays     int64
	RaysTraced      int64
	Misses          int64
	LightHits       int64
	BudgetExhausted int64
	RenderTime      time.Duration
}

// FormatTable renders the stats as a text table
func (s RenderStats) FormatTable() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Counter", "Value"})
	table.Append([]string{"Iterations", fmt.Sprintf("%d", s.Iterations)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", s.MaxDepth)})
	table.Append([]string{"Primary rays", fmt.Sprintf("%d", s.PrimaryRays)})
	table.Append([]string{"Rays traced", fmt.Sprintf("%d", s.RaysTraced)})
	table.Append([]string{"Scene misses", fmt.Sprintf("%d", s.Misses)})
	table.Append([]string{"Light hits", fmt.Sprintf("%d", s.LightHits)})
	table.Append([]string{"Budget exhausted", fmt.Sprintf("%d", s.BudgetExhausted)})
	table.SetFooter([]string{"Render time", s.RenderTime.Round(time.Millisecond).String()})
	table.Render()
	return buf.String()
}

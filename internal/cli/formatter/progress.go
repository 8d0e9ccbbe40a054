package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// sparkLevels are the eighth-block glyphs used by RenderSparkline.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// RenderShareBar renders a percentage (0-100) as [████░░░░]  45.0%.
func RenderShareBar(pct float64, width int, style lipgloss.Style) string {
	return fmt.Sprintf("[%s] %5.1f%%", style.Render(bar(pct/100, width)), clamp(pct, 0, 100))
}

// RenderHoursBar renders hours relative to maxHours as a bar without a
// trailing label.
func RenderHoursBar(hours, maxHours float64, width int, style lipgloss.Style) string {
	frac := 0.0
	if maxHours > 0 {
		frac = hours / maxHours
	}
	return style.Render(bar(frac, width))
}

// RenderSparkline maps each value onto an eighth-block glyph scaled to the
// largest value. Zero renders as the lowest glyph dimmed.
func RenderSparkline(values []float64) string {
	var peak float64
	for _, v := range values {
		peak = max(peak, v)
	}
	var b strings.Builder
	for _, v := range values {
		if v <= 0 || peak <= 0 {
			b.WriteString(StyleDim.Render(string(sparkLevels[0])))
			continue
		}
		idx := int(v / peak * float64(len(sparkLevels)-1))
		b.WriteString(StyleGreen.Render(string(sparkLevels[idx])))
	}
	return b.String()
}

func bar(frac float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int(clamp(frac, 0, 1) * float64(width))
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}

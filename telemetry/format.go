package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	nameStyle = lipgloss.NewStyle().Bold(true)
	dimStyle  = lipgloss.NewStyle().Faint(true)
	slowStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
)

// slowThreshold marks operations worth drawing attention to in the report.
const slowThreshold = 100 * time.Millisecond

// writeTimingTree renders the tree in a nested view:
//
//	process instruction: 1.2ms
//	├─ parse: 0.4ms
//	├─ validate: 0.1ms
//	└─ execute: 0.2ms
func writeTimingTree(w io.Writer, root *timerNode) {
	_, _ = fmt.Fprintf(w, "%s: %s\n", nameStyle.Render(root.name), styleDuration(root.duration()))

	for i, child := range root.children {
		writeNode(w, child, "", i == len(root.children)-1)
	}
}

func writeNode(w io.Writer, node *timerNode, prefix string, isLast bool) {
	branch, extension := "├─ ", "│  "
	if isLast {
		branch, extension = "└─ ", "   "
	}

	_, _ = fmt.Fprintf(w, "%s%s%s: %s\n", prefix, branch, node.name, styleDuration(node.duration()))

	for i, child := range node.children {
		writeNode(w, child, prefix+extension, i == len(node.children)-1)
	}
}

func styleDuration(d time.Duration) string {
	text := formatDuration(d)
	if d >= slowThreshold {
		return slowStyle.Render(text)
	}
	return dimStyle.Render(text)
}

// formatDuration renders a duration with millisecond granularity for
// sub-second values and two decimals for longer ones.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

// Package render turns a routeplanner.RouteSummary into the three output
// shapes a caller can ask for: plain text for logs and scripting, rich text
// for chat-style surfaces that understand markdown, and a short in-game
// note meant to fit inside the title bar of a waypoint note.
package render

import (
	"fmt"
	"strings"

	"github.com/frontierlabs/evefrontier/internal/flightmechanics"
	"github.com/frontierlabs/evefrontier/internal/routeplanner"
)

// Mode selects one of the three supported render shapes.
type Mode int

const (
	PlainText Mode = iota
	RichText
	InGameNote
)

// Render renders a RouteSummary into the requested mode.
func Render(summary *routeplanner.RouteSummary, mode Mode) string {
	switch mode {
	case RichText:
		return renderRich(summary)
	case InGameNote:
		return renderNote(summary)
	default:
		return renderPlain(summary)
	}
}

func heading(summary *routeplanner.RouteSummary) string {
	if summary.Kind == routeplanner.OutputKindSearch {
		return "Search"
	}
	return "Route"
}

func renderPlain(summary *routeplanner.RouteSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s -> %s\n", heading(summary), summary.StartName, summary.GoalName)
	fmt.Fprintf(&b, "algorithm: %s\n", summary.Algorithm.String())
	fmt.Fprintf(&b, "hops: %d, gates: %d, jumps: %d\n", summary.Hops, summary.Gates, summary.Jumps)

	for _, step := range summary.Steps {
		b.WriteString(renderStepPlain(step))
		b.WriteString("\n")
	}
	return b.String()
}

func renderStepPlain(step routeplanner.RouteStep) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %d. %s", step.Index, step.Name)
	if step.Method != "" {
		fmt.Fprintf(&b, " (%s", step.Method)
		if step.HasDistance {
			fmt.Fprintf(&b, ", %.2f ly", step.Distance)
		}
		b.WriteString(")")
	}
	if step.Fuel != nil {
		fmt.Fprintf(&b, " fuel: %.4f used, %.4f remaining", step.Fuel.HopCost, step.Fuel.Remaining)
		if step.Fuel.Warning != "" {
			fmt.Fprintf(&b, " [%s]", step.Fuel.Warning)
		}
	}
	if step.Heat != nil {
		fmt.Fprintf(&b, " heat: %.2f (%s)", step.Heat.AfterJumpHeat, classLabel(step.Heat.Classification))
		if step.Heat.Warning != "" {
			fmt.Fprintf(&b, " [%s]", step.Heat.Warning)
		}
	}
	return b.String()
}

func renderRich(summary *routeplanner.RouteSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**: %s → %s\n", heading(summary), summary.StartName, summary.GoalName)
	fmt.Fprintf(&b, "algorithm: `%s`\n", summary.Algorithm.String())
	fmt.Fprintf(&b, "hops: **%d**, gates: %d, jumps: %d\n", summary.Hops, summary.Gates, summary.Jumps)

	for _, step := range summary.Steps {
		fmt.Fprintf(&b, "- **%s**", step.Name)
		if step.Method != "" {
			fmt.Fprintf(&b, " (`%s`", step.Method)
			if step.HasDistance {
				fmt.Fprintf(&b, ", %.2f ly", step.Distance)
			}
			b.WriteString(")")
		}
		if step.Heat != nil && step.Heat.Classification == flightmechanics.HeatCriticalClass {
			b.WriteString(" ⚠️ critical heat")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderNote(summary *routeplanner.RouteSummary) string {
	names := make([]string, 0, len(summary.Steps))
	for _, step := range summary.Steps {
		names = append(names, step.Name)
	}
	return fmt.Sprintf("%s: %s", heading(summary), strings.Join(names, " > "))
}

func classLabel(c flightmechanics.HeatClass) string {
	return c.String()
}

package probe

import (
	"fmt"
	"strings"
	"time"
)

func FormatText(report Report) string {
	var b strings.Builder

	b.WriteString("⏱️  PERFORMANCE PROBE\n")
	fmt.Fprintf(&b, "🕐 %s, %d iteration(s) in %s\n",
		report.Started.Format(time.RFC3339), report.Iterations, report.Duration.Round(time.Millisecond))
	b.WriteString(strings.Repeat("=", 50) + "\n")

	for _, step := range report.Steps {
		if step.Rating == RatingFailed {
			fmt.Fprintf(&b, "%s %s: all %d sample(s) failed", step.Rating.Icon(), step.Name, step.Stats.Count)
			if last := lastError(step.Samples); last != "" {
				fmt.Fprintf(&b, " (%s)", last)
			}
			b.WriteString("\n")
			continue
		}

		fmt.Fprintf(&b, "%s %s: avg %s, min %s, max %s",
			step.Rating.Icon(), step.Name,
			ms(step.Stats.Avg), ms(step.Stats.Min), ms(step.Stats.Max))
		if step.Stats.Errors > 0 {
			fmt.Fprintf(&b, ", %d error(s)", step.Stats.Errors)
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("=", 50) + "\n")
	b.WriteString("🟢 fast  🟡 acceptable  🔴 slow  ❌ failed\n")

	return b.String()
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
}

func lastError(samples []Sample) string {
	for i := len(samples) - 1; i >= 0; i-- {
		if samples[i].Error != "" {
			return samples[i].Error
		}
	}
	return ""
}

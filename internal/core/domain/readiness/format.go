package readiness

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func (f *Format) Decode(value string) error {
	switch strings.ToLower(value) {
	case "text", "":
		*f = FormatText
	case "json":
		*f = FormatJSON
	case "yaml", "yml":
		*f = FormatYAML
	default:
		return fmt.Errorf("invalid report format: %s", value)
	}
	return nil
}

func Render(report Report, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return FormatJSONReport(report)
	case FormatYAML:
		return FormatYAMLReport(report)
	default:
		return FormatTextReport(report), nil
	}
}

func statusIcon(status Status) string {
	switch status {
	case StatusPass:
		return "✅"
	case StatusWarning:
		return "⚠️"
	default:
		return "❌"
	}
}

func overallLine(report Report) string {
	switch report.Overall {
	case OverallReady:
		return "🎉 READY FOR DEMO: all checks passed"
	case OverallWarning:
		return "🟡 READY WITH WARNINGS: demo can proceed, review the warnings above"
	default:
		return "🚨 NOT READY: resolve the critical issues before the demo"
	}
}

func FormatTextReport(report Report) string {
	var b strings.Builder

	b.WriteString("🔍 DEMO READINESS REPORT\n")
	fmt.Fprintf(&b, "🕐 %s\n", report.Timestamp.Format(time.RFC3339))
	b.WriteString(strings.Repeat("=", 50) + "\n")

	for _, nr := range report.Results() {
		marker := ""
		if nr.Result.IsCriticalFailure() {
			marker = " [CRITICAL]"
		}
		fmt.Fprintf(&b, "%s %s%s: %s\n", statusIcon(nr.Result.Status), nr.Name, marker, nr.Result.Message)
	}

	if len(report.CriticalIssues) > 0 {
		b.WriteString("\n🚨 Critical issues:\n")
		for _, issue := range report.CriticalIssues {
			fmt.Fprintf(&b, "   • %s\n", issue)
		}
	}

	if len(report.Warnings) > 0 {
		b.WriteString("\n⚠️  Warnings:\n")
		for _, warning := range report.Warnings {
			fmt.Fprintf(&b, "   • %s\n", warning)
		}
	}

	b.WriteString("\n" + strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "%s\n", overallLine(report))
	if report.FallbacksAvailable {
		b.WriteString("🛟 Fallbacks available: database, files and auth can carry a reduced demo\n")
	} else {
		b.WriteString("🛑 Fallbacks unavailable: minimum connectivity is missing\n")
	}

	return b.String()
}

func FormatJSONReport(report Report) (string, error) {
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report as json: %w", err)
	}
	return string(raw) + "\n", nil
}

func FormatYAMLReport(report Report) (string, error) {
	raw, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report as yaml: %w", err)
	}
	return string(raw), nil
}

package narrative

import (
	"embed"
	"fmt"
	"io"
	"text/template"
	"time"

	"demoready/internal/core/domain/readiness"
	"demoready/internal/core/usecase/probe"
)

//go:embed templates/report.md.tmpl
var templates embed.FS

type Environment struct {
	Name         string
	Version      string
	GoVersion    string
	Platform     string
	BackendURL   string
	DatabaseHost string
}

type Document struct {
	Title           string
	Generated       time.Time
	Environment     Environment
	Readiness       readiness.Report
	Probe           probe.Report
	Recommendations []string
}

type Writer struct {
	title string
	tmpl  *template.Template
	now   func() time.Time
}

func NewWriter(title string) (*Writer, error) {
	tmpl, err := template.New("report.md.tmpl").Funcs(template.FuncMap{
		"icon":    icon,
		"yesno":   yesNo,
		"millis":  millis,
		"verdict": verdict,
	}).ParseFS(templates, "templates/report.md.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}

	return &Writer{title: title, tmpl: tmpl, now: time.Now}, nil
}

func (w *Writer) Document(env Environment, ready readiness.Report, perf probe.Report) Document {
	return Document{
		Title:           w.title,
		Generated:       w.now(),
		Environment:     env,
		Readiness:       ready,
		Probe:           perf,
		Recommendations: Recommendations(ready, perf),
	}
}

func (w *Writer) Write(out io.Writer, doc Document) error {
	if err := w.tmpl.Execute(out, doc); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// Recommendations turns critical issues, warnings and slow probe steps into
// action items, most urgent first.
func Recommendations(ready readiness.Report, perf probe.Report) []string {
	out := make([]string, 0)
	for _, issue := range ready.CriticalIssues {
		out = append(out, "Fix before the demo: "+issue)
	}
	for _, warning := range ready.Warnings {
		out = append(out, "Review: "+warning)
	}
	if !ready.FallbacksAvailable {
		out = append(out, "Restore database and file access so a reduced demo remains possible")
	}
	for _, step := range perf.Slowest() {
		if step.Rating == probe.RatingFailed {
			out = append(out, fmt.Sprintf("Probe step %s failed on every attempt", step.Name))
			continue
		}
		out = append(out, fmt.Sprintf("Probe step %s is slow (avg %s)", step.Name, millis(step.Stats.Avg)))
	}
	return out
}

func icon(status readiness.Status) string {
	switch status {
	case readiness.StatusPass:
		return "✅"
	case readiness.StatusWarning:
		return "⚠️"
	default:
		return "❌"
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.1fms", float64(d)/float64(time.Millisecond))
}

func verdict(report readiness.Report) string {
	switch report.Overall {
	case readiness.OverallReady:
		return "All readiness checks passed. The demo environment is ready."
	case readiness.OverallWarning:
		return "The demo can go ahead, but some checks raised warnings."
	default:
		return "The demo environment is **not ready**. Critical checks failed."
	}
}

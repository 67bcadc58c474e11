package probe

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"demoready/internal/core/ports"
	"demoready/internal/platform/logger"
)

type Rating string

const (
	RatingFast       Rating = "fast"
	RatingAcceptable Rating = "acceptable"
	RatingSlow       Rating = "slow"
	RatingFailed     Rating = "failed"
)

func (r Rating) Icon() string {
	switch r {
	case RatingFast:
		return "🟢"
	case RatingAcceptable:
		return "🟡"
	case RatingSlow:
		return "🔴"
	default:
		return "❌"
	}
}

type Sample struct {
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`
}

type Stats struct {
	Count  int           `json:"count"`
	Errors int           `json:"errors"`
	Min    time.Duration `json:"min"`
	Avg    time.Duration `json:"avg"`
	Max    time.Duration `json:"max"`
}

type StepReport struct {
	Name    string   `json:"name"`
	Samples []Sample `json:"samples"`
	Stats   Stats    `json:"stats"`
	Rating  Rating   `json:"rating"`
}

type Report struct {
	Started    time.Time     `json:"started"`
	Duration   time.Duration `json:"duration"`
	Iterations int           `json:"iterations"`
	Steps      []StepReport  `json:"steps"`
}

// Slowest returns the steps rated slow or failed.
func (r Report) Slowest() []StepReport {
	out := make([]StepReport, 0)
	for _, step := range r.Steps {
		if step.Rating == RatingSlow || step.Rating == RatingFailed {
			out = append(out, step)
		}
	}
	return out
}

type SampleRecorder interface {
	RecordProbeSample(ctx context.Context, step string, duration time.Duration, failed bool)
}

// Settings controls how many rounds run, how fast samples are taken and where
// the rating thresholds sit.
type Settings struct {
	Iterations    int
	Rate          float64
	FastThreshold time.Duration
	SlowThreshold time.Duration
}

type Prober struct {
	steps      []ports.ProbeStep
	iterations int
	limiter    *rate.Limiter
	fast       time.Duration
	slow       time.Duration
	recorder   SampleRecorder
	now        func() time.Time
}

// NewProber times steps. recorder may be nil.
func NewProber(steps []ports.ProbeStep, settings Settings, recorder SampleRecorder) *Prober {
	return &Prober{
		steps:      steps,
		iterations: settings.Iterations,
		limiter:    rate.NewLimiter(rate.Limit(settings.Rate), 1),
		fast:       settings.FastThreshold,
		slow:       settings.SlowThreshold,
		recorder:   recorder,
		now:        time.Now,
	}
}

// Run executes every step once per iteration. Failed samples are recorded and
// never retried. The only error is ctx ending while waiting for the limiter.
func (p *Prober) Run(ctx context.Context) (Report, error) {
	log := logger.FromContext(ctx)
	log.Info("Starting performance probe",
		logger.Int("steps", len(p.steps)),
		logger.Int("iterations", p.iterations),
	)

	report := Report{Started: p.now(), Iterations: p.iterations}
	samples := make([][]Sample, len(p.steps))

	for i := 0; i < p.iterations; i++ {
		for j, step := range p.steps {
			if err := p.limiter.Wait(ctx); err != nil {
				return Report{}, fmt.Errorf("failed to wait for probe slot: %w", err)
			}
			samples[j] = append(samples[j], p.sample(ctx, step))
		}
	}

	for j, step := range p.steps {
		stats := computeStats(samples[j])
		report.Steps = append(report.Steps, StepReport{
			Name:    step.Name(),
			Samples: samples[j],
			Stats:   stats,
			Rating:  p.rate(stats),
		})
	}
	report.Duration = p.now().Sub(report.Started)

	log.Info("Performance probe completed",
		logger.Duration("duration", report.Duration),
		logger.Int("slow_steps", len(report.Slowest())),
	)

	return report, nil
}

func (p *Prober) sample(ctx context.Context, step ports.ProbeStep) Sample {
	start := p.now()
	err := step.Run(ctx)
	sample := Sample{Duration: p.now().Sub(start)}
	if err != nil {
		sample.Error = err.Error()
		logger.FromContext(ctx).Debug("Probe sample failed",
			logger.String("step", step.Name()),
			logger.Error(err),
		)
	}

	if p.recorder != nil {
		p.recorder.RecordProbeSample(ctx, step.Name(), sample.Duration, err != nil)
	}

	return sample
}

func (p *Prober) rate(stats Stats) Rating {
	switch {
	case stats.Count == 0 || stats.Errors == stats.Count:
		return RatingFailed
	case stats.Avg < p.fast:
		return RatingFast
	case stats.Avg < p.slow:
		return RatingAcceptable
	default:
		return RatingSlow
	}
}

// computeStats summarises the successful samples; failures only count.
func computeStats(samples []Sample) Stats {
	stats := Stats{Count: len(samples)}

	var total time.Duration
	ok := 0
	for _, s := range samples {
		if s.Error != "" {
			stats.Errors++
			continue
		}
		if ok == 0 || s.Duration < stats.Min {
			stats.Min = s.Duration
		}
		if s.Duration > stats.Max {
			stats.Max = s.Duration
		}
		total += s.Duration
		ok++
	}
	if ok > 0 {
		stats.Avg = total / time.Duration(ok)
	}

	return stats
}

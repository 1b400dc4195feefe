package core

import (
	"context"
	"time"

	"pfasscreen/pkg/domain"
)

const opScreen = "screen"

// Service validates caller input, runs the engine and reports the outcome to
// the configured logger, metrics recorder and tracer.
type Service struct {
	engine  *Engine
	logger  Logger
	metrics MetricsRecorder
	tracer  Tracer
	now     func() time.Time
}

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(l Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m MetricsRecorder) ServiceOption {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithTracer sets the tracer.
func WithTracer(t Tracer) ServiceOption {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

// NewService constructs a service around engine. A nil engine selects
// NewDefaultEngine.
func NewService(engine *Engine, opts ...ServiceOption) *Service {
	if engine == nil {
		engine = NewDefaultEngine()
	}
	s := &Service{
		engine:  engine,
		logger:  noopLogger{},
		metrics: noopMetrics{},
		tracer:  noopTracer{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine returns the engine used by the service.
func (s *Service) Engine() *Engine { return s.engine }

// Screen prepares and screens one sample.
func (s *Service) Screen(ctx context.Context, in domain.EngineInput) (out domain.EngineOutput, err error) {
	ctx, span := s.tracer.Start(ctx, opScreen)
	started := s.now()
	defer func() {
		span.End(err)
		s.metrics.Observe(ctx, opScreen, err == nil, s.now().Sub(started))
		if err != nil {
			s.logger.Error("screening failed", "sample_id", in.SampleID, "error", err)
		}
	}()

	if err = ctx.Err(); err != nil {
		return domain.EngineOutput{}, err
	}
	prepared, err := PrepareInput(in)
	if err != nil {
		return domain.EngineOutput{}, err
	}
	if dropped := len(in.Species) - len(prepared.Species); dropped > 0 {
		s.logger.Debug("dropped empty species rows", "sample_id", prepared.SampleID, "dropped", dropped)
	}

	out = s.engine.Run(prepared)
	s.metrics.ObserveScreening(ctx, out)
	s.logger.Info("screening complete",
		"sample_id", out.SampleID,
		"overall_status", string(out.OverallStatus),
		"highest_classification", string(out.M2.HighestClassification),
		"flags", flagIDs(out.M2.Flags),
		"total_pfas_mg_l", out.M1.TotalPFAS,
		"missing_required", out.M3.HasMissingRequired,
		"high_matrix", out.M3.HasHighMatrix,
	)
	return out, nil
}

func flagIDs(flags []domain.ReactivityFlag) []string {
	ids := make([]string, len(flags))
	for i, f := range flags {
		ids[i] = f.RuleID
	}
	return ids
}

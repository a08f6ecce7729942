package analysis

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/briefing-team/briefing-analyzer/internal/domain/entities"
	"github.com/briefing-team/briefing-analyzer/pkg/config"
)

// State is the pipeline's position in its invocation lifecycle
type State string

const (
	StateIdle      State = "idle"
	StateParsed    State = "parsed"
	StateValidated State = "validated"
	StateRejected  State = "rejected"
	StateScored    State = "scored"
	StateReported  State = "reported"
)

// Result is the terminal output of one pipeline invocation. A Rejected
// result carries only the validation report; a Reported result carries both
// the report and the scored batch.
type Result struct {
	InvocationID uuid.UUID
	State        State
	Report       *entities.ValidationReport
	Batch        *entities.BatchResult
}

// Service defines the briefing analysis operations consumed by transports
type Service interface {
	Analyze(ctx context.Context, raw string, format Format) (*Result, error)
	Validate(ctx context.Context, raw string, format Format) (*entities.ValidationReport, error)
}

// Pipeline sequences parse, validate, score and recommend for one batch.
// Each invocation owns its records, report and results; the shared
// configuration is read-only, so a Pipeline is safe for concurrent use.
type Pipeline struct {
	parser      *Parser
	validator   *Validator
	calculator  *Calculator
	recommender *Recommender
	logger      *zap.Logger
}

// NewPipeline constructs a pipeline for the given tunables. The logger may
// be nil.
func NewPipeline(cfg config.AnalysisConfig, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		parser:      NewParser(),
		validator:   NewValidator(),
		calculator:  NewCalculator(cfg),
		recommender: NewRecommender(cfg),
		logger:      logger,
	}
}

// Analyze runs the full pipeline. Parsing failures abort before validation;
// an invalid batch terminates in StateRejected with no metrics computed;
// otherwise the batch is scored, classified and handed back for rendering.
func (p *Pipeline) Analyze(ctx context.Context, raw string, format Format) (*Result, error) {
	result := &Result{InvocationID: uuid.New(), State: StateIdle}

	records, err := p.parser.Parse(raw, format)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn("briefing.parse.failed",
				zap.String("invocation_id", result.InvocationID.String()),
				zap.String("format", string(format)),
				zap.Error(err),
			)
		}
		return nil, err
	}
	result.State = StateParsed

	report, canonical := p.validator.Validate(records)
	result.State = StateValidated
	result.Report = report

	if !report.IsValid {
		result.State = StateRejected
		if p.logger != nil {
			p.logger.Info("briefing.batch.rejected",
				zap.String("invocation_id", result.InvocationID.String()),
				zap.Int("total_records", report.TotalRecords),
				zap.Int("error_count", len(report.Errors)),
			)
		}
		return result, nil
	}

	batch, err := p.calculator.Calculate(canonical)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("briefing.scoring.failed",
				zap.String("invocation_id", result.InvocationID.String()),
				zap.Error(err),
			)
		}
		return nil, err
	}
	p.recommender.Apply(batch)
	result.State = StateScored
	result.Batch = batch

	result.State = StateReported
	if p.logger != nil {
		p.logger.Info("briefing.batch.scored",
			zap.String("invocation_id", result.InvocationID.String()),
			zap.Int("total_records", report.TotalRecords),
			zap.Bool("average_key_metric_defined", batch.AverageKeyMetric != nil),
		)
	}
	return result, nil
}

// Validate runs parse and field validation only, producing the report for
// either outcome
func (p *Pipeline) Validate(ctx context.Context, raw string, format Format) (*entities.ValidationReport, error) {
	records, err := p.parser.Parse(raw, format)
	if err != nil {
		return nil, err
	}
	report, _ := p.validator.Validate(records)
	return report, nil
}

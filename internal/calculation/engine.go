package calculation

import (
	"github.com/taxlab/bizcalc/internal/domain"
)

// InvestmentEngine orchestrates the investment analysis: loan schedule,
// cash-flow projection, then summary metrics. It is synchronous and holds no
// mutable state across calls, so concurrent invocations need no coordination.
type InvestmentEngine struct {
	Projector *Projector
	Metrics   *MetricsCalculator
	Logger    Logger
}

// NewInvestmentEngine creates an engine wired to the given logger, defaulting
// to a no-op logger.
func NewInvestmentEngine(logger Logger) *InvestmentEngine {
	if logger == nil {
		logger = NopLogger{}
	}
	return &InvestmentEngine{
		Projector: NewProjector(logger),
		Metrics:   NewMetricsCalculator(logger),
		Logger:    logger,
	}
}

// SetLogger replaces the engine logger; nil installs the no-op logger.
func (e *InvestmentEngine) SetLogger(logger Logger) {
	if logger == nil {
		logger = NopLogger{}
	}
	e.Logger = logger
	e.Projector.Logger = logger
	e.Metrics.Logger = logger
}

// Analyze runs a full investment analysis. Configuration problems (non-positive
// investment, empty revenue series, investment fully offset by the policy
// loan, impossible loan windows) abort with a ConfigError and no partial
// result.
func (e *InvestmentEngine) Analyze(input *domain.InvestmentAnalysisInput) (*domain.InvestmentAnalysisResult, error) {
	if err := e.validate(input); err != nil {
		return nil, err
	}

	var schedule *domain.LoanSchedule
	if loan := input.PolicyLoan; loan != nil && loan.Amount > 0 {
		var err error
		schedule, err = ComputeLoanSchedule(loan.Amount, loan.Rate, loan.TermYears, loan.GraceYears, loan.RepaymentYears)
		if err != nil {
			return nil, err
		}
	}

	flows := e.Projector.Project(input, schedule)
	actual := input.ActualInvestment()

	// Metric series: the actual outlay at year 0, then the projected flows.
	series := make([]float64, 0, len(flows)+1)
	series = append(series, -actual)
	for _, f := range flows {
		series = append(series, f.NetCashFlow)
	}

	result := &domain.InvestmentAnalysisResult{
		NPV:                e.Metrics.NPV(series, domain.BoundDiscountRate.Clamp(input.DiscountRate)/100),
		IRR:                e.Metrics.IRR(series),
		PaybackPeriod:      e.Metrics.PaybackPeriod(flows),
		DSCR:               e.Metrics.DSCR(flows),
		ROI:                e.Metrics.ROI(flows, actual),
		ProfitabilityIndex: e.Metrics.ProfitabilityIndex(flows, actual),
		CashFlows:          flows,
	}

	e.Logger.Debugf("analysis complete: NPV=%.0f IRR=%.4f payback=%d", result.NPV, result.IRR, result.PaybackPeriod)
	return result, nil
}

func (e *InvestmentEngine) validate(input *domain.InvestmentAnalysisInput) error {
	if input.InitialInvestment <= 0 {
		return &ConfigError{Op: "analyze_investment", Message: "initial investment must be positive"}
	}
	if len(input.AnnualRevenue) == 0 {
		return &ConfigError{Op: "analyze_investment", Message: "annual revenue series is empty"}
	}
	if input.AnalysisYears <= 0 {
		return &ConfigError{Op: "analyze_investment", Message: "analysis horizon must be at least one year"}
	}
	if input.ActualInvestment() <= 0 {
		return &ConfigError{Op: "analyze_investment", Message: "policy loan fully offsets the initial investment; actual investment must be positive"}
	}
	return nil
}

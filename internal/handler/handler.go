package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"tax-simulator/internal/engine"
	"tax-simulator/internal/metrics"
	"tax-simulator/internal/model"
)

const (
	RouteCalculate = "/api/tax/calculate"
	RouteBreakdown = "/api/tax/breakdown"
	RouteHealth    = "/health"
	RouteMetrics   = "/metrics"

	serviceName = "tax-simulator"
)

type Handler struct {
	logger         zerolog.Logger
	metrics        *metrics.Metrics
	metricsHandler fasthttp.RequestHandler
}

func New(logger zerolog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:         logger,
		metrics:        m,
		metricsHandler: m.Handler(),
	}
}

// Router returns the complete request handler: routing wrapped in panic
// recovery, wrapped in request logging.
func (h *Handler) Router() fasthttp.RequestHandler {
	return h.withLogging(h.withRecovery(h.route))
}

func (h *Handler) route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case RouteCalculate:
		switch {
		case ctx.IsGet():
			h.CalculateFromQuery(ctx)
		case ctx.IsPost():
			h.CalculateFromBody(ctx)
		default:
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		}
	case RouteBreakdown:
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.Breakdown(ctx)
	case RouteHealth:
		writeJSON(ctx, fasthttp.StatusOK, model.HealthResponse{Status: "healthy", Service: serviceName})
	case RouteMetrics:
		h.metricsHandler(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

// CalculateFromQuery handles GET /api/tax/calculate.
func (h *Handler) CalculateFromQuery(ctx *fasthttp.RequestCtx) {
	input, err := householdFromQuery(ctx.QueryArgs())
	if err != nil {
		h.metrics.ObserveCalculation(metrics.OutcomeBadRequest)
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	h.calculate(ctx, input)
}

// CalculateFromBody handles POST /api/tax/calculate.
func (h *Handler) CalculateFromBody(ctx *fasthttp.RequestCtx) {
	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.metrics.ObserveCalculation(metrics.OutcomeBadRequest)
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.CheckAmounts(); err != nil {
		h.metrics.ObserveCalculation(metrics.OutcomeBadRequest)
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	h.calculate(ctx, req.Household())
}

func (h *Handler) calculate(ctx *fasthttp.RequestCtx, input model.HouseholdInput) {
	tax, err := engine.ComputeAnnualTax(input)
	if err != nil {
		h.writeCalculationError(ctx, err)
		return
	}

	h.metrics.ObserveCalculation(metrics.OutcomeSuccess)
	writeJSON(ctx, fasthttp.StatusOK, json.Number(tax.StringFixed(2)))
}

// Breakdown handles GET /api/tax/breakdown.
func (h *Handler) Breakdown(ctx *fasthttp.RequestCtx) {
	input, err := householdFromQuery(ctx.QueryArgs())
	if err != nil {
		h.metrics.ObserveCalculation(metrics.OutcomeBadRequest)
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	b, err := engine.ComputeBreakdown(input)
	if err != nil {
		h.writeCalculationError(ctx, err)
		return
	}
	elapsed := time.Since(start)

	h.metrics.ObserveCalculation(metrics.OutcomeSuccess)
	writeJSON(ctx, fasthttp.StatusOK, breakdownResponse(b, start, elapsed))
}

func (h *Handler) writeCalculationError(ctx *fasthttp.RequestCtx, err error) {
	var invalid *engine.InvalidInputError
	if errors.As(err, &invalid) {
		h.metrics.ObserveCalculation(metrics.OutcomeInvalidInput)
		writeError(ctx, fasthttp.StatusBadRequest, invalid.Message)
		return
	}

	requestLogger(ctx, h.logger).Error().Err(err).Msg("tax calculation failed")
	writeError(ctx, fasthttp.StatusInternalServerError, internalErrorMessage)
}

func householdFromQuery(args *fasthttp.Args) (model.HouseholdInput, error) {
	for _, name := range []string{model.ParamFamilyStatus, model.ParamMonthlyIncome, model.ParamPartnerIncome, model.ParamChildren} {
		if !args.Has(name) {
			return model.HouseholdInput{}, fmt.Errorf("missing required parameter %s", name)
		}
	}

	primary, err := model.ParseAmount(string(args.Peek(model.ParamMonthlyIncome)))
	if err != nil {
		return model.HouseholdInput{}, fmt.Errorf("invalid value for %s", model.ParamMonthlyIncome)
	}
	partner, err := model.ParseAmount(string(args.Peek(model.ParamPartnerIncome)))
	if err != nil {
		return model.HouseholdInput{}, fmt.Errorf("invalid value for %s", model.ParamPartnerIncome)
	}
	children, err := strconv.Atoi(string(args.Peek(model.ParamChildren)))
	if err != nil {
		return model.HouseholdInput{}, fmt.Errorf("invalid value for %s", model.ParamChildren)
	}

	status, _ := model.ParseFamilyStatus(string(args.Peek(model.ParamFamilyStatus)))
	return model.HouseholdInput{
		FamilyStatus:         status,
		MonthlyIncomePrimary: primary,
		MonthlyIncomePartner: partner,
		NumberOfChildren:     children,
	}, nil
}

func breakdownResponse(b engine.Breakdown, start time.Time, elapsed time.Duration) model.BreakdownResponse {
	segments := make([]model.BracketSegment, 0, len(b.Segments))
	for _, s := range b.Segments {
		seg := model.BracketSegment{
			LowerBound: number(s.LowerBound, 2),
			Rate:       number(s.Rate, 2),
			Taxable:    number(s.Taxable, 2),
			Tax:        number(s.Tax, 2),
		}
		if s.Bounded {
			upper := number(s.UpperBound, 2)
			seg.UpperBound = &upper
		}
		segments = append(segments, seg)
	}

	return model.BreakdownResponse{
		CalculationID:         uuid.New().String(),
		CalculatedAt:          start.UTC().Format(time.RFC3339),
		CalculationDurationUs: elapsed.Microseconds(),
		FamilyStatus:          b.Input.FamilyStatus.String(),
		AnnualIncome:          number(b.AnnualIncome, 2),
		FiscalParts:           number(b.FiscalParts, 1),
		PerPartIncome:         number(b.PerPartIncome, 2),
		Segments:              segments,
		PerPartTax:            number(b.PerPartTax, 2),
		AnnualTax:             number(b.Tax, 2),
	}
}

func number(d decimal.Decimal, places int32) json.Number {
	return json.Number(d.StringFixed(places))
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, internalErrorMessage)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

// writeError writes message as a plain-text body.
func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetContentType("text/plain; charset=utf-8")
	ctx.SetStatusCode(status)
	ctx.SetBodyString(message)
}

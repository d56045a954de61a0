package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenloop/impactcalc/internal/impact"
	"github.com/greenloop/impactcalc/internal/logging"
	"github.com/greenloop/impactcalc/internal/metrics"
	"github.com/greenloop/impactcalc/pkg/version"
)

// CalculationRecorder receives one outcome per calculator request.
type CalculationRecorder interface {
	RecordCalculation(productType, frequency, outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordCalculation(string, string, string) {}

// Exact request keys. encoding/json matches struct tags case-insensitively,
// so the body is decoded into a map and these keys are looked up verbatim.
const (
	keyProductType = "productType"
	keyQuantity    = "quantity"
	keyFrequency   = "frequency"
)

// calculationRequest keeps every field untyped so validation can tell
// missing values from wrongly typed ones.
type calculationRequest struct {
	ProductType any
	Quantity    any
	Frequency   any
}

// requestFromBody picks the exact request keys out of a decoded body. A nil
// body (JSON null) yields a request with every field missing.
func requestFromBody(body map[string]any) calculationRequest {
	return calculationRequest{
		ProductType: body[keyProductType],
		Quantity:    body[keyQuantity],
		Frequency:   body[keyFrequency],
	}
}

// ImpactHandler serves the impact calculator routes.
type ImpactHandler struct {
	recorder CalculationRecorder
}

// NewImpactHandler creates a handler. A nil recorder disables calculation
// metrics.
func NewImpactHandler(recorder CalculationRecorder) *ImpactHandler {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &ImpactHandler{recorder: recorder}
}

// RegisterRoutes mounts the calculator routes under group.
func (h *ImpactHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/impact-calculator", h.Calculate)
	group.GET("/impact-calculator/options", h.Options)
}

// Calculate handles POST /api/impact-calculator.
func (h *ImpactHandler) Calculate(c *gin.Context) {
	log := logging.FromContext(c.Request.Context())
	var req calculationRequest

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().
				Str("panic", fmt.Sprint(rec)).
				Msg("impact calculation panicked")
			h.recorder.RecordCalculation(labelOf(req.ProductType), labelOf(req.Frequency), metrics.OutcomeError)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: MsgCalculateFailed})
		}
	}()

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Int64("limit", tooLarge.Limit).Msg("request body too large")
			h.recorder.RecordCalculation("", "", metrics.OutcomeInvalid)
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: MsgBodyTooLarge})
			return
		}
		log.Error().Err(err).Msg("failed to decode impact calculation request")
		h.recorder.RecordCalculation("", "", metrics.OutcomeError)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: MsgCalculateFailed})
		return
	}
	req = requestFromBody(body)

	productType, frequency, msg := validate(req)
	if msg != "" {
		log.Debug().Str("reason", msg).Msg("rejected impact calculation request")
		h.recorder.RecordCalculation(labelOf(req.ProductType), labelOf(req.Frequency), metrics.OutcomeInvalid)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
		return
	}

	quantity := toNumber(req.Quantity)
	result, err := impact.Compute(productType, quantity, frequency)
	if err != nil {
		log.Error().
			Err(err).
			Str("product_type", string(productType)).
			Str("frequency", string(frequency)).
			Str("quantity", displayString(req.Quantity)).
			Msg("impact calculation failed")
		h.recorder.RecordCalculation(string(productType), string(frequency), metrics.OutcomeError)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: MsgCalculateFailed})
		return
	}

	log.Debug().
		Str("product_type", string(productType)).
		Str("frequency", string(frequency)).
		Float64("annual_quantity", result.AnnualQuantity).
		Float64("co2_saved", result.Savings.CO2).
		Msg("impact calculated")
	h.recorder.RecordCalculation(string(productType), string(frequency), metrics.OutcomeOK)
	c.JSON(http.StatusOK, result)
}

// Options handles GET /api/impact-calculator/options.
func (h *ImpactHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, OptionsResponse{
		ProductTypes: impact.ProductTypes(),
		Frequencies:  impact.Frequencies(),
	})
}

// Health handles GET /healthz.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: version.GetVersion()})
}

// validate applies the request checks in order: presence of all three
// fields, then product type, then frequency. It returns the client message
// for the first failure, or "" with the parsed enums.
func validate(req calculationRequest) (impact.ProductType, impact.Frequency, string) {
	if !truthy(req.ProductType) || !truthy(req.Quantity) || !truthy(req.Frequency) {
		return "", "", MsgMissingFields
	}

	p, ok := req.ProductType.(string)
	productType := impact.ProductType(p)
	if !ok || !productType.IsValid() {
		return "", "", invalidProductTypeMessage(displayString(req.ProductType))
	}

	f, ok := req.Frequency.(string)
	frequency := impact.Frequency(f)
	if !ok || !frequency.IsValid() {
		return "", "", invalidFrequencyMessage(displayString(req.Frequency))
	}

	return productType, frequency, ""
}

// labelOf returns v as a metric label; non-strings become "".
func labelOf(v any) string {
	s, _ := v.(string)
	return s
}

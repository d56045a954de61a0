package api

import (
	"fmt"
	"strings"

	"github.com/greenloop/impactcalc/internal/impact"
)

// Error messages returned to clients. The calculator messages are part of
// the storefront contract and must not change.
const (
	MsgMissingFields   = "Missing required fields: productType, quantity, and frequency are required"
	MsgCalculateFailed = "Failed to calculate environmental impact"
	MsgInternal        = "Internal server error"
	MsgTooManyRequests = "Too many requests"
	MsgNotFound        = "Not found"
	MsgBodyTooLarge    = "Request body too large"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OptionsResponse lists the accepted enum values for the calculator form.
type OptionsResponse struct {
	ProductTypes []impact.ProductType `json:"productTypes"`
	Frequencies  []impact.Frequency   `json:"frequencies"`
}

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func invalidProductTypeMessage(value string) string {
	return fmt.Sprintf("Invalid product type: %s. Valid types are: %s", value, joinEnum(impact.ProductTypes()))
}

func invalidFrequencyMessage(value string) string {
	return fmt.Sprintf("Invalid frequency: %s. Valid frequencies are: %s", value, joinEnum(impact.Frequencies()))
}

func joinEnum[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// Package dto defines the request and response payloads of the HTTP API.
// Monetary values are rendered as fixed two-decimal strings so clients never
// see float artifacts.
package dto

import "github.com/shopspring/decimal"

func formatMoney(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func formatRate(v float64) string {
	return decimal.NewFromFloat(v).String()
}

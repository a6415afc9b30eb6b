// Package dto defines data transfer objects for API requests and responses.
package dto

// QueueDigestResponse represents the response for queueing the monthly digest.
type QueueDigestResponse struct {
	Queued      bool   `json:"queued"`
	ReportMonth string `json:"report_month"`
}

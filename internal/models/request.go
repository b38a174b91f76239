package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// AnalyzeRequest is the user-initiated submission forwarded to the analysis
// engine. Field constraints mirror the engine's own checks so bad input is
// rejected before a request is issued.
type AnalyzeRequest struct {
	Ticker    string `json:"ticker" validate:"required"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	NumOfNews int    `json:"num_of_news" validate:"omitempty,min=1,max=100"`
}

// Normalize uppercases the ticker and fills defaults: today's date and the
// configured article count.
func (r *AnalyzeRequest) Normalize(defaultNewsCount int) {
	r.Ticker = strings.ToUpper(strings.TrimSpace(r.Ticker))
	if r.EndDate == "" {
		r.EndDate = time.Now().Format("2006-01-02")
	}
	if r.NumOfNews == 0 {
		r.NumOfNews = defaultNewsCount
	}
}

// Validate checks the request constraints and returns a human-readable message
// for the first violation, or "" when the request is valid.
func (r *AnalyzeRequest) Validate() string {
	err := validate.Struct(r)
	if err == nil {
		return ""
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Invalid request"
	}

	switch errs[0].Field() {
	case "Ticker":
		return "Ticker symbol is required"
	case "EndDate":
		return "End date must be a valid date (YYYY-MM-DD)"
	case "NumOfNews":
		return "Number of news articles must be between 1 and 100"
	}
	return "Invalid request"
}

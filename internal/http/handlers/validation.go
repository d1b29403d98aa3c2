package handlers

import (
	"strings"
	"time"

	"github.com/salesboard/salesboard/internal/models"
)

type QueryValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateQuery(q models.Query) []QueryValidationError {
	errs := []QueryValidationError{}
	if strings.TrimSpace(q.Shop) == "" {
		errs = append(errs, QueryValidationError{Field: "shop", Description: "shop is required"})
	}
	start, startErr := time.Parse(models.DateFormat, q.StartDate)
	if startErr != nil {
		errs = append(errs, QueryValidationError{Field: "start_date", Description: "start_date must be YYYY-MM-DD"})
	}
	end, endErr := time.Parse(models.DateFormat, q.EndDate)
	if endErr != nil {
		errs = append(errs, QueryValidationError{Field: "end_date", Description: "end_date must be YYYY-MM-DD"})
	}
	if startErr == nil && endErr == nil && end.Before(start) {
		errs = append(errs, QueryValidationError{Field: "end_date", Description: "end_date cannot precede start_date"})
	}
	if !q.GroupBy.Valid() {
		errs = append(errs, QueryValidationError{Field: "group_by", Description: "group_by must be date or category"})
	}
	if !q.Metric.Valid() {
		errs = append(errs, QueryValidationError{Field: "metric", Description: "metric must be revenue or units"})
	}
	if !q.ChartType.Valid() {
		errs = append(errs, QueryValidationError{Field: "chart_type", Description: "chart_type must be bar or line"})
	}
	return errs
}

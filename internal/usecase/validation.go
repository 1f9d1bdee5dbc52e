package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/construction-sites/crm/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationDomainError(errs []ValidationError) *DomainError {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+" ("+e.Message+")")
	}
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: "validation failed: " + strings.Join(parts, ", "),
	}
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.OwnerID) == "" {
		errs = append(errs, ValidationError{"user", "is required"})
	}
	if strings.TrimSpace(input.BusinessName) == "" {
		errs = append(errs, ValidationError{"businessName", "is required"})
	} else if len(input.BusinessName) > 200 {
		errs = append(errs, ValidationError{"businessName", "must not exceed 200 characters"})
	}

	return errs
}

func ValidateUpdateLeadInput(input UpdateLeadInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.OwnerID) == "" {
		errs = append(errs, ValidationError{"user", "is required"})
	}
	if strings.TrimSpace(input.ID) == "" {
		errs = append(errs, ValidationError{"id", "is required"})
	}

	if input.Status != nil && !entity.Status(*input.Status).Valid() {
		errs = append(errs, ValidationError{"status", "is not a known status"})
	}
	if input.AgreementStatus != nil && !entity.AgreementState(*input.AgreementStatus).Valid() {
		errs = append(errs, ValidationError{"agreementStatus", "must be not-sent, sent or signed"})
	}
	if input.CallbackDate != nil && *input.CallbackDate != "" && !isValidDate(*input.CallbackDate) {
		errs = append(errs, ValidationError{"callbackDate", "must be a valid date (YYYY-MM-DD)"})
	}
	if input.MockupLinks != nil && len(*input.MockupLinks) > 3 {
		errs = append(errs, ValidationError{"mockupLinks", "at most 3 links"})
	}
	if input.MonthlyFee != nil && *input.MonthlyFee < 0 {
		errs = append(errs, ValidationError{"monthlyFee", "must not be negative"})
	}

	return errs
}

func isValidDate(dateStr string) bool {
	_, err := time.Parse("2006-01-02", dateStr)
	return err == nil
}

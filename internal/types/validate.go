package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// dateLayouts are the accepted input formats for resume dates. Form screens
// submit month-granularity values; full dates and bare years are tolerated.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// FieldError reports a validation failure on a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

// ParseDate parses a resume date string in any accepted layout.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Validate validates the PersonalInfo section.
func (p *PersonalInfo) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Validate validates an Experience entry, including the current/end-date
// invariant and date ordering.
func (e *Experience) Validate() error {
	validate := validator.New()
	if err := validate.Struct(e); err != nil {
		return err
	}
	return validateDateRange("experience", e.StartDate, e.EndDate, e.Current)
}

// Validate validates an Education entry with the same date rules as Experience.
func (e *Education) Validate() error {
	validate := validator.New()
	if err := validate.Struct(e); err != nil {
		return err
	}
	return validateDateRange("education", e.StartDate, e.EndDate, e.Current)
}

// Validate validates a Skill entry.
func (s *Skill) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// Validate validates a Project entry. Project dates are optional but must be
// ordered when both are present.
func (p *Project) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	if p.StartDate == "" || p.EndDate == "" || p.Current {
		return nil
	}
	return validateDateRange("project", p.StartDate, p.EndDate, false)
}

// Validate validates a Certificate entry. The issue date must not be in the
// future.
func (c *Certificate) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}

	issued, err := ParseDate(c.Date)
	if err != nil {
		return &FieldError{Field: "date", Message: err.Error()}
	}
	if issued.After(time.Now()) {
		return &FieldError{Field: "date", Message: "issue date must not be in the future"}
	}
	return nil
}

func validateDateRange(entity, start, end string, current bool) error {
	startDate, err := ParseDate(start)
	if err != nil {
		return &FieldError{Field: entity + ".start_date", Message: err.Error()}
	}

	if current {
		if end != "" {
			return &FieldError{Field: entity + ".end_date", Message: "must be empty for a current entry"}
		}
		return nil
	}

	if end == "" {
		return &FieldError{Field: entity + ".end_date", Message: "required unless the entry is current"}
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return &FieldError{Field: entity + ".end_date", Message: err.Error()}
	}
	if endDate.Before(startDate) {
		return &FieldError{Field: entity + ".end_date", Message: "must not precede start date"}
	}
	return nil
}

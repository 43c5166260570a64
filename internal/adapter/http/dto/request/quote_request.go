package request

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ChumaGrandmaster/chuma-grandmaster-webapp/internal/domain/entities"
)

// CreateQuoteRequest is the public intake payload. Validation is pure:
// it inspects the payload only and never touches storage.
type CreateQuoteRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,phone_shape"`
	Company     string `json:"company" validate:"omitempty,max=100"`
	ProjectType string `json:"projectType" validate:"required,project_type"`
	Budget      string `json:"budget" validate:"required,budget_range"`
	Timeline    string `json:"timeline" validate:"required,timeline"`
	Description string `json:"description" validate:"required,min=10,max=1000"`
}

// UpdateQuoteStatusRequest carries a status transition. The value is
// checked against the closed status set by the use case.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// FieldError names one offending field with a human-readable reason.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// phoneShapeRe accepts an optional leading +, digits and common
// separators. plausiblePhone additionally requires 7-15 digits.
var phoneShapeRe = regexp.MustCompile(`^\+?[0-9().\-\s]{6,19}[0-9]$`)

func plausiblePhone(s string) bool {
	if !phoneShapeRe.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Closed sets come from the entity's canonical label maps; the
	// option lists are never re-declared here.
	mustRegister(v, "project_type", inSet(entities.ProjectTypeLabels))
	mustRegister(v, "budget_range", inSet(entities.BudgetLabels))
	mustRegister(v, "timeline", inSet(entities.TimelineLabels))
	mustRegister(v, "phone_shape", func(fl validator.FieldLevel) bool {
		return plausiblePhone(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func inSet(set map[string]string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	}
}

// Validate checks the payload against the intake rules and returns one
// FieldError per violation, or nil when the payload is acceptable.
// Leading/trailing whitespace does not count toward length bounds.
func (r CreateQuoteRequest) Validate() []FieldError {
	c := r
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Company = strings.TrimSpace(c.Company)
	c.Description = strings.TrimSpace(c.Description)

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "payload", Message: "invalid payload"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "phone_shape":
		return "must be a plausible phone number"
	case "project_type":
		return "must be one of: " + setKeys(entities.ProjectTypeLabels)
	case "budget_range":
		return "must be one of: " + setKeys(entities.BudgetLabels)
	case "timeline":
		return "must be one of: " + setKeys(entities.TimelineLabels)
	default:
		return "is invalid"
	}
}

func setKeys(set map[string]string) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}

package request

import (
	"strings"
	"testing"
)

func validCreateQuoteRequest() CreateQuoteRequest {
	return CreateQuoteRequest{
		Name:        "Jane Roe",
		Email:       "jane@x.com",
		Phone:       "+15551234567",
		ProjectType: "website",
		Budget:      "under-5k",
		Timeline:    "flexible",
		Description: "Need a 5-page brochure site for my bakery",
	}
}

func TestCreateQuoteRequest_Validate(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		if errs := validCreateQuoteRequest().Validate(); errs != nil {
			t.Fatalf("expected no violations, got %+v", errs)
		}
	})

	t.Run("optional company may be empty", func(t *testing.T) {
		r := validCreateQuoteRequest()
		r.Company = ""
		if errs := r.Validate(); errs != nil {
			t.Fatalf("expected no violations, got %+v", errs)
		}
	})

	t.Run("whitespace does not count toward bounds", func(t *testing.T) {
		r := validCreateQuoteRequest()
		r.Description = "   short    "
		errs := r.Validate()
		if len(errs) != 1 || errs[0].Field != "description" {
			t.Fatalf("expected a description violation, got %+v", errs)
		}
	})

	cases := []struct {
		name    string
		mutate  func(*CreateQuoteRequest)
		field   string
		message string
	}{
		{"name too short", func(r *CreateQuoteRequest) { r.Name = "J" }, "name", "at least 2"},
		{"name too long", func(r *CreateQuoteRequest) { r.Name = strings.Repeat("a", 101) }, "name", "at most 100"},
		{"missing email", func(r *CreateQuoteRequest) { r.Email = "" }, "email", "required"},
		{"malformed email", func(r *CreateQuoteRequest) { r.Email = "not-an-address" }, "email", "valid email"},
		{"implausible phone", func(r *CreateQuoteRequest) { r.Phone = "call me" }, "phone", "phone"},
		{"unknown project type", func(r *CreateQuoteRequest) { r.ProjectType = "spaceship" }, "projectType", "one of"},
		{"unknown budget", func(r *CreateQuoteRequest) { r.Budget = "a-dollar" }, "budget", "one of"},
		{"unknown timeline", func(r *CreateQuoteRequest) { r.Timeline = "someday" }, "timeline", "one of"},
		{"description too short", func(r *CreateQuoteRequest) { r.Description = "short" }, "description", "at least 10"},
		{"description too long", func(r *CreateQuoteRequest) { r.Description = strings.Repeat("a", 1001) }, "description", "at most 1000"},
		{"company too long", func(r *CreateQuoteRequest) { r.Company = strings.Repeat("a", 101) }, "company", "at most 100"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validCreateQuoteRequest()
			tc.mutate(&r)

			errs := r.Validate()
			if len(errs) == 0 {
				t.Fatalf("expected a violation")
			}
			found := false
			for _, e := range errs {
				if e.Field == tc.field {
					found = true
					if !strings.Contains(e.Message, tc.message) {
						t.Fatalf("message %q does not mention %q", e.Message, tc.message)
					}
				}
			}
			if !found {
				t.Fatalf("no violation for field %q in %+v", tc.field, errs)
			}
		})
	}

	t.Run("multiple violations are all reported", func(t *testing.T) {
		r := CreateQuoteRequest{}
		errs := r.Validate()
		if len(errs) < 6 {
			t.Fatalf("expected a violation per missing field, got %d: %+v", len(errs), errs)
		}
	})
}

func TestPhoneShapes(t *testing.T) {
	ok := []string{"+15551234567", "555-123-4567", "(555) 123 4567", "+44 20 7946 0958", "5551234"}
	for _, p := range ok {
		r := validCreateQuoteRequest()
		r.Phone = p
		if errs := r.Validate(); errs != nil {
			t.Fatalf("expected %q to pass, got %+v", p, errs)
		}
	}

	bad := []string{"", "12345", "phone", "+", "555123456789012345678901"}
	for _, p := range bad {
		r := validCreateQuoteRequest()
		r.Phone = p
		if errs := r.Validate(); errs == nil {
			t.Fatalf("expected %q to fail", p)
		}
	}
}

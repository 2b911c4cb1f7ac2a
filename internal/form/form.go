// Package form validates lead submissions before they reach the network.
// The schema is declarative: validation tags on leads.LeadForm plus one
// custom rule for the regional phone format, yielding ordered field-level
// errors instead of exceptions. The server remains authoritative; these
// checks only block obviously invalid submissions client-side.
package form

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"leadscore/internal/leads"
)

var phonePattern = regexp.MustCompile(`^\+91-[0-9]{10}$`)

// FieldError is a single field-scoped validation failure.
type FieldError struct {
	Field   string
	Message string
}

// Validator validates lead submission payloads.
type Validator struct {
	v *validator.Validate
}

// New builds the submission validator with the custom phone rule
// registered.
func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return phonePattern.MatchString(value)
	})
	return &Validator{v: v}
}

// fieldMessages maps struct field names to the user-facing message shown
// next to the input. One message per field keeps the mapping flat; the
// constraints behind each field are single-purpose enough that a finer
// split buys nothing.
var fieldMessages = map[string]string{
	"PhoneNumber":         "Phone number must be in format +91-XXXXXXXXXX",
	"Email":               "Invalid email address",
	"CreditScore":         "Credit score must be between 300 and 850",
	"AgeGroup":            "Age group is required",
	"FamilyBackground":    "Family background is required",
	"Income":              "Income must be between 100,000 and 1,000,000 INR",
	"PropertyType":        "Property type is required",
	"Budget":              "Budget cannot be negative",
	"Location":            "Location is required",
	"PreviousInquiries":   "Previous inquiries cannot be negative",
	"TimeOnMarket":        "Time on market must be at least 1 day",
	"ResponseTimeMinutes": "Response time must be at least 1 minute",
	"Consent":             "Consent is required",
}

// Validate checks the whole form as a unit and returns the field errors in
// schema order. An empty slice means the form may be submitted.
func (fv *Validator) Validate(f leads.LeadForm) []FieldError {
	err := fv.v.Struct(f)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.StructField()]
		if !ok {
			msg = fe.Error()
		}
		out = append(out, FieldError{Field: fe.StructField(), Message: msg})
	}
	return out
}

// Defaults returns the initial form values presented to the user.
func Defaults() leads.LeadForm {
	return leads.LeadForm{
		CreditScore:         650,
		AgeGroup:            "26-35",
		FamilyBackground:    "Single",
		Income:              500000,
		PropertyType:        "Apartment",
		Budget:              2500000,
		Location:            "Urban",
		PreviousInquiries:   0,
		TimeOnMarket:        30,
		ResponseTimeMinutes: 60,
		Consent:             false,
	}
}

// AgeGroups, FamilyBackgrounds, PropertyTypes and Locations enumerate the
// selectable values in presentation order.
var (
	AgeGroups         = []string{"18-25", "26-35", "36-50", "51+"}
	FamilyBackgrounds = []string{"Single", "Married", "Married with Kids", "Divorced", "Widowed"}
	PropertyTypes     = []string{"Apartment", "House", "Villa", "Penthouse", "Studio"}
	Locations         = []string{"Urban", "Suburban", "Rural"}
)

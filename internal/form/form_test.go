package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscore/internal/leads"
)

func validForm() leads.LeadForm {
	f := Defaults()
	f.PhoneNumber = "+91-9876543210"
	f.Email = "buyer@example.com"
	f.Comments = "ready to purchase, pre-approved loan"
	f.Consent = true
	return f
}

func findField(t *testing.T, errs []FieldError, field string) FieldError {
	t.Helper()
	for _, fe := range errs {
		if fe.Field == field {
			return fe
		}
	}
	t.Fatalf("no error for field %s in %v", field, errs)
	return FieldError{}
}

func TestValidate_AcceptsValidForm(t *testing.T) {
	errs := New().Validate(validForm())
	assert.Empty(t, errs)
}

func TestValidate_ConsentRequired(t *testing.T) {
	f := validForm()
	f.Consent = false
	errs := New().Validate(f)
	require.NotEmpty(t, errs)
	fe := findField(t, errs, "Consent")
	assert.Equal(t, "Consent is required", fe.Message)
}

func TestValidate_PhonePattern(t *testing.T) {
	v := New()
	for _, bad := range []string{"", "9876543210", "+91-98765", "+1-9876543210", "+91-98765432100", "+91-98765abcde"} {
		f := validForm()
		f.PhoneNumber = bad
		errs := v.Validate(f)
		require.NotEmpty(t, errs, "phone %q should be rejected", bad)
		fe := findField(t, errs, "PhoneNumber")
		assert.Equal(t, "Phone number must be in format +91-XXXXXXXXXX", fe.Message)
	}
}

func TestValidate_Ranges(t *testing.T) {
	v := New()

	f := validForm()
	f.CreditScore = 299
	findField(t, v.Validate(f), "CreditScore")

	f = validForm()
	f.CreditScore = 851
	findField(t, v.Validate(f), "CreditScore")

	f = validForm()
	f.Income = 99999
	findField(t, v.Validate(f), "Income")

	f = validForm()
	f.Budget = -1
	findField(t, v.Validate(f), "Budget")

	f = validForm()
	f.TimeOnMarket = 0
	findField(t, v.Validate(f), "TimeOnMarket")

	f = validForm()
	f.ResponseTimeMinutes = 0
	findField(t, v.Validate(f), "ResponseTimeMinutes")
}

func TestValidate_Enumerations(t *testing.T) {
	v := New()

	f := validForm()
	f.AgeGroup = "99+"
	findField(t, v.Validate(f), "AgeGroup")

	f = validForm()
	f.FamilyBackground = "Married with Kids"
	assert.Empty(t, v.Validate(f))

	f.FamilyBackground = "Cohabiting"
	findField(t, v.Validate(f), "FamilyBackground")

	f = validForm()
	f.Location = "Offshore"
	findField(t, v.Validate(f), "Location")

	f = validForm()
	f.PropertyType = "Castle"
	findField(t, v.Validate(f), "PropertyType")
}

func TestValidate_EmptyCommentsAllowed(t *testing.T) {
	f := validForm()
	f.Comments = ""
	assert.Empty(t, New().Validate(f))
}

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tui "github.com/charmbracelet/bubbletea"

	"leadscore/internal/form"
	"leadscore/internal/leads"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldNumber
	fieldEnum
	fieldBool
)

// field is one entry of the declarative form schema: a label, an input
// widget, and the struct field its errors are reported under.
type field struct {
	name    string // leads.LeadForm field name, for error matching
	label   string
	kind    fieldKind
	input   textinput.Model
	options []string
	optIdx  int
	checked bool
}

type formModel struct {
	fields  []field
	focus   int
	focused bool
	errs    []form.FieldError
}

func textField(name, label, placeholder, value string) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 120
	ti.Width = 28
	ti.Prompt = ""
	ti.SetValue(value)
	return field{name: name, label: label, kind: fieldText, input: ti}
}

func numberField(name, label string, value int) field {
	f := textField(name, label, "", strconv.Itoa(value))
	f.kind = fieldNumber
	f.input.CharLimit = 12
	return f
}

func enumField(name, label string, options []string, value string) field {
	idx := 0
	for i, o := range options {
		if o == value {
			idx = i
		}
	}
	return field{name: name, label: label, kind: fieldEnum, options: options, optIdx: idx}
}

func newFormModel() formModel {
	d := form.Defaults()
	return formModel{
		fields: []field{
			textField("PhoneNumber", "Phone Number", "+91-9876543210", ""),
			textField("Email", "Email", "email@example.com", ""),
			numberField("CreditScore", "Credit Score (300-850)", d.CreditScore),
			numberField("Income", "Income (INR)", d.Income),
			enumField("AgeGroup", "Age Group", form.AgeGroups, d.AgeGroup),
			enumField("FamilyBackground", "Family Background", form.FamilyBackgrounds, d.FamilyBackground),
			enumField("PropertyType", "Property Type", form.PropertyTypes, d.PropertyType),
			numberField("Budget", "Budget (INR)", d.Budget),
			enumField("Location", "Location", form.Locations, d.Location),
			numberField("PreviousInquiries", "Previous Inquiries", d.PreviousInquiries),
			numberField("TimeOnMarket", "Time on Market (days)", d.TimeOnMarket),
			numberField("ResponseTimeMinutes", "Response Time (minutes)", d.ResponseTimeMinutes),
			textField("Comments", "Comments", "Add any additional comments or requirements...", ""),
			{name: "Consent", label: "I consent to data processing", kind: fieldBool},
		},
	}
}

func (f *formModel) setFocused(on bool) {
	f.focused = on
	f.syncInputFocus()
}

func (f *formModel) syncInputFocus() {
	for i := range f.fields {
		fd := &f.fields[i]
		if fd.kind != fieldText && fd.kind != fieldNumber {
			continue
		}
		if f.focused && i == f.focus {
			fd.input.Focus()
		} else {
			fd.input.Blur()
		}
	}
}

func (f *formModel) move(delta int) {
	n := len(f.fields)
	f.focus = (f.focus + delta + n) % n
	f.syncInputFocus()
}

// update handles a key event routed to the form pane. It reports whether
// a submission was requested.
func (f *formModel) update(msg tui.KeyMsg) (submit bool, cmd tui.Cmd) {
	fd := &f.fields[f.focus]
	switch msg.String() {
	case "up", "shift+tab":
		f.move(-1)
		return false, nil
	case "down":
		f.move(1)
		return false, nil
	case "enter":
		return true, nil
	case "left":
		if fd.kind == fieldEnum {
			fd.optIdx = (fd.optIdx + len(fd.options) - 1) % len(fd.options)
			return false, nil
		}
	case "right":
		if fd.kind == fieldEnum {
			fd.optIdx = (fd.optIdx + 1) % len(fd.options)
			return false, nil
		}
	case " ":
		if fd.kind == fieldBool {
			fd.checked = !fd.checked
			return false, nil
		}
	}
	if fd.kind == fieldText || fd.kind == fieldNumber {
		fd.input, cmd = fd.input.Update(msg)
	}
	return false, cmd
}

// build assembles the submission payload from the current widget values.
// Unparseable numbers come back as field errors without touching the
// validator.
func (f *formModel) build() (leads.LeadForm, []form.FieldError) {
	out := leads.LeadForm{}
	var errs []form.FieldError
	setInt := func(name string, dst *int, fd *field) {
		v, err := strconv.Atoi(strings.TrimSpace(fd.input.Value()))
		if err != nil {
			errs = append(errs, form.FieldError{Field: name, Message: fd.label + " must be a number"})
			return
		}
		*dst = v
	}
	for i := range f.fields {
		fd := &f.fields[i]
		switch fd.name {
		case "PhoneNumber":
			out.PhoneNumber = strings.TrimSpace(fd.input.Value())
		case "Email":
			out.Email = strings.TrimSpace(fd.input.Value())
		case "CreditScore":
			setInt(fd.name, &out.CreditScore, fd)
		case "Income":
			setInt(fd.name, &out.Income, fd)
		case "AgeGroup":
			out.AgeGroup = fd.options[fd.optIdx]
		case "FamilyBackground":
			out.FamilyBackground = fd.options[fd.optIdx]
		case "PropertyType":
			out.PropertyType = fd.options[fd.optIdx]
		case "Budget":
			setInt(fd.name, &out.Budget, fd)
		case "Location":
			out.Location = fd.options[fd.optIdx]
		case "PreviousInquiries":
			setInt(fd.name, &out.PreviousInquiries, fd)
		case "TimeOnMarket":
			setInt(fd.name, &out.TimeOnMarket, fd)
		case "ResponseTimeMinutes":
			setInt(fd.name, &out.ResponseTimeMinutes, fd)
		case "Comments":
			out.Comments = fd.input.Value()
		case "Consent":
			out.Consent = fd.checked
		}
	}
	return out, errs
}

// reset restores the defaults after a successful submission.
func (f *formModel) reset() {
	focused := f.focused
	fresh := newFormModel()
	f.fields = fresh.fields
	f.focus = 0
	f.errs = nil
	f.focused = focused
	f.syncInputFocus()
}

func (f *formModel) errorFor(name string) string {
	for _, fe := range f.errs {
		if fe.Field == name {
			return fe.Message
		}
	}
	return ""
}

func (f *formModel) view(width int) string {
	var b strings.Builder
	for i := range f.fields {
		fd := &f.fields[i]
		label := fieldLabel.Render(fd.label)
		if f.focused && i == f.focus {
			label = fieldFocused.Render("> " + fd.label)
		} else {
			label = "  " + label
		}
		var value string
		switch fd.kind {
		case fieldText, fieldNumber:
			value = fd.input.View()
		case fieldEnum:
			value = fmt.Sprintf("◂ %s ▸", fd.options[fd.optIdx])
		case fieldBool:
			box := "[ ]"
			if fd.checked {
				box = "[x]"
			}
			value = box
		}
		b.WriteString(label)
		b.WriteString("  ")
		b.WriteString(value)
		b.WriteByte('\n')
		if msg := f.errorFor(fd.name); msg != "" {
			b.WriteString("    ")
			b.WriteString(errorFg.Render(msg))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Package callrequest defines the automated call request form: its fields,
// the stub submission and the chat draft that sits next to it.
package callrequest

import (
	"github.com/csheth/leaddesk/internal/form"
	"github.com/csheth/leaddesk/internal/notify"
)

// Field enumerates the call request form keys.
type Field int

const (
	CountryCode Field = iota
	PhoneNumber
	FullName
	VoiceTone
	PreferredDate
	PreferredTime
	Industry
)

var fieldNames = [...]string{
	CountryCode:   "countryCode",
	PhoneNumber:   "phoneNumber",
	FullName:      "fullName",
	VoiceTone:     "voiceTone",
	PreferredDate: "preferredDate",
	PreferredTime: "preferredTime",
	Industry:      "industry",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// Notifications emitted by the page.
var (
	MissingFields = notify.Notification{
		Title:       "Required Fields Missing",
		Description: "Please fill in your phone number and full name.",
		Severity:    notify.SeverityDestructive,
	}
	Submitted = notify.Notification{
		Title:       "Call Request Submitted",
		Description: "We'll call you back within minutes!",
		Severity:    notify.SeverityDefault,
	}
	MessageSent = notify.Notification{
		Title:       "Message Sent",
		Description: "Our team will respond shortly.",
		Severity:    notify.SeverityDefault,
	}
)

// Fields returns the form definition in display order.
func Fields() []form.Field[Field] {
	return []form.Field[Field]{
		{
			Key:     CountryCode,
			Label:   "Country Code",
			Kind:    form.KindSelect,
			Default: "+1 (United States)",
			Options: []form.Option{
				{Value: "+1 (United States)", Label: "+1 (United States)"},
				{Value: "+44 (United Kingdom)", Label: "+44 (United Kingdom)"},
				{Value: "+91 (India)", Label: "+91 (India)"},
				{Value: "+61 (Australia)", Label: "+61 (Australia)"},
			},
			Required: true,
		},
		{
			Key:         PhoneNumber,
			Label:       "Phone Number",
			Placeholder: "123-456-7890",
			Help:        "We'll send an OTP to verify your number",
			Kind:        form.KindText,
			Required:    true,
			CharLimit:   32,
		},
		{
			Key:         FullName,
			Label:       "Full Name",
			Placeholder: "John Doe",
			Kind:        form.KindText,
			Required:    true,
			CharLimit:   80,
		},
		{
			Key:     VoiceTone,
			Label:   "Voice Tone",
			Kind:    form.KindSelect,
			Default: "professional",
			Options: []form.Option{
				{Value: "professional", Label: "Professional"},
				{Value: "friendly", Label: "Friendly"},
				{Value: "casual", Label: "Casual"},
				{Value: "formal", Label: "Formal"},
			},
		},
		{
			Key:         PreferredDate,
			Label:       "Preferred Call Date",
			Placeholder: "YYYY-MM-DD",
			Kind:        form.KindText,
			CharLimit:   10,
		},
		{
			Key:         PreferredTime,
			Label:       "Preferred Call Time",
			Placeholder: "HH:MM",
			Kind:        form.KindText,
			CharLimit:   5,
		},
		{
			Key:     Industry,
			Label:   "Industry",
			Kind:    form.KindSelect,
			Default: "real-estate",
			Options: []form.Option{
				{Value: "real-estate", Label: "Real Estate"},
				{Value: "healthcare", Label: "Healthcare"},
				{Value: "finance", Label: "Finance"},
				{Value: "retail", Label: "Retail"},
				{Value: "technology", Label: "Technology"},
				{Value: "other", Label: "Other"},
			},
		},
	}
}

// NewState returns a fresh form state holding the defaults.
func NewState() *form.State[Field] {
	return form.NewState(Fields())
}

// Submit validates that a phone number and a full name were given and
// notifies sink of the outcome. Nothing is dispatched: a passing submission
// only produces the confirmation.
func Submit(state *form.State[Field], sink notify.Sink) error {
	if err := form.RequireNonBlank(state, PhoneNumber, FullName); err != nil {
		sink.Notify(MissingFields)
		return err
	}
	sink.Notify(Submitted)
	return nil
}

// Draft is the chat message being typed in the sidebar.
type Draft struct {
	value string
}

func (d *Draft) Set(value string) { d.value = value }

func (d *Draft) Value() string { return d.value }

// Send clears a non-blank draft and confirms it through sink. A blank draft
// is left as is and produces nothing. It reports whether a message was sent.
func (d *Draft) Send(sink notify.Sink) bool {
	if form.Blank(d.value) {
		return false
	}
	d.value = ""
	sink.Notify(MessageSent)
	return true
}

package callrequest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/leaddesk/internal/form"
	"github.com/csheth/leaddesk/internal/notify"
)

func TestFieldDefinitionsAreConsistent(t *testing.T) {
	require.NoError(t, form.CheckFields(Fields()))

	s := NewState()
	assert.Equal(t, []Field{CountryCode, PhoneNumber, FullName, VoiceTone, PreferredDate, PreferredTime, Industry}, s.Keys())
	assert.Equal(t, "+1 (United States)", s.Get(CountryCode))
	assert.Equal(t, "professional", s.Get(VoiceTone))
	assert.Equal(t, "real-estate", s.Get(Industry))
	assert.Equal(t, "", s.Get(PhoneNumber))
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, "phoneNumber", PhoneNumber.String())
	assert.Equal(t, "preferredTime", PreferredTime.String())
	assert.Equal(t, "unknown", Field(99).String())
}

func TestSubmit(t *testing.T) {
	cases := []struct {
		name     string
		phone    string
		fullName string
		want     notify.Notification
		wantErr  bool
	}{
		{name: "missing phone", phone: "", fullName: "Jane", want: MissingFields, wantErr: true},
		{name: "missing name", phone: "123-456-7890", fullName: "", want: MissingFields, wantErr: true},
		{name: "whitespace only", phone: "  ", fullName: "\t", want: MissingFields, wantErr: true},
		{name: "complete", phone: "123-456-7890", fullName: "Jane Doe", want: Submitted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState()
			s.Set(PhoneNumber, tc.phone)
			s.Set(FullName, tc.fullName)
			before := s.Snapshot()
			rec := &notify.Recorder{}

			err := Submit(s, rec)

			require.Equal(t, 1, rec.Len())
			got, _ := rec.Last()
			assert.Equal(t, tc.want, got)
			assert.Equal(t, before, s.Snapshot())
			if tc.wantErr {
				assert.True(t, errors.Is(err, form.ErrRequiredFieldMissing))
				assert.True(t, got.Destructive())
			} else {
				assert.NoError(t, err)
				assert.False(t, got.Destructive())
			}
		})
	}
}

func TestSubmitInvalidIsRepeatable(t *testing.T) {
	s := NewState()
	s.Set(FullName, "Jane")
	rec := &notify.Recorder{}

	for i := 0; i < 3; i++ {
		require.Error(t, Submit(s, rec))
	}
	for _, n := range rec.Notifications() {
		assert.Equal(t, MissingFields, n)
	}
	assert.Equal(t, 3, rec.Len())
}

func TestDraftSend(t *testing.T) {
	t.Run("sends and clears", func(t *testing.T) {
		var d Draft
		d.Set("hello")
		rec := &notify.Recorder{}

		assert.True(t, d.Send(rec))
		assert.Equal(t, "", d.Value())
		require.Equal(t, 1, rec.Len())
		got, _ := rec.Last()
		assert.Equal(t, MessageSent, got)
	})

	for _, blank := range []string{"", "   "} {
		t.Run("blank "+blank, func(t *testing.T) {
			var d Draft
			d.Set(blank)
			rec := &notify.Recorder{}

			assert.False(t, d.Send(rec))
			assert.Equal(t, blank, d.Value())
			assert.Zero(t, rec.Len())
		})
	}
}

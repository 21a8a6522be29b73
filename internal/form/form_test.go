package form

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testKey int

const (
	keyName testKey = iota
	keyColor
	keyNotes
	keyUndeclared
)

func (k testKey) String() string {
	switch k {
	case keyName:
		return "name"
	case keyColor:
		return "color"
	case keyNotes:
		return "notes"
	default:
		return "undeclared"
	}
}

func testFields() []Field[testKey] {
	return []Field[testKey]{
		{Key: keyName, Label: "Name", Kind: KindText},
		{Key: keyColor, Label: "Color", Kind: KindSelect, Default: "red", Options: []Option{
			{Value: "red", Label: "Red"},
			{Value: "blue", Label: "Blue"},
		}},
		{Key: keyNotes, Label: "Notes", Kind: KindMultiline, Default: "n/a"},
	}
}

func TestNewStateSeedsDefaultsInOrder(t *testing.T) {
	s := NewState(testFields())

	assert.Equal(t, []testKey{keyName, keyColor, keyNotes}, s.Keys())
	want := map[testKey]string{keyName: "", keyColor: "red", keyNotes: "n/a"}
	if diff := cmp.Diff(want, s.Snapshot()); diff != "" {
		t.Fatalf("initial state mismatch (-want +got):\n%s", diff)
	}
}

func TestSetOnlyTouchesOneKey(t *testing.T) {
	values := []string{"", "x", "   ", "Jane Doe", "ünïcødé"}
	for _, key := range []testKey{keyName, keyColor, keyNotes} {
		for _, value := range values {
			t.Run(key.String()+"="+value, func(t *testing.T) {
				s := NewState(testFields())
				before := s.Snapshot()

				require.True(t, s.Set(key, value))

				after := s.Snapshot()
				assert.Equal(t, value, after[key])
				for k, v := range before {
					if k == key {
						continue
					}
					assert.Equalf(t, v, after[k], "key %s changed", k)
				}
				assert.Equal(t, []testKey{keyName, keyColor, keyNotes}, s.Keys())
			})
		}
	}
}

func TestSetIsIdempotent(t *testing.T) {
	once := NewState(testFields())
	once.Set(keyName, "Jane")

	twice := NewState(testFields())
	twice.Set(keyName, "Jane")
	twice.Set(keyName, "Jane")

	if diff := cmp.Diff(once.Snapshot(), twice.Snapshot()); diff != "" {
		t.Fatalf("repeated set diverged (-once +twice):\n%s", diff)
	}
}

func TestSetUndeclaredKeyIsNoop(t *testing.T) {
	s := NewState(testFields())
	before := s.Snapshot()

	assert.False(t, s.Set(keyUndeclared, "boom"))
	assert.False(t, s.Has(keyUndeclared))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, before, s.Snapshot())
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewState(testFields())
	snap := s.Snapshot()
	snap[keyName] = "mutated"

	assert.Equal(t, "", s.Get(keyName))
}

func TestDuplicateFieldsKeepFirstDefault(t *testing.T) {
	fields := append(testFields(), Field[testKey]{Key: keyNotes, Default: "second"})
	s := NewState(fields)

	assert.Equal(t, "n/a", s.Get(keyNotes))
	assert.Error(t, CheckFields(fields))
}

func TestCheckFields(t *testing.T) {
	cases := []struct {
		name    string
		fields  []Field[testKey]
		wantErr bool
	}{
		{name: "valid", fields: testFields()},
		{name: "select without options", fields: []Field[testKey]{{Key: keyColor, Kind: KindSelect}}, wantErr: true},
		{name: "default not an option", fields: []Field[testKey]{{
			Key: keyColor, Kind: KindSelect, Default: "green",
			Options: []Option{{Value: "red", Label: "Red"}},
		}}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckFields(tc.fields)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOptionLabel(t *testing.T) {
	color := testFields()[1]
	assert.Equal(t, "Blue", color.OptionLabel("blue"))
	assert.Equal(t, "green", color.OptionLabel("green"))
	assert.Equal(t, -1, color.OptionIndex("green"))
}

func TestRequireNonBlank(t *testing.T) {
	cases := []struct {
		name     string
		fullName string
		notes    string
		missing  []string
	}{
		{name: "all present", fullName: "Jane", notes: "hi"},
		{name: "empty name", fullName: "", notes: "hi", missing: []string{"name"}},
		{name: "whitespace only", fullName: "   ", notes: "\t\n", missing: []string{"name", "notes"}},
		{name: "padded value counts", fullName: "  Jane  ", notes: " x "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(testFields())
			s.Set(keyName, tc.fullName)
			s.Set(keyNotes, tc.notes)
			before := s.Snapshot()

			err := RequireNonBlank(s, keyName, keyNotes)

			assert.Equal(t, before, s.Snapshot(), "validation must not mutate state")
			if tc.missing == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrRequiredFieldMissing))
			var reqErr *RequiredFieldError
			require.True(t, errors.As(err, &reqErr))
			assert.Equal(t, tc.missing, reqErr.Fields)
		})
	}
}

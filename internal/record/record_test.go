package record

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeUsesRosterKeys(t *testing.T) {
	r := New(7, "Alice", "Engineer", 90000)

	m := r.Serialize()

	assert.Equal(t, map[string]any{
		"employee_id": int64(7),
		"name":        "Alice",
		"position":    "Engineer",
		"salary":      float64(90000),
	}, m)
}

func TestDeserializeRoundTrip(t *testing.T) {
	r := New(42, "Zo\u00eb", "", -12.5)

	got, err := Deserialize(r.Serialize())

	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestDeserializeAcceptsDecodedJSON(t *testing.T) {
	raw := `{"employee_id": 3, "name": "Bob", "position": "Manager", "salary": 120000}`

	var plain map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &plain))
	r, err := Deserialize(plain)
	require.NoError(t, err)
	assert.Equal(t, New(3, "Bob", "Manager", 120000), r)

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var numbered map[string]any
	require.NoError(t, dec.Decode(&numbered))
	r, err = Deserialize(numbered)
	require.NoError(t, err)
	assert.Equal(t, New(3, "Bob", "Manager", 120000), r)
}

func TestDeserializeMissingKey(t *testing.T) {
	for _, key := range []string{KeyID, KeyName, KeyTitle, KeyCompensation} {
		t.Run(key, func(t *testing.T) {
			m := New(1, "a", "b", 1).Serialize()
			delete(m, key)

			_, err := Deserialize(m)

			var me *MalformedError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, key, me.Field)
			assert.Equal(t, "missing", me.Reason)
		})
	}
}

func TestDeserializeWrongTypes(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"id as text", KeyID, "1"},
		{"fractional id", KeyID, 1.5},
		{"fractional json id", KeyID, json.Number("1.5")},
		{"name as number", KeyName, 12.0},
		{"title as null", KeyTitle, nil},
		{"salary as text", KeyCompensation, "lots"},
		{"salary as bool", KeyCompensation, true},
		{"salary infinite", KeyCompensation, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(1, "a", "b", 1).Serialize()
			m[tt.key] = tt.value

			_, err := Deserialize(m)

			var me *MalformedError
			require.ErrorAs(t, err, &me)
			assert.Equal(t, tt.key, me.Field)
		})
	}
}

func TestDeserializeNil(t *testing.T) {
	_, err := Deserialize(nil)
	var me *MalformedError
	require.ErrorAs(t, err, &me)
}

func TestDeserializeIgnoresExtraKeys(t *testing.T) {
	m := New(5, "Eve", "Auditor", 1).Serialize()
	m["department"] = "Finance"

	r, err := Deserialize(m)

	require.NoError(t, err)
	assert.Equal(t, int64(5), r.ID)
}

func TestRender(t *testing.T) {
	r := New(1, "Alice", "Engineer", 90000)
	assert.Equal(t, "ID: 1, Name: Alice, Title: Engineer, Compensation: 90000.0", r.Render())
	assert.Equal(t, r.Render(), r.String())
}

func TestFormatCompensation(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{90000, "90000.0"},
		{1234.5, "1234.5"},
		{-3, "-3.0"},
		{0.1, "0.1"},
		{1e16, "1e+16"},
		{1e-5, "1e-05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCompensation(tt.in), "input %v", tt.in)
	}
}

func TestNewNormalizesText(t *testing.T) {
	decomposed := "Zoe\u0308"
	r := New(1, decomposed, decomposed, 0)

	assert.Equal(t, "Zo\u00eb", r.Name)
	assert.Equal(t, "Zo\u00eb", r.Title)
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestsDetails_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "object with list", raw: `{"list":[{"name":" "},{"name":"Maria Silva"}]}`, want: "Maria Silva"},
		{name: "object with singleton list", raw: `{"list":{"name":"Joao"}}`, want: "Joao"},
		{name: "bare array", raw: `[{"name":"Ana"}]`, want: "Ana"},
		{name: "singleton object", raw: `{"name":"Pedro"}`, want: "Pedro"},
		{name: "empty list", raw: `{"list":[]}`, want: ""},
		{name: "null", raw: `null`, want: ""},
		{name: "unexpected scalar", raw: `"nobody"`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res RawReservation
			err := json.Unmarshal([]byte(`{"id":"ABC","guestsDetails":`+tt.raw+`}`), &res)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.GuestsDetails.PrimaryName())
		})
	}
}

func TestGuestsDetails_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(GuestsDetails{Guests: []Guest{{Name: "Ana"}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"list":[{"name":"Ana"}]}`, string(b))

	b, err = json.Marshal(GuestsDetails{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"list":[]}`, string(b))
}

func TestRawReservation_decode(t *testing.T) {
	event := NewRawReservationEvent("2024-01-01", ActionReservationModified, json.RawMessage(`{
		"_id": "65a0",
		"id": "HM01J",
		"type": "booked",
		"checkInDate": "2024-02-10",
		"_idlisting": "L1",
		"stats": {"_f_totalPaid": 0}
	}`), testNow)

	res, err := event.DecodeReservation()
	require.NoError(t, err)
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "HM01J", res.Reference())
	assert.Equal(t, ReservationTypeBooked, res.Type)
	require.NotNil(t, res.Stats)
	assert.True(t, res.Stats.TotalPaid.Valid)
	assert.True(t, res.Stats.TotalPaid.Decimal.IsZero())

	assert.Equal(t, "65a0", RawReservation{InternalID: "65a0"}.Reference())
}

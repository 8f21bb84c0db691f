package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

type (
	// RawReservation is the reservation object sent in webhook payloads and returned by
	// the reservation API.
	RawReservation struct {
		InternalID    string            `json:"_id"`
		ID            string            `json:"id"`
		Type          string            `json:"type"`
		CheckInDate   string            `json:"checkInDate"`
		CheckOutDate  string            `json:"checkOutDate"`
		ListingID     string            `json:"_idlisting"`
		PartnerName   string            `json:"partnerName,omitempty"`
		GuestsDetails GuestsDetails     `json:"guestsDetails"`
		Stats         *ReservationStats `json:"stats,omitempty"`
	}

	ReservationStats struct {
		TotalPaid decimal.NullDecimal `json:"_f_totalPaid"`
	}

	Guest struct {
		Name string `json:"name"`
	}

	// GuestsDetails accepts the three shapes the platform has been seen to send:
	//
	//	{"list": [{"name": "..."}]}
	//	[{"name": "..."}]
	//	{"name": "..."}
	GuestsDetails struct {
		Guests []Guest
	}
)

// Reference is the identifier used in ledger references: the short reservation code.
func (r RawReservation) Reference() string {
	if r.ID != "" {
		return r.ID
	}
	return r.InternalID
}

func (g *GuestsDetails) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	switch b[0] {
	case '[':
		return json.Unmarshal(b, &g.Guests)
	case '{':
		var obj struct {
			List json.RawMessage `json:"list"`
			Name string          `json:"name"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}

		list := bytes.TrimSpace(obj.List)
		switch {
		case len(list) > 0 && list[0] == '[':
			return json.Unmarshal(list, &g.Guests)
		case len(list) > 0 && list[0] == '{':
			var one Guest
			if err := json.Unmarshal(list, &one); err != nil {
				return err
			}
			g.Guests = []Guest{one}
		case obj.Name != "":
			g.Guests = []Guest{{Name: obj.Name}}
		}
	}

	// any other shape carries no guest; the normalizer reports the missing name
	return nil
}

func (g GuestsDetails) MarshalJSON() ([]byte, error) {
	guests := g.Guests
	if guests == nil {
		guests = []Guest{}
	}
	return json.Marshal(struct {
		List []Guest `json:"list"`
	}{guests})
}

// PrimaryName is the first non-blank guest name.
func (g GuestsDetails) PrimaryName() string {
	for _, guest := range g.Guests {
		if name := strings.TrimSpace(guest.Name); name != "" {
			return name
		}
	}
	return ""
}

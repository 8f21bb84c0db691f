package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	// ReservationReport is one entry of the reservations export: the financial view of a
	// reservation (fees, commission, owner price).
	ReservationReport struct {
		ID                string              `json:"id"`
		InternalID        string              `json:"_id"`
		PartnerName       string              `json:"partnerName"`
		CheckInDate       string              `json:"checkInDate"`
		CheckOutDate      string              `json:"checkOutDate"`
		CreationDate      string              `json:"creationDate"`
		Listing           ReportListing       `json:"listing"`
		Client            ReportClient        `json:"client"`
		Fee               []ReportFee         `json:"fee"`
		OwnerFee          []ReportFee         `json:"ownerFee"`
		CompanyCommission decimal.NullDecimal `json:"companyCommision"`
		BuyPrice          decimal.NullDecimal `json:"buyPrice"`
		ReserveTotal      decimal.NullDecimal `json:"reserveTotal"`
		ISS               decimal.NullDecimal `json:"iss"`
	}

	ReportListing struct {
		ID           string `json:"_id"`
		InternalName string `json:"internalName"`
	}

	ReportClient struct {
		ID   string `json:"_id"`
		Name string `json:"name"`
	}

	ReportFee struct {
		Desc string          `json:"desc"`
		Val  decimal.Decimal `json:"val"`
	}

	// ReportQuery selects report entries by arrival date range and listing. ReservationID picks
	// the entry of the reservation being processed out of the listing's results.
	ReportQuery struct {
		From          time.Time
		To            time.Time
		ListingID     string
		ReservationID string
	}
)

func (r ReservationReport) Matches(reservationID string) bool {
	return reservationID != "" && (r.ID == reservationID || r.InternalID == reservationID)
}

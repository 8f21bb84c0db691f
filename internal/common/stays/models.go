package stays

const SERVICE_NAME = "stays"

const (
	dateTypeArrival = "arrival"

	pathReservation       = "/booking/reservations/%s"
	pathReservationExport = "/booking/reservations-export"
	pathListing           = "/content/listings/%s"
	pathClient            = "/booking/clients/%s"
)

type RequestReservationExport struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	DateType  string   `json:"dateType"`
	ListingID []string `json:"listingId"`
}

package models

import (
	"strings"
)

type PartnerKind int

const (
	PartnerOther PartnerKind = iota
	PartnerAirbnb
	PartnerBooking
	PartnerDecolar
	PartnerExpedia
	PartnerWebsite
	PartnerDirect
)

// upstream partnerName values
var partnerUpstreamNames = map[PartnerKind]string{
	PartnerAirbnb:  "API airbnb",
	PartnerBooking: "API booking.com",
	PartnerDecolar: "API decolar",
	PartnerExpedia: "API expedia",
	PartnerWebsite: "website",
	PartnerDirect:  "diretas",
}

var partnerByUpstreamName = func() map[string]PartnerKind {
	m := make(map[string]PartnerKind, len(partnerUpstreamNames))
	for kind, name := range partnerUpstreamNames {
		m[strings.ToLower(name)] = kind
	}
	return m
}()

func (k PartnerKind) String() string {
	switch k {
	case PartnerAirbnb:
		return "airbnb"
	case PartnerBooking:
		return "booking"
	case PartnerDecolar:
		return "decolar"
	case PartnerExpedia:
		return "expedia"
	case PartnerWebsite:
		return "website"
	case PartnerDirect:
		return "direct"
	default:
		return "other"
	}
}

// Partner is the sales channel of a reservation. Name keeps the upstream spelling, which is
// what ends up in schedule descriptions.
type Partner struct {
	Kind PartnerKind
	Name string
}

// ParsePartner maps an upstream partnerName. A blank name means the reservation came from
// the website.
func ParsePartner(name string) Partner {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Partner{Kind: PartnerWebsite, Name: partnerUpstreamNames[PartnerWebsite]}
	}

	if kind, ok := partnerByUpstreamName[strings.ToLower(trimmed)]; ok {
		return Partner{Kind: kind, Name: trimmed}
	}

	return Partner{Kind: PartnerOther, Name: trimmed}
}

func NewPartner(kind PartnerKind) Partner {
	return Partner{Kind: kind, Name: partnerUpstreamNames[kind]}
}

func (p Partner) Is(kind PartnerKind) bool {
	return p.Kind == kind
}

func (p Partner) String() string {
	if p.Name != "" {
		return p.Name
	}
	return partnerUpstreamNames[p.Kind]
}

package amadeus

import (
	"context"
	"net/url"
	"strconv"
)

// --- Structs for Flight Offers Search (simplified) ---

type FlightOffersResponse struct {
	Data []FlightOffer `json:"data"`
}

type FlightOffer struct {
	Type                     string            `json:"type"`
	ID                       string            `json:"id"`
	Source                   string            `json:"source"`
	InstantTicketingRequired bool              `json:"instantTicketingRequired"`
	OneWay                   bool              `json:"oneWay"`
	LastTicketingDate        string            `json:"lastTicketingDate"`
	NumberOfBookableSeats    int               `json:"numberOfBookableSeats"`
	Itineraries              []Itinerary       `json:"itineraries"`
	Price                    Price             `json:"price"`
	ValidatingAirlineCodes   []string          `json:"validatingAirlineCodes"`
	TravelerPricings         []TravelerPricing `json:"travelerPricings"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Departure   FlightEndPoint `json:"departure"`
	Arrival     FlightEndPoint `json:"arrival"`
	CarrierCode string         `json:"carrierCode"`
	Number      string         `json:"number"`
	Aircraft    struct {
		Code string `json:"code"`
	} `json:"aircraft"`
	Duration      string `json:"duration"`
	ID            string `json:"id"`
	NumberOfStops int    `json:"numberOfStops"`
}

type FlightEndPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	Fees       []Fee  `json:"fees,omitempty"`
	GrandTotal string `json:"grandTotal,omitempty"`
}

type Fee struct {
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

type TravelerPricing struct {
	TravelerID   string `json:"travelerId"`
	FareOption   string `json:"fareOption"`
	TravelerType string `json:"travelerType"`
	Price        Price  `json:"price"`
}

// FlightOffersQuery carries the parameters for a flight-offers search.
// A round trip is requested by setting ReturnDate; zero-valued optional
// fields are omitted from the request.
type FlightOffersQuery struct {
	OriginLocationCode      string
	DestinationLocationCode string
	DepartureDate           string
	Adults                  int
	ReturnDate              string
	Children                int
	Infants                 int
	TravelClass             string
	NonStop                 bool
	CurrencyCode            string
	MaxPrice                int
	Max                     int
}

func (q FlightOffersQuery) values() url.Values {
	data := url.Values{}
	data.Set("originLocationCode", q.OriginLocationCode)
	data.Set("destinationLocationCode", q.DestinationLocationCode)
	data.Set("departureDate", q.DepartureDate)
	data.Set("adults", strconv.Itoa(q.Adults))

	if q.ReturnDate != "" {
		data.Set("returnDate", q.ReturnDate)
	}
	if q.Children > 0 {
		data.Set("children", strconv.Itoa(q.Children))
	}
	if q.Infants > 0 {
		data.Set("infants", strconv.Itoa(q.Infants))
	}
	if q.TravelClass != "" {
		data.Set("travelClass", q.TravelClass)
	}
	if q.NonStop {
		data.Set("nonStop", "true")
	}
	if q.CurrencyCode != "" {
		data.Set("currencyCode", q.CurrencyCode)
	}
	if q.MaxPrice > 0 {
		data.Set("maxPrice", strconv.Itoa(q.MaxPrice))
	}
	if q.Max > 0 {
		data.Set("max", strconv.Itoa(q.Max))
	}

	return data
}

// SearchFlightOffers searches for flight offers
func (c *Client) SearchFlightOffers(ctx context.Context, query FlightOffersQuery) (*FlightOffersResponse, error) {
	endpoint := "/v2/shopping/flight-offers?" + query.values().Encode()

	var searchResp FlightOffersResponse
	if err := c.get(ctx, endpoint, &searchResp); err != nil {
		return nil, err
	}

	return &searchResp, nil
}

package amadeus

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// --- Structs for the hotel list endpoint ---

type HotelListResponse struct {
	Data []HotelRef `json:"data"`
}

// HotelRef is one entry from /reference-data/locations/hotels/by-city
type HotelRef struct {
	ChainCode string `json:"chainCode"`
	IataCode  string `json:"iataCode"`
	DupeID    int    `json:"dupeId"`
	Name      string `json:"name"`
	HotelID   string `json:"hotelId"`
	GeoCode   struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"geoCode"`
	Address struct {
		CountryCode string `json:"countryCode"`
	} `json:"address"`
}

// --- Structs for the hotel offers endpoint ---

type HotelOffersResponse struct {
	Data []HotelOffers `json:"data"`
}

type HotelOffers struct {
	Type      string       `json:"type"`
	Hotel     HotelInfo    `json:"hotel"`
	Available bool         `json:"available"`
	Offers    []HotelOffer `json:"offers"`
	Self      string       `json:"self"`
}

type HotelInfo struct {
	Type      string  `json:"type"`
	HotelID   string  `json:"hotelId"`
	ChainCode string  `json:"chainCode"`
	DupeID    string  `json:"dupeId"`
	Name      string  `json:"name"`
	CityCode  string  `json:"cityCode"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type HotelOffer struct {
	ID                  string `json:"id"`
	CheckInDate         string `json:"checkInDate"`
	CheckOutDate        string `json:"checkOutDate"`
	RateCode            string `json:"rateCode"`
	RateFamilyEstimated struct {
		Code string `json:"code"`
		Type string `json:"type"`
	} `json:"rateFamilyEstimated"`
	Room   HotelRoom   `json:"room"`
	Guests HotelGuests `json:"guests"`
	Price  HotelPrice  `json:"price"`
	Self   string      `json:"self"`
}

type HotelRoom struct {
	Type          string `json:"type"`
	TypeEstimated struct {
		Category string `json:"category"`
		Beds     int    `json:"beds"`
		BedType  string `json:"bedType"`
	} `json:"typeEstimated"`
	Description struct {
		Text string `json:"text"`
		Lang string `json:"lang"`
	} `json:"description"`
}

type HotelGuests struct {
	Adults int `json:"adults"`
}

type HotelPrice struct {
	Currency   string `json:"currency"`
	Base       string `json:"base"`
	Total      string `json:"total"`
	Variations struct {
		Average struct {
			Base string `json:"base"`
		} `json:"average"`
	} `json:"variations"`
}

// HotelOffersQuery carries the parameters for one hotel-offers request
type HotelOffersQuery struct {
	HotelIDs     []string
	CheckInDate  string
	CheckOutDate string
	Adults       int
	Currency     string
}

// ListHotelsByCity returns the hotels Amadeus knows in a city
func (c *Client) ListHotelsByCity(ctx context.Context, cityCode string) (*HotelListResponse, error) {
	data := url.Values{}
	data.Set("cityCode", cityCode)
	endpoint := "/v1/reference-data/locations/hotels/by-city?" + data.Encode()

	var listResp HotelListResponse
	if err := c.get(ctx, endpoint, &listResp); err != nil {
		return nil, err
	}

	return &listResp, nil
}

// SearchHotelOffers returns offers for the given hotel IDs and stay
func (c *Client) SearchHotelOffers(ctx context.Context, query HotelOffersQuery) (*HotelOffersResponse, error) {
	data := url.Values{}
	data.Set("hotelIds", strings.Join(query.HotelIDs, ","))
	data.Set("checkInDate", query.CheckInDate)
	data.Set("checkOutDate", query.CheckOutDate)
	data.Set("adults", strconv.Itoa(query.Adults))
	if query.Currency != "" {
		data.Set("currency", query.Currency)
	}
	endpoint := "/v3/shopping/hotel-offers?" + data.Encode()

	var searchResp HotelOffersResponse
	if err := c.get(ctx, endpoint, &searchResp); err != nil {
		return nil, err
	}

	return &searchResp, nil
}

package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFlightArgs() map[string]interface{} {
	return map[string]interface{}{
		"originLocationCode":      "JFK",
		"destinationLocationCode": "LHR",
		"departureDate":           "2025-06-15",
		"adults":                  float64(1),
	}
}

func validHotelArgs() map[string]interface{} {
	return map[string]interface{}{
		"cityCode":     "PAR",
		"checkInDate":  "2025-07-10",
		"checkOutDate": "2025-07-15",
	}
}

func TestParseFlightParams_Valid(t *testing.T) {
	p, terr := parseFlightParams(validFlightArgs())
	require.Nil(t, terr)

	assert.Equal(t, "JFK", p.OriginLocationCode)
	assert.Equal(t, "LHR", p.DestinationLocationCode)
	assert.Equal(t, "2025-06-15", p.DepartureDate)
	assert.Equal(t, 1, p.Adults)
	assert.Empty(t, p.ReturnDate)
	assert.Equal(t, DefaultFlightMax, p.Max)
}

func TestParseFlightParams_FullOptions(t *testing.T) {
	args := validFlightArgs()
	args["returnDate"] = "2025-06-22"
	args["children"] = float64(2)
	args["infants"] = float64(1)
	args["travelClass"] = "business"
	args["nonStop"] = true
	args["currencyCode"] = "eur"
	args["maxPrice"] = float64(2000)
	args["max"] = float64(50)

	p, terr := parseFlightParams(args)
	require.Nil(t, terr)

	assert.Equal(t, "2025-06-22", p.ReturnDate)
	assert.Equal(t, 2, p.Children)
	assert.Equal(t, 1, p.Infants)
	assert.Equal(t, "BUSINESS", p.TravelClass)
	assert.True(t, p.NonStop)
	assert.Equal(t, "EUR", p.CurrencyCode)
	assert.Equal(t, 2000, p.MaxPrice)
	assert.Equal(t, 50, p.Max)
}

func TestParseFlightParams_CoercesStringsAndLowercase(t *testing.T) {
	args := validFlightArgs()
	args["originLocationCode"] = "jfk"
	args["adults"] = "2"

	p, terr := parseFlightParams(args)
	require.Nil(t, terr)
	assert.Equal(t, "JFK", p.OriginLocationCode)
	assert.Equal(t, 2, p.Adults)
}

func TestParseFlightParams_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{"MissingOrigin", func(a map[string]interface{}) { delete(a, "originLocationCode") }},
		{"MissingDestination", func(a map[string]interface{}) { delete(a, "destinationLocationCode") }},
		{"MissingDepartureDate", func(a map[string]interface{}) { delete(a, "departureDate") }},
		{"MissingAdults", func(a map[string]interface{}) { delete(a, "adults") }},
		{"BadIATA", func(a map[string]interface{}) { a["originLocationCode"] = "NEW YORK" }},
		{"NumericIATA", func(a map[string]interface{}) { a["originLocationCode"] = "J1K" }},
		{"SameOriginDestination", func(a map[string]interface{}) { a["destinationLocationCode"] = "JFK" }},
		{"BadDate", func(a map[string]interface{}) { a["departureDate"] = "15/06/2025" }},
		{"AdultsTooMany", func(a map[string]interface{}) { a["adults"] = float64(10) }},
		{"AdultsZero", func(a map[string]interface{}) { a["adults"] = float64(0) }},
		{"AdultsFractional", func(a map[string]interface{}) { a["adults"] = 1.5 }},
		{"ReturnBeforeDeparture", func(a map[string]interface{}) { a["returnDate"] = "2025-06-01" }},
		{"ChildrenOutOfRange", func(a map[string]interface{}) { a["children"] = float64(1) }},
		{"ChildrenTooMany", func(a map[string]interface{}) { a["children"] = float64(12) }},
		{"InfantsTooMany", func(a map[string]interface{}) { a["infants"] = float64(3) }},
		{"BadTravelClass", func(a map[string]interface{}) { a["travelClass"] = "PREMIUM" }},
		{"BadNonStop", func(a map[string]interface{}) { a["nonStop"] = float64(1) }},
		{"BadCurrency", func(a map[string]interface{}) { a["currencyCode"] = "DOLLARS" }},
		{"NegativeMaxPrice", func(a map[string]interface{}) { a["maxPrice"] = float64(-10) }},
		{"ZeroMax", func(a map[string]interface{}) { a["max"] = float64(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := validFlightArgs()
			tt.mutate(args)

			_, terr := parseFlightParams(args)
			require.NotNil(t, terr)
			assert.Equal(t, KindValidation, terr.Kind)
			assert.NotEmpty(t, terr.Message)
		})
	}
}

func TestParseHotelParams_ValidWithDefaults(t *testing.T) {
	p, terr := parseHotelParams(validHotelArgs())
	require.Nil(t, terr)

	assert.Equal(t, "PAR", p.CityCode)
	assert.Equal(t, "2025-07-10", p.CheckInDate)
	assert.Equal(t, "2025-07-15", p.CheckOutDate)
	assert.Equal(t, DefaultHotelAdults, p.Adults)
	assert.Equal(t, DefaultHotelCurrency, p.Currency)
	assert.Equal(t, DefaultHotelMax, p.Max)
}

func TestParseHotelParams_Overrides(t *testing.T) {
	args := validHotelArgs()
	args["adults"] = float64(3)
	args["currency"] = "gbp"
	args["max"] = float64(5)

	p, terr := parseHotelParams(args)
	require.Nil(t, terr)
	assert.Equal(t, 3, p.Adults)
	assert.Equal(t, "GBP", p.Currency)
	assert.Equal(t, 5, p.Max)
}

func TestParseHotelParams_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{"MissingCityCode", func(a map[string]interface{}) { delete(a, "cityCode") }},
		{"MissingCheckIn", func(a map[string]interface{}) { delete(a, "checkInDate") }},
		{"MissingCheckOut", func(a map[string]interface{}) { delete(a, "checkOutDate") }},
		{"BadCityCode", func(a map[string]interface{}) { a["cityCode"] = "PARIS" }},
		{"CheckOutEqualsCheckIn", func(a map[string]interface{}) { a["checkOutDate"] = "2025-07-10" }},
		{"CheckOutBeforeCheckIn", func(a map[string]interface{}) { a["checkOutDate"] = "2025-07-01" }},
		{"AdultsZero", func(a map[string]interface{}) { a["adults"] = float64(0) }},
		{"AdultsTooMany", func(a map[string]interface{}) { a["adults"] = float64(10) }},
		{"BadCurrency", func(a map[string]interface{}) { a["currency"] = "EUROS" }},
		{"ZeroMax", func(a map[string]interface{}) { a["max"] = float64(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := validHotelArgs()
			tt.mutate(args)

			_, terr := parseHotelParams(args)
			require.NotNil(t, terr)
			assert.Equal(t, KindValidation, terr.Kind)
		})
	}
}

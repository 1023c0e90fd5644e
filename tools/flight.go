package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/travelwise/amadeus-mcp/log"
	"github.com/travelwise/amadeus-mcp/providers/amadeus"
)

// FlightTool searches flight offers through the Amadeus
// Flight Offers Search API.
type FlightTool struct {
	api FlightSearcher
}

func NewFlightTool(api FlightSearcher) *FlightTool {
	return &FlightTool{api: api}
}

func (t *FlightTool) Name() string {
	return "get_flight_offers"
}

func (t *FlightTool) Definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("Search flight offers between two airports for given dates and travelers. Returns the raw Amadeus offer list."),
		mcp.WithString("originLocationCode", mcp.Required(),
			mcp.Description("3-letter IATA code of the departure airport/city (e.g. JFK)")),
		mcp.WithString("destinationLocationCode", mcp.Required(),
			mcp.Description("3-letter IATA code of the arrival airport/city (e.g. LHR)")),
		mcp.WithString("departureDate", mcp.Required(),
			mcp.Description("Departure date in YYYY-MM-DD format")),
		mcp.WithNumber("adults", mcp.Required(), mcp.Min(1), mcp.Max(9),
			mcp.Description("Number of adult travelers (1-9)")),
		mcp.WithString("returnDate",
			mcp.Description("Return date in YYYY-MM-DD format; omit for a one-way search")),
		mcp.WithNumber("children", mcp.Min(2), mcp.Max(11),
			mcp.Description("Number of child travelers (2-11)")),
		mcp.WithNumber("infants", mcp.Max(2),
			mcp.Description("Number of infant travelers (at most 2)")),
		mcp.WithString("travelClass", mcp.Enum("ECONOMY", "BUSINESS", "FIRST"),
			mcp.Description("Cabin class")),
		mcp.WithBoolean("nonStop",
			mcp.Description("Only return non-stop itineraries")),
		mcp.WithString("currencyCode",
			mcp.Description("ISO 4217 currency code for prices")),
		mcp.WithNumber("maxPrice", mcp.Min(1),
			mcp.Description("Maximum price per traveler, positive integer")),
		mcp.WithNumber("max", mcp.Min(1), mcp.DefaultNumber(DefaultFlightMax),
			mcp.Description("Maximum number of offers to return")),
	)
}

// Execute validates the arguments and issues exactly one provider call.
// The provider's offer list is passed through unreshaped.
func (t *FlightTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, *Error) {
	params, terr := parseFlightParams(args)
	if terr != nil {
		return nil, terr
	}

	log.Debugf(ctx, "searching flights %s -> %s on %s",
		params.OriginLocationCode, params.DestinationLocationCode, params.DepartureDate)

	resp, err := t.api.SearchFlightOffers(ctx, amadeus.FlightOffersQuery{
		OriginLocationCode:      params.OriginLocationCode,
		DestinationLocationCode: params.DestinationLocationCode,
		DepartureDate:           params.DepartureDate,
		Adults:                  params.Adults,
		ReturnDate:              params.ReturnDate,
		Children:                params.Children,
		Infants:                 params.Infants,
		TravelClass:             params.TravelClass,
		NonStop:                 params.NonStop,
		CurrencyCode:            params.CurrencyCode,
		MaxPrice:                params.MaxPrice,
		Max:                     params.Max,
	})
	if err != nil {
		log.Errorf(ctx, "flight offers search failed: %v", err)
		return nil, providerError(err)
	}

	log.Infof(ctx, "flight search %s -> %s returned %d offers",
		params.OriginLocationCode, params.DestinationLocationCode, len(resp.Data))

	return resp.Data, nil
}

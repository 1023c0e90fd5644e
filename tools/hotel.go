package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/travelwise/amadeus-mcp/log"
	"github.com/travelwise/amadeus-mcp/providers/amadeus"
)

// offerBatchSize caps hotelIds per offer request; the v3 endpoint
// rejects overly long hotelIds lists.
const offerBatchSize = 20

// HotelTool searches hotel offers in two phases: resolve the city to
// hotel IDs, then query offers for those IDs in batches.
type HotelTool struct {
	api HotelSearcher
}

func NewHotelTool(api HotelSearcher) *HotelTool {
	return &HotelTool{api: api}
}

func (t *HotelTool) Name() string {
	return "get_hotel_offers"
}

func (t *HotelTool) Definition() mcp.Tool {
	return mcp.NewTool(t.Name(),
		mcp.WithDescription("Search hotel offers in a city for a stay. Resolves hotels in the city, then returns the hotels that have bookable offers for the dates."),
		mcp.WithString("cityCode", mcp.Required(),
			mcp.Description("3-letter IATA city code (e.g. PAR)")),
		mcp.WithString("checkInDate", mcp.Required(),
			mcp.Description("Check-in date in YYYY-MM-DD format")),
		mcp.WithString("checkOutDate", mcp.Required(),
			mcp.Description("Check-out date in YYYY-MM-DD format, after checkInDate")),
		mcp.WithNumber("adults", mcp.Min(1), mcp.Max(9), mcp.DefaultNumber(DefaultHotelAdults),
			mcp.Description("Number of adult guests per room")),
		mcp.WithString("currency", mcp.DefaultString(DefaultHotelCurrency),
			mcp.Description("ISO 4217 currency code for prices")),
		mcp.WithNumber("max", mcp.Min(1), mcp.DefaultNumber(DefaultHotelMax),
			mcp.Description("Maximum number of hotels to check for offers")),
	)
}

// Execute runs the two-phase search. Hotels without usable offers in a
// batch response are skipped rather than failing the invocation; a hard
// error from either phase fails it as a whole.
func (t *HotelTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, *Error) {
	params, terr := parseHotelParams(args)
	if terr != nil {
		return nil, terr
	}

	// Phase 1: resolve city to hotel IDs
	listResp, err := t.api.ListHotelsByCity(ctx, params.CityCode)
	if err != nil {
		log.Errorf(ctx, "hotel list lookup failed for %s: %v", params.CityCode, err)
		return nil, providerError(err)
	}

	refs := listResp.Data
	if len(refs) == 0 {
		return nil, &Error{
			Kind:    KindNoHotelsFound,
			Message: fmt.Sprintf("no hotels found for city code %s", params.CityCode),
		}
	}
	if len(refs) > params.Max {
		refs = refs[:params.Max]
	}

	hotelIDs := make([]string, len(refs))
	for i, ref := range refs {
		hotelIDs[i] = ref.HotelID
	}

	log.Debugf(ctx, "resolved %d hotels in %s, querying offers", len(hotelIDs), params.CityCode)

	// Phase 2: query offers for the resolved IDs, batched
	var merged []amadeus.HotelOffers
	for start := 0; start < len(hotelIDs); start += offerBatchSize {
		end := start + offerBatchSize
		if end > len(hotelIDs) {
			end = len(hotelIDs)
		}

		resp, err := t.api.SearchHotelOffers(ctx, amadeus.HotelOffersQuery{
			HotelIDs:     hotelIDs[start:end],
			CheckInDate:  params.CheckInDate,
			CheckOutDate: params.CheckOutDate,
			Adults:       params.Adults,
			Currency:     params.Currency,
		})
		if err != nil {
			log.Errorf(ctx, "hotel offers search failed: %v", err)
			return nil, providerError(err)
		}

		// Keep provider order; drop hotels that came back without offers
		for _, h := range resp.Data {
			if !h.Available || len(h.Offers) == 0 {
				continue
			}
			merged = append(merged, h)
		}
	}

	if len(merged) == 0 {
		return nil, &Error{
			Kind:    KindNoOffersFound,
			Message: fmt.Sprintf("no offers found in %s for %s to %s", params.CityCode, params.CheckInDate, params.CheckOutDate),
		}
	}

	log.Infof(ctx, "hotel search in %s returned offers for %d of %d hotels",
		params.CityCode, len(merged), len(hotelIDs))

	return merged, nil
}

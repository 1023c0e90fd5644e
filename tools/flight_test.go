package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelwise/amadeus-mcp/providers/amadeus"
)

// mockFlightAPI records flight-offer calls and replays a canned response
type mockFlightAPI struct {
	calls   int
	queries []amadeus.FlightOffersQuery
	resp    *amadeus.FlightOffersResponse
	err     error
}

func (m *mockFlightAPI) SearchFlightOffers(ctx context.Context, query amadeus.FlightOffersQuery) (*amadeus.FlightOffersResponse, error) {
	m.calls++
	m.queries = append(m.queries, query)
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func TestFlightTool_OneProviderCallPerInvocation(t *testing.T) {
	api := &mockFlightAPI{resp: &amadeus.FlightOffersResponse{
		Data: []amadeus.FlightOffer{{ID: "1"}, {ID: "2"}},
	}}
	tool := NewFlightTool(api)

	result, terr := tool.Execute(context.Background(), validFlightArgs())
	require.Nil(t, terr)
	assert.Equal(t, 1, api.calls)

	offers, ok := result.([]amadeus.FlightOffer)
	require.True(t, ok)
	assert.Len(t, offers, 2)
}

func TestFlightTool_OneWayQueryShape(t *testing.T) {
	api := &mockFlightAPI{resp: &amadeus.FlightOffersResponse{Data: []amadeus.FlightOffer{{ID: "1"}}}}
	tool := NewFlightTool(api)

	_, terr := tool.Execute(context.Background(), validFlightArgs())
	require.Nil(t, terr)

	require.Len(t, api.queries, 1)
	q := api.queries[0]
	assert.Equal(t, "JFK", q.OriginLocationCode)
	assert.Equal(t, "LHR", q.DestinationLocationCode)
	assert.Equal(t, "2025-06-15", q.DepartureDate)
	assert.Equal(t, 1, q.Adults)
	assert.Empty(t, q.ReturnDate)
	assert.Equal(t, DefaultFlightMax, q.Max)
}

func TestFlightTool_InvalidInputMakesNoProviderCall(t *testing.T) {
	api := &mockFlightAPI{}
	tool := NewFlightTool(api)

	args := validFlightArgs()
	args["adults"] = float64(10)

	_, terr := tool.Execute(context.Background(), args)
	require.NotNil(t, terr)
	assert.Equal(t, KindValidation, terr.Kind)
	assert.Equal(t, 0, api.calls)
}

func TestFlightTool_ProviderErrorIsStructured(t *testing.T) {
	api := &mockFlightAPI{err: &amadeus.APIError{StatusCode: 429, Message: "rate limit exceeded"}}
	tool := NewFlightTool(api)

	_, terr := tool.Execute(context.Background(), validFlightArgs())
	require.NotNil(t, terr)
	assert.Equal(t, KindProvider, terr.Kind)
	assert.Contains(t, terr.Message, "rate limit")
}

func TestFlightTool_DeadlineBecomesTimeout(t *testing.T) {
	api := &mockFlightAPI{err: context.DeadlineExceeded}
	tool := NewFlightTool(api)

	_, terr := tool.Execute(context.Background(), validFlightArgs())
	require.NotNil(t, terr)
	assert.Equal(t, KindTimeout, terr.Kind)
}

func TestFlightTool_PayloadRoundTrips(t *testing.T) {
	offers := []amadeus.FlightOffer{
		{
			ID:     "1",
			OneWay: true,
			Price:  amadeus.Price{Currency: "USD", Total: "450.00", GrandTotal: "450.00"},
			Itineraries: []amadeus.Itinerary{{
				Duration: "PT7H10M",
				Segments: []amadeus.Segment{{
					Departure:   amadeus.FlightEndPoint{IataCode: "JFK", At: "2025-06-15T18:00:00"},
					Arrival:     amadeus.FlightEndPoint{IataCode: "LHR", At: "2025-06-16T06:10:00"},
					CarrierCode: "BA",
					Number:      "112",
				}},
			}},
		},
	}
	api := &mockFlightAPI{resp: &amadeus.FlightOffersResponse{Data: offers}}
	tool := NewFlightTool(api)

	result, terr := tool.Execute(context.Background(), validFlightArgs())
	require.Nil(t, terr)

	body, err := json.Marshal(result)
	require.NoError(t, err)

	var parsed []amadeus.FlightOffer
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, offers, parsed)
}

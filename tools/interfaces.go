package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/travelwise/amadeus-mcp/providers/amadeus"
)

// Tool defines the interface for all exposed tools
type Tool interface {
	// Name returns the unique name of the tool (e.g. "get_flight_offers")
	Name() string

	// Definition returns the MCP tool definition, including the
	// parameter schema exposed to the calling host
	Definition() mcp.Tool

	// Execute runs the tool with the given raw arguments
	Execute(ctx context.Context, args map[string]interface{}) (interface{}, *Error)
}

// FlightSearcher is the slice of the Amadeus client the flight tool needs
type FlightSearcher interface {
	SearchFlightOffers(ctx context.Context, query amadeus.FlightOffersQuery) (*amadeus.FlightOffersResponse, error)
}

// HotelSearcher is the slice of the Amadeus client the hotel tool needs
type HotelSearcher interface {
	ListHotelsByCity(ctx context.Context, cityCode string) (*amadeus.HotelListResponse, error)
	SearchHotelOffers(ctx context.Context, query amadeus.HotelOffersQuery) (*amadeus.HotelOffersResponse, error)
}

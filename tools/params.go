package tools

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Defaults applied after validation
const (
	DefaultFlightMax     = 250
	DefaultHotelMax      = 10
	DefaultHotelAdults   = 2
	DefaultHotelCurrency = "USD"
)

var travelClasses = map[string]bool{
	"ECONOMY":  true,
	"BUSINESS": true,
	"FIRST":    true,
}

// FlightSearchParams is a validated get_flight_offers invocation
type FlightSearchParams struct {
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

// HotelSearchParams is a validated get_hotel_offers invocation
type HotelSearchParams struct {
	CityCode     string
	CheckInDate  string
	CheckOutDate string
	Adults       int
	Currency     string
	Max          int
}

// --- coercion helpers ---
// Arguments arrive JSON-decoded, so numbers are float64; the host may
// also send numeric values as strings.

func stringArg(args map[string]interface{}, name string) (string, bool, *Error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, validationErrorf("%s must be a string", name)
	}
	return s, true, nil
}

func intArg(args map[string]interface{}, name string) (int, bool, *Error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false, validationErrorf("%s must be an integer", name)
		}
		return int(v), true, nil
	case int:
		return v, true, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false, validationErrorf("%s must be an integer", name)
		}
		return n, true, nil
	default:
		return 0, false, validationErrorf("%s must be an integer", name)
	}
}

func boolArg(args map[string]interface{}, name string) (bool, bool, *Error) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return false, false, nil
	}
	switch v := raw.(type) {
	case bool:
		return v, true, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, false, validationErrorf("%s must be a boolean", name)
		}
		return b, true, nil
	default:
		return false, false, validationErrorf("%s must be a boolean", name)
	}
}

func dateArg(args map[string]interface{}, name string) (string, time.Time, bool, *Error) {
	s, present, terr := stringArg(args, name)
	if terr != nil || !present {
		return "", time.Time{}, present, terr
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", time.Time{}, true, validationErrorf("%s must be a date in YYYY-MM-DD format", name)
	}
	return s, t, true, nil
}

// iataArg validates a 3-letter IATA location code, upcasing it
func iataArg(args map[string]interface{}, name string) (string, bool, *Error) {
	s, present, terr := stringArg(args, name)
	if terr != nil || !present {
		return "", present, terr
	}
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 3 {
		return "", true, validationErrorf("%s must be a 3-letter IATA code", name)
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return "", true, validationErrorf("%s must be a 3-letter IATA code", name)
		}
	}
	return s, true, nil
}

// --- per-tool validation ---
// Pure functions: no network, no side effects. Order per field is
// presence, then type coercion, then range/enum, then cross-field checks;
// defaults are filled in last.

func parseFlightParams(args map[string]interface{}) (*FlightSearchParams, *Error) {
	p := &FlightSearchParams{}

	origin, present, terr := iataArg(args, "originLocationCode")
	if terr != nil {
		return nil, terr
	}
	if !present {
		return nil, validationErrorf("originLocationCode is required")
	}
	p.OriginLocationCode = origin

	destination, present, terr := iataArg(args, "destinationLocationCode")
	if terr != nil {
		return nil, terr
	}
	if !present {
		return nil, validationErrorf("destinationLocationCode is required")
	}
	p.DestinationLocationCode = destination

	departureStr, departure, present, terr := dateArg(args, "departureDate")
	if terr != nil {
		return nil, terr
	}
	if !present {
		return nil, validationErrorf("departureDate is required")
	}
	p.DepartureDate = departureStr

	adults, present, terr := intArg(args, "adults")
	if terr != nil {
		return nil, terr
	}
	if !present {
		return nil, validationErrorf("adults is required")
	}
	if adults < 1 || adults > 9 {
		return nil, validationErrorf("adults must be between 1 and 9")
	}
	p.Adults = adults

	returnStr, returnDate, present, terr := dateArg(args, "returnDate")
	if terr != nil {
		return nil, terr
	}
	if present {
		if returnDate.Before(departure) {
			return nil, validationErrorf("returnDate must not be before departureDate")
		}
		p.ReturnDate = returnStr
	}

	if children, present, terr := intArg(args, "children"); terr != nil {
		return nil, terr
	} else if present {
		if children < 2 || children > 11 {
			return nil, validationErrorf("children must be between 2 and 11")
		}
		p.Children = children
	}

	if infants, present, terr := intArg(args, "infants"); terr != nil {
		return nil, terr
	} else if present {
		if infants < 0 || infants > 2 {
			return nil, validationErrorf("infants must be between 0 and 2")
		}
		p.Infants = infants
	}

	if class, present, terr := stringArg(args, "travelClass"); terr != nil {
		return nil, terr
	} else if present {
		class = strings.ToUpper(class)
		if !travelClasses[class] {
			return nil, validationErrorf("travelClass must be one of ECONOMY, BUSINESS, FIRST")
		}
		p.TravelClass = class
	}

	if nonStop, present, terr := boolArg(args, "nonStop"); terr != nil {
		return nil, terr
	} else if present {
		p.NonStop = nonStop
	}

	if currency, present, terr := iataArg(args, "currencyCode"); terr != nil {
		return nil, &Error{Kind: KindValidation, Message: "currencyCode must be a 3-letter ISO 4217 code"}
	} else if present {
		p.CurrencyCode = currency
	}

	if maxPrice, present, terr := intArg(args, "maxPrice"); terr != nil {
		return nil, terr
	} else if present {
		if maxPrice <= 0 {
			return nil, validationErrorf("maxPrice must be a positive integer")
		}
		p.MaxPrice = maxPrice
	}

	max, present, terr := intArg(args, "max")
	if terr != nil {
		return nil, terr
	}
	if present {
		if max <= 0 {
			return nil, validationErrorf("max must be a positive integer")
		}
		p.Max = max
	} else {
		p.Max = DefaultFlightMax
	}

	// The provider rejects this too, but failing here saves the round trip
	if p.OriginLocationCode == p.DestinationLocationCode {
		return nil, validationErrorf("originLocationCode and destinationLocationCode must differ")
	}

	return p, nil
}

func parseHotelParams(args map[string]interface{}) (*HotelSearchParams, *Error) {
	p := &HotelSearchParams{}

	cityCode, present, terr := iataArg(args, "cityCode")
	if terr != nil {
		return nil, terr
	}
	if !present {
		return nil, validationErrorf("cityCode is required")
	}
	p.CityCode = cityCode

	checkInStr, checkIn, present, terr := dateArg(args, "checkInDate")
	if terr != nil {
		return nil, terr
	}
	if !present {
		return nil, validationErrorf("checkInDate is required")
	}
	p.CheckInDate = checkInStr

	checkOutStr, checkOut, present, terr := dateArg(args, "checkOutDate")
	if terr != nil {
		return nil, terr
	}
	if !present {
		return nil, validationErrorf("checkOutDate is required")
	}
	if !checkOut.After(checkIn) {
		return nil, validationErrorf("checkOutDate must be after checkInDate")
	}
	p.CheckOutDate = checkOutStr

	adults, present, terr := intArg(args, "adults")
	if terr != nil {
		return nil, terr
	}
	if present {
		if adults < 1 || adults > 9 {
			return nil, validationErrorf("adults must be between 1 and 9")
		}
		p.Adults = adults
	} else {
		p.Adults = DefaultHotelAdults
	}

	currency, present, terr := iataArg(args, "currency")
	if terr != nil {
		return nil, &Error{Kind: KindValidation, Message: "currency must be a 3-letter ISO 4217 code"}
	}
	if present {
		p.Currency = currency
	} else {
		p.Currency = DefaultHotelCurrency
	}

	max, present, terr := intArg(args, "max")
	if terr != nil {
		return nil, terr
	}
	if present {
		if max <= 0 {
			return nil, validationErrorf("max must be a positive integer")
		}
		p.Max = max
	} else {
		p.Max = DefaultHotelMax
	}

	return p, nil
}

package ldbws

import (
	"context"
	"fmt"
	"time"

	"github.com/hooklift/gowsdl/soap"
	"github.com/rs/zerolog/log"
)

const DefaultEndpoint = "https://lite.realtime.nationalrail.co.uk/OpenLDBWS/ldb12.asmx"

const (
	depBoardWithDetailsAction = "http://thalesgroup.com/RTTI/2015-05-14/ldb/GetDepBoardWithDetails"
	serviceDetailsAction      = "http://thalesgroup.com/RTTI/2012-01-13/ldb/GetServiceDetails"
)

const (
	DefaultBoardRows   = 10
	DefaultBoardWindow = 120

	DefaultTimeout = 30 * time.Second
)

// FetchError is returned when the schedule source cannot be reached or answers with something unreadable
type FetchError struct {
	Operation string
	Err       error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("ldbws %s failed: %s", e.Operation, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Client struct {
	NumRows    int
	TimeWindow int

	soapClient *soap.Client
}

func NewClient(endpoint string, token string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	soapClient := soap.NewClient(endpoint, soap.WithTimeout(timeout))
	soapClient.AddHeader(accessToken{TokenValue: token})

	return &Client{
		NumRows:    DefaultBoardRows,
		TimeWindow: DefaultBoardWindow,
		soapClient: soapClient,
	}
}

// Departures returns the services from origin calling at destination, first those that left in the
// last window and then those due in the next window. A service can appear in both.
func (c *Client) Departures(ctx context.Context, origin string, destination string) ([]Train, error) {
	pastTrains, err := c.GetDepBoardWithDetails(ctx, origin, destination, -c.TimeWindow, c.TimeWindow)
	if err != nil {
		return nil, err
	}

	futureTrains, err := c.GetDepBoardWithDetails(ctx, origin, destination, 0, c.TimeWindow)
	if err != nil {
		return nil, err
	}

	return append(pastTrains, futureTrains...), nil
}

func (c *Client) GetDepBoardWithDetails(ctx context.Context, crs string, filterCrs string, timeOffset int, timeWindow int) ([]Train, error) {
	request := &depBoardWithDetailsRequest{
		NumRows:    c.NumRows,
		Crs:        crs,
		FilterCrs:  filterCrs,
		FilterType: "to",
		TimeOffset: timeOffset,
		TimeWindow: timeWindow,
	}
	response := &depBoardWithDetailsResponse{}

	if err := c.soapClient.CallContext(ctx, depBoardWithDetailsAction, request, response); err != nil {
		return nil, &FetchError{Operation: "GetDepBoardWithDetails", Err: err}
	}

	trains := newTrains(crs, response.DepartureBoardDetails)

	log.Debug().
		Str("crs", crs).
		Str("filter", filterCrs).
		Int("offset", timeOffset).
		Int("services", len(trains)).
		Msg("Fetched departure board")

	return trains, nil
}

func (c *Client) ServiceDetail(ctx context.Context, serviceID string) ([]CallingPoint, error) {
	request := &serviceDetailsRequest{
		ServiceID: serviceID,
	}
	response := &serviceDetailsResponse{}

	if err := c.soapClient.CallContext(ctx, serviceDetailsAction, request, response); err != nil {
		return nil, &FetchError{Operation: "GetServiceDetails", Err: err}
	}

	return response.ServiceDetails.callingPoints()
}

package ldbws

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var serviceFileNameReplacer = strings.NewReplacer("/", "_", "+", "-", "=", "")

// ReplaySource answers from SOAP responses saved to a directory, laid out as
// <origin>-<destination>-past.xml, <origin>-<destination>-future.xml and service-<id>.xml
type ReplaySource struct {
	Directory string
}

func (r ReplaySource) Departures(ctx context.Context, origin string, destination string) ([]Train, error) {
	var trains []Train

	for _, window := range []string{"past", "future"} {
		path := filepath.Join(r.Directory, fmt.Sprintf("%s-%s-%s.xml", origin, destination, window))

		windowTrains, err := r.readBoard(path, origin)
		if err != nil {
			return nil, &FetchError{Operation: "GetDepBoardWithDetails", Err: err}
		}

		trains = append(trains, windowTrains...)
	}

	return trains, nil
}

func (r ReplaySource) ServiceDetail(ctx context.Context, serviceID string) ([]CallingPoint, error) {
	path := filepath.Join(r.Directory, fmt.Sprintf("service-%s.xml", serviceFileNameReplacer.Replace(serviceID)))

	file, err := os.Open(path)
	if err != nil {
		return nil, &FetchError{Operation: "GetServiceDetails", Err: err}
	}
	defer file.Close()

	callingPoints, err := ParseServiceDetails(file)
	if err != nil {
		return nil, &FetchError{Operation: "GetServiceDetails", Err: err}
	}

	return callingPoints, nil
}

func (r ReplaySource) readBoard(path string, origin string) ([]Train, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseDepartureBoard(file, origin)
}

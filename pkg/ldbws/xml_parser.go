package ldbws

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

type soapEnvelope struct {
	XMLName xml.Name
	Body    soapBody `xml:"Body"`
}

type soapBody struct {
	Fault          *soapFault                   `xml:"Fault"`
	DepartureBoard *depBoardWithDetailsResponse `xml:"GetDepBoardWithDetailsResponse"`
	ServiceDetails *serviceDetailsResponse      `xml:"GetServiceDetailsResponse"`
}

type soapFault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
}

func decodeEnvelope(reader io.Reader) (*soapEnvelope, error) {
	envelope := &soapEnvelope{}

	d := xml.NewDecoder(reader)
	d.CharsetReader = charset.NewReaderLabel

	if err := d.Decode(envelope); err != nil {
		return nil, err
	}

	if envelope.Body.Fault != nil {
		return nil, fmt.Errorf("soap fault %s: %s", envelope.Body.Fault.Code, envelope.Body.Fault.String)
	}

	return envelope, nil
}

// ParseDepartureBoard reads a saved GetDepBoardWithDetails SOAP response
func ParseDepartureBoard(reader io.Reader, origin string) ([]Train, error) {
	envelope, err := decodeEnvelope(reader)
	if err != nil {
		return nil, err
	}

	if envelope.Body.DepartureBoard == nil {
		return nil, errors.New("envelope does not contain a GetDepBoardWithDetailsResponse")
	}

	return newTrains(origin, envelope.Body.DepartureBoard.DepartureBoardDetails), nil
}

// ParseServiceDetails reads a saved GetServiceDetails SOAP response
func ParseServiceDetails(reader io.Reader) ([]CallingPoint, error) {
	envelope, err := decodeEnvelope(reader)
	if err != nil {
		return nil, err
	}

	if envelope.Body.ServiceDetails == nil {
		return nil, errors.New("envelope does not contain a GetServiceDetailsResponse")
	}

	return envelope.Body.ServiceDetails.ServiceDetails.callingPoints()
}

package ldbws

import "encoding/xml"

type depBoardWithDetailsRequest struct {
	XMLName xml.Name `xml:"http://thalesgroup.com/RTTI/2021-11-01/ldb/ GetDepBoardWithDetailsRequest"`

	NumRows    int    `xml:"numRows"`
	Crs        string `xml:"crs"`
	FilterCrs  string `xml:"filterCrs,omitempty"`
	FilterType string `xml:"filterType,omitempty"`
	TimeOffset int    `xml:"timeOffset"`
	TimeWindow int    `xml:"timeWindow"`
}

type serviceDetailsRequest struct {
	XMLName xml.Name `xml:"http://thalesgroup.com/RTTI/2021-11-01/ldb/ GetServiceDetailsRequest"`

	ServiceID string `xml:"serviceID"`
}

type accessToken struct {
	XMLName xml.Name `xml:"http://thalesgroup.com/RTTI/2013-11-28/Token/types AccessToken"`

	TokenValue string `xml:"TokenValue"`
}

type depBoardWithDetailsResponse struct {
	DepartureBoardDetails stationBoardWithDetails `xml:"GetStationBoardResult"`
}

type stationBoardWithDetails struct {
	GeneratedAt       string `xml:"generatedAt"`
	LocationName      string `xml:"locationName"`
	Crs               string `xml:"crs"`
	PlatformAvailable bool   `xml:"platformAvailable"`

	// Absent rather than empty when the window has no trains
	TrainServices *nationalRailwayServices `xml:"trainServices"`
}

type nationalRailwayServices struct {
	Services []nationalRailwayService `xml:"service"`
}

type nationalRailwayService struct {
	ServiceID string `xml:"serviceID"`
	RSID      string `xml:"rsid"`

	IsCancelled bool `xml:"isCancelled"`

	Operator     string `xml:"operator"`
	OperatorCode string `xml:"operatorCode"`

	CancelReason string `xml:"cancelReason"`
	DelayReason  string `xml:"delayReason"`

	Scheduled string `xml:"std"`
	Estimated string `xml:"etd"`

	Origin      []nationalRailwayLocation `xml:"origin>location"`
	Destination []nationalRailwayLocation `xml:"destination>location"`

	SubsequentCallingPoints *nationalRailwayCallingPointLists `xml:"subsequentCallingPoints"`
}

type nationalRailwayLocation struct {
	Name string `xml:"locationName"`
	Crs  string `xml:"crs"`
}

type nationalRailwayCallingPointLists struct {
	Lists []nationalRailwayCallingPointList `xml:"callingPointList"`
}

type nationalRailwayCallingPointList struct {
	CallingPoints []nationalRailwayCallingPoint `xml:"callingPoint"`
}

type nationalRailwayCallingPoint struct {
	Name        string `xml:"locationName"`
	Crs         string `xml:"crs"`
	Scheduled   string `xml:"st"`
	Estimated   string `xml:"et"`
	Actual      string `xml:"at"`
	IsCancelled bool   `xml:"isCancelled"`
}

type serviceDetailsResponse struct {
	ServiceDetails nationalRailwayServiceDetails `xml:"GetServiceDetailsResult"`
}

type nationalRailwayServiceDetails struct {
	GeneratedAt  string `xml:"generatedAt"`
	LocationName string `xml:"locationName"`
	Crs          string `xml:"crs"`
	Operator     string `xml:"operator"`

	SubsequentCallingPoints *nationalRailwayCallingPointLists `xml:"subsequentCallingPoints"`
}

// first returns the calling points towards the service's first destination
func (l *nationalRailwayCallingPointLists) first() []nationalRailwayCallingPoint {
	if l == nil || len(l.Lists) == 0 {
		return nil
	}

	return l.Lists[0].CallingPoints
}

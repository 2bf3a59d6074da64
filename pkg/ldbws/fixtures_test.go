package ldbws

const departureBoardFixture = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xmlns:xsd="http://www.w3.org/2001/XMLSchema">
  <soap:Body>
    <GetDepBoardWithDetailsResponse xmlns="http://thalesgroup.com/RTTI/2021-11-01/ldb/">
      <GetStationBoardResult xmlns:lt4="http://thalesgroup.com/RTTI/2015-11-27/ldb/types" xmlns:lt5="http://thalesgroup.com/RTTI/2016-02-16/ldb/types" xmlns:lt8="http://thalesgroup.com/RTTI/2021-11-01/ldb/types" xmlns:lt7="http://thalesgroup.com/RTTI/2017-10-01/ldb/types">
        <lt4:generatedAt>2026-10-18T10:05:12.000+01:00</lt4:generatedAt>
        <lt4:locationName>South One</lt4:locationName>
        <lt4:crs>SOA</lt4:crs>
        <lt8:trainServices>
          <lt8:service>
            <lt4:std>10:00</lt4:std>
            <lt4:etd>On time</lt4:etd>
            <lt4:operator>London North Eastern Railway</lt4:operator>
            <lt4:operatorCode>GR</lt4:operatorCode>
            <lt4:serviceType>train</lt4:serviceType>
            <lt4:serviceID>future-1</lt4:serviceID>
            <lt5:origin><lt4:location><lt4:locationName>South One</lt4:locationName><lt4:crs>SOA</lt4:crs></lt4:location></lt5:origin>
            <lt5:destination><lt4:location><lt4:locationName>Far North</lt4:locationName><lt4:crs>FNO</lt4:crs></lt4:location></lt5:destination>
            <lt8:subsequentCallingPoints>
              <lt8:callingPointList>
                <lt8:callingPoint><lt8:locationName>South Two</lt8:locationName><lt8:crs>STW</lt8:crs><lt8:st>10:10</lt8:st><lt8:et>On time</lt8:et></lt8:callingPoint>
                <lt8:callingPoint><lt8:locationName>North One</lt8:locationName><lt8:crs>NON</lt8:crs><lt8:st>10:20</lt8:st><lt8:et>10:23</lt8:et></lt8:callingPoint>
                <lt8:callingPoint><lt8:locationName>North Two</lt8:locationName><lt8:crs>NTW</lt8:crs><lt8:st>10:30</lt8:st><lt8:et>Cancelled</lt8:et><lt8:isCancelled>true</lt8:isCancelled></lt8:callingPoint>
              </lt8:callingPointList>
            </lt8:subsequentCallingPoints>
          </lt8:service>
          <lt8:service>
            <lt4:std>09:30</lt4:std>
            <lt4:etd>09:34</lt4:etd>
            <lt4:operator>Northern</lt4:operator>
            <lt4:operatorCode>NT</lt4:operatorCode>
            <lt4:serviceID>past-1</lt4:serviceID>
            <lt5:origin><lt4:location><lt4:locationName>South One</lt4:locationName><lt4:crs>SOA</lt4:crs></lt4:location></lt5:origin>
            <lt5:destination><lt4:location><lt4:locationName>North Two</lt4:locationName><lt4:crs>NTW</lt4:crs></lt4:location></lt5:destination>
          </lt8:service>
          <lt8:service>
            <lt4:etd>On time</lt4:etd>
            <lt4:operator>Northern</lt4:operator>
            <lt4:serviceID>broken-1</lt4:serviceID>
          </lt8:service>
        </lt8:trainServices>
      </GetStationBoardResult>
    </GetDepBoardWithDetailsResponse>
  </soap:Body>
</soap:Envelope>`

const emptyDepartureBoardFixture = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <GetDepBoardWithDetailsResponse xmlns="http://thalesgroup.com/RTTI/2021-11-01/ldb/">
      <GetStationBoardResult xmlns:lt4="http://thalesgroup.com/RTTI/2015-11-27/ldb/types">
        <lt4:generatedAt>2026-10-18T02:05:12.000+01:00</lt4:generatedAt>
        <lt4:locationName>South One</lt4:locationName>
        <lt4:crs>SOA</lt4:crs>
      </GetStationBoardResult>
    </GetDepBoardWithDetailsResponse>
  </soap:Body>
</soap:Envelope>`

const serviceDetailsFixture = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <GetServiceDetailsResponse xmlns="http://thalesgroup.com/RTTI/2021-11-01/ldb/">
      <GetServiceDetailsResult xmlns:lt4="http://thalesgroup.com/RTTI/2015-11-27/ldb/types" xmlns:lt8="http://thalesgroup.com/RTTI/2021-11-01/ldb/types">
        <lt4:generatedAt>2026-10-18T10:05:12.000+01:00</lt4:generatedAt>
        <lt4:locationName>South One</lt4:locationName>
        <lt4:crs>SOA</lt4:crs>
        <lt4:operator>Northern</lt4:operator>
        <lt8:subsequentCallingPoints>
          <lt8:callingPointList>
            <lt8:callingPoint><lt8:locationName>South Two</lt8:locationName><lt8:crs>STW</lt8:crs><lt8:st>09:40</lt8:st><lt8:at>09:43</lt8:at></lt8:callingPoint>
            <lt8:callingPoint><lt8:locationName>North One</lt8:locationName><lt8:crs>NON</lt8:crs><lt8:st>09:50</lt8:st><lt8:et>09:52</lt8:et></lt8:callingPoint>
          </lt8:callingPointList>
        </lt8:subsequentCallingPoints>
      </GetServiceDetailsResult>
    </GetServiceDetailsResponse>
  </soap:Body>
</soap:Envelope>`

const faultFixture = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <soap:Fault>
      <faultcode>soap:Client</faultcode>
      <faultstring>Invalid crs code supplied</faultstring>
    </soap:Fault>
  </soap:Body>
</soap:Envelope>`

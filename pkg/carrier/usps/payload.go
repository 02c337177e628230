package usps

import "encoding/xml"

type trackingResponse struct {
	TrackingNumber            string          `json:"trackingNumber"`
	ExpectedDeliveryTimeStamp string          `json:"expectedDeliveryTimeStamp"`
	TrackingEvents            []trackingEvent `json:"trackingEvents"`
}

type trackingEvent struct {
	EventType      string `json:"eventType"`
	EventTimestamp string `json:"eventTimestamp"`
	GMTTimestamp   string `json:"GMTTimestamp"`
	GMTOffset      string `json:"GMTOffset"`
	EventCountry   string `json:"eventCountry"`
	EventCity      string `json:"eventCity"`
	EventState     string `json:"eventState"`
	EventZIP       string `json:"eventZIP"`
	EventCode      string `json:"eventCode"`
	Firm           string `json:"firm"`
}

type trackFieldRequest struct {
	XMLName  xml.Name `xml:"TrackFieldRequest"`
	UserID   string   `xml:"USERID,attr"`
	Revision string   `xml:"Revision"`
	ClientIP string   `xml:"ClientIp"`
	SourceID string   `xml:"SourceId"`
	TrackID  struct {
		ID string `xml:"ID,attr"`
	} `xml:"TrackID"`
}

// trackResponse is either a TrackResponse document or, when the request
// itself is rejected, a root level Error document.
type trackResponse struct {
	XMLName     xml.Name
	TrackInfo   []trackInfo `xml:"TrackInfo"`
	Number      string      `xml:"Number"`
	Description string      `xml:"Description"`
}

type trackInfo struct {
	ID                   string        `xml:"ID,attr"`
	ExpectedDeliveryDate string        `xml:"ExpectedDeliveryDate"`
	TrackSummary         *trackDetail  `xml:"TrackSummary"`
	TrackDetail          []trackDetail `xml:"TrackDetail"`
	Error                *legacyError  `xml:"Error"`
}

type trackDetail struct {
	EventTime    string `xml:"EventTime"`
	EventDate    string `xml:"EventDate"`
	Event        string `xml:"Event"`
	EventCity    string `xml:"EventCity"`
	EventState   string `xml:"EventState"`
	EventZIPCode string `xml:"EventZIPCode"`
	EventCountry string `xml:"EventCountry"`
	FirmName     string `xml:"FirmName"`
	EventCode    string `xml:"EventCode"`
}

type legacyError struct {
	Number      string `xml:"Number"`
	Description string `xml:"Description"`
}

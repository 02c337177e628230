package upsmi

import "encoding/xml"

type trackRequest struct {
	XMLName        xml.Name `xml:"TrackingRequest"`
	TrackingNumber string   `xml:"TrackingNumber"`
	Locale         string   `xml:"Locale"`
}

type trackResponse struct {
	XMLName xml.Name   `xml:"TrackingResponse"`
	Package []pkg      `xml:"Package"`
	Error   *respError `xml:"Error"`
}

type respError struct {
	Code        string `xml:"Code"`
	Description string `xml:"Description"`
}

type pkg struct {
	TrackingNumber        string  `xml:"TrackingNumber"`
	ScheduledDeliveryDate string  `xml:"ScheduledDeliveryDate"`
	Events                []event `xml:"Events>Event"`
}

type event struct {
	Date        string `xml:"Date"`
	Time        string `xml:"Time"`
	Code        string `xml:"Code"`
	Description string `xml:"Description"`
	Location    string `xml:"Location"`
	PostalCode  string `xml:"PostalCode"`
	Country     string `xml:"Country"`
}

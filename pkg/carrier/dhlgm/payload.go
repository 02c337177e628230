package dhlgm

import "encoding/json"

type trackingResponse struct {
	Packages []packageInfo `json:"packages"`
}

type packageInfo struct {
	Package struct {
		DHLPackageID     string `json:"dhlPackageId"`
		TrackingID       string `json:"trackingId"`
		ExpectedDelivery string `json:"expectedDelivery"`
	} `json:"package"`
	Events []event `json:"events"`
}

type event struct {
	Date                      string      `json:"date"`
	Time                      string      `json:"time"`
	TimeZone                  string      `json:"timeZone"`
	PrimaryEventID            json.Number `json:"primaryEventId"`
	PrimaryEventDescription   string      `json:"primaryEventDescription"`
	SecondaryEventDescription string      `json:"secondaryEventDescription"`
	Location                  string      `json:"location"`
	PostalCode                string      `json:"postalCode"`
	Country                   string      `json:"country"`
}

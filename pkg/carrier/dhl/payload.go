package dhl

type shipmentsResponse struct {
	Shipments []shipment `json:"shipments"`
}

type shipment struct {
	ID                         string `json:"id"`
	Service                    string `json:"service"`
	EstimatedTimeOfDelivery    string `json:"estimatedTimeOfDelivery"`
	EstimatedDeliveryTimeFrame struct {
		EstimatedFrom    string `json:"estimatedFrom"`
		EstimatedThrough string `json:"estimatedThrough"`
	} `json:"estimatedDeliveryTimeFrame"`
	Events []event `json:"events"`
}

type event struct {
	Timestamp   string   `json:"timestamp"`
	Location    location `json:"location"`
	StatusCode  string   `json:"statusCode"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	Remark      string   `json:"remark"`
}

type location struct {
	Address struct {
		AddressLocality string `json:"addressLocality"`
		PostalCode      string `json:"postalCode"`
		CountryCode     string `json:"countryCode"`
	} `json:"address"`
}

type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

package ups

type trackResponse struct {
	TrackResponse struct {
		Shipment []shipment `json:"shipment"`
	} `json:"trackResponse"`
}

type errorResponse struct {
	Response struct {
		Errors []struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"errors"`
	} `json:"response"`
}

type shipment struct {
	InquiryNumber string    `json:"inquiryNumber"`
	Package       []pkg     `json:"package"`
	Warnings      []warning `json:"warnings"`
}

type warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type pkg struct {
	TrackingNumber string         `json:"trackingNumber"`
	DeliveryDate   []deliveryDate `json:"deliveryDate"`
	DeliveryTime   deliveryTime   `json:"deliveryTime"`
	Activity       []activity     `json:"activity"`
}

type deliveryDate struct {
	Type string `json:"type"`
	Date string `json:"date"`
}

type deliveryTime struct {
	Type      string `json:"type"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type activity struct {
	Location struct {
		Address address `json:"address"`
	} `json:"location"`
	Status    status `json:"status"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	GMTDate   string `json:"gmtDate"`
	GMTTime   string `json:"gmtTime"`
	GMTOffset string `json:"gmtOffset"`
}

type address struct {
	City          string `json:"city"`
	StateProvince string `json:"stateProvince"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	CountryCode   string `json:"countryCode"`
}

type status struct {
	Type                      string `json:"type"`
	Description               string `json:"description"`
	Code                      string `json:"code"`
	StatusCode                string `json:"statusCode"`
	SimplifiedTextDescription string `json:"simplifiedTextDescription"`
}

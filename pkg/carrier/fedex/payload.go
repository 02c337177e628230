package fedex

type trackRequest struct {
	IncludeDetailedScans bool           `json:"includeDetailedScans"`
	TrackingInfo         []trackingInfo `json:"trackingInfo"`
}

type trackingInfo struct {
	TrackingNumberInfo struct {
		TrackingNumber string `json:"trackingNumber"`
	} `json:"trackingNumberInfo"`
}

type trackResponse struct {
	Output struct {
		CompleteTrackResults []struct {
			TrackingNumber string        `json:"trackingNumber"`
			TrackResults   []trackResult `json:"trackResults"`
		} `json:"completeTrackResults"`
	} `json:"output"`
}

type trackResult struct {
	Error                       *apiError   `json:"error"`
	ScanEvents                  []scanEvent `json:"scanEvents"`
	EstimatedDeliveryTimeWindow struct {
		Window struct {
			Begins string `json:"begins"`
			Ends   string `json:"ends"`
		} `json:"window"`
	} `json:"estimatedDeliveryTimeWindow"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type scanEvent struct {
	Date                 string   `json:"date"`
	EventType            string   `json:"eventType"`
	EventDescription     string   `json:"eventDescription"`
	ExceptionDescription string   `json:"exceptionDescription"`
	ScanLocation         location `json:"scanLocation"`
}

type location struct {
	City                string `json:"city"`
	StateOrProvinceCode string `json:"stateOrProvinceCode"`
	PostalCode          string `json:"postalCode"`
	CountryCode         string `json:"countryCode"`
}

type errorResponse struct {
	Errors []apiError `json:"errors"`
}

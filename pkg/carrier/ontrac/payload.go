package ontrac

type trackingResult struct {
	Shipments []shipment `xml:"Shipments>Shipment"`
	Error     string     `xml:"Error"`
}

type shipment struct {
	Tracking   string  `xml:"Tracking"`
	ExpDelDate string  `xml:"Exp_Del_Date"`
	Delivered  bool    `xml:"Delivered"`
	Events     []event `xml:"Events>Event"`
}

type event struct {
	Status      string `xml:"Status"`
	Description string `xml:"Description"`
	EventTime   string `xml:"EventTime"`
	City        string `xml:"City"`
	State       string `xml:"State"`
	Zip         string `xml:"Zip"`
}

package sml

func ptrFloat(v float64) *float64 { return &v }

func ptrBool(v bool) *bool { return &v }

func sampleTerm(value string) *Term {
	return &Term{
		Definition: "urn:ogc:def:identifier:OGC:1.0:" + value,
		CodeSpace:  &CodeSpace{Href: "http://www.example.org/codes"},
		Value:      value,
	}
}

func sampleIdentification() *Identification {
	return &Identification{IdentifierList: &IdentifierList{Identifiers: []*Identifier{
		{Name: "longName", Term: sampleTerm("Automatic weather station 17")},
		{Name: "shortName", Term: sampleTerm("AWS-17")},
	}}}
}

func sampleClassification() *Classification {
	return &Classification{ClassifierList: &ClassifierList{Classifiers: []*Classifier{
		{Name: "sensorType", Term: sampleTerm("anemometer")},
	}}}
}

func sampleContact() *Contact {
	return &Contact{
		Role: "urn:ogc:def:role:OGC:operator",
		ResponsibleParty: &ResponsibleParty{
			ID:               "operator",
			OrganizationName: "Met Service",
			ContactInfo: &ContactInfo{
				Phone:           &Phone{Voice: []string{"+49 30 1234"}},
				Address:         &Address{DeliveryPoints: []string{"Main St 1"}, City: "Berlin", Country: "DE"},
				OnlineResources: []*OnlineResource{{Href: "http://www.example.org"}},
			},
		},
	}
}

func sampleDocumentation() *Documentation {
	return &Documentation{
		Role: "urn:ogc:def:role:manual",
		DocumentList: &DocumentList{
			Description: "manuals",
			Members: []*DocumentListMember{{
				Name: "manual",
				Document: &Document{
					Description:     "operator manual",
					Date:            "2009-01-01",
					Format:          "application/pdf",
					OnlineResources: []*OnlineResource{{Href: "http://www.example.org/manual.pdf"}},
				},
			}},
		},
	}
}

func sampleHistory() *History {
	return &History{EventList: &EventList{Members: []*EventListMember{{
		Name: "calibration",
		Event: &Event{
			Date:        "2010-03-04",
			Description: "annual calibration",
			Keywords:    []*Keywords{{KeywordList: &KeywordList{Keywords: []string{"calibration"}}}},
		},
	}}}}
}

func sampleDataRecord() *DataRecord {
	return &DataRecord{Fields: []*Field{
		{Name: "range", Quantity: &Quantity{
			Definition: "urn:ogc:def:property:OGC:measurementRange",
			UOM:        &UnitOfMeasure{Code: "m/s"},
			Value:      ptrFloat(60),
		}},
		{Name: "model", Text: &Text{Value: "WindMaster"}},
		{Name: "heated", Boolean: &Boolean{Value: ptrBool(true)}},
	}}
}

func sampleVector() *Vector {
	return &Vector{
		Definition: "urn:ogc:def:property:OGC:location",
		Coordinates: []*Coordinate{
			{Name: "latitude", Quantity: &Quantity{UOM: &UnitOfMeasure{Code: "deg"}, Value: ptrFloat(52.52)}},
			{Name: "longitude", Quantity: &Quantity{UOM: &UnitOfMeasure{Code: "deg"}, Value: ptrFloat(13.40)}},
		},
	}
}

func sampleComponent() *Component {
	return &Component{
		ProcessFields: ProcessFields{
			ID:              "anemometer",
			Description:     "cup anemometer",
			Names:           []string{"anemometer"},
			Identification:  []*Identification{sampleIdentification()},
			Classification:  []*Classification{sampleClassification()},
			ValidTime:       &ValidTime{TimePeriod: &TimePeriod{BeginPosition: "2009-01-01"}},
			Characteristics: []*Characteristics{{Name: "physical", DataRecord: sampleDataRecord()}},
			History:         []*History{sampleHistory()},
		},
		Position: &Position{Name: "mast", Vector: sampleVector()},
		Method:   &ProcessMethod{Href: "urn:example:method:cup"},
	}
}

func sampleSystem() *System {
	return &System{
		ProcessFields: ProcessFields{
			ID:             "aws-17",
			Description:    "Automatic weather station",
			Keywords:       []*Keywords{{KeywordList: &KeywordList{Keywords: []string{"weather", "wind"}}}},
			Identification: []*Identification{sampleIdentification()},
			ValidTime:      &ValidTime{TimeInstant: &TimeInstant{TimePosition: "2009-01-01T00:00:00Z"}},
			Capabilities:   []*Capabilities{{Name: "measurement", DataRecord: sampleDataRecord()}},
			Contacts:       []*Contact{sampleContact()},
			Documentation:  []*Documentation{sampleDocumentation()},
		},
		Position: &Position{Name: "station", SwePosition: &SwePosition{
			ReferenceFrame: "urn:ogc:def:crs:EPSG:4326",
			LocalFrame:     "#STATION_FRAME",
			Location:       sampleVector(),
		}},
		Components: &ComponentList{Components: []*ComponentListMember{
			{Name: "anemometer", ProcessVariant: ProcessVariant{Component: sampleComponent()}},
			{Name: "logger", Href: "http://www.example.org/logger.xml"},
		}},
		Positions: &PositionList{Positions: []*Position{
			{Name: "anemometerPosition", Vector: sampleVector()},
		}},
		Connections: []*Connection{{
			Name: "windSpeed",
			Link: &Link{
				Source:      &LinkRef{Ref: "anemometer/outputs/speed"},
				Destination: &LinkRef{Ref: "this/outputs/windSpeed"},
			},
		}},
	}
}

func sampleChain() *ProcessChain {
	return &ProcessChain{
		ProcessFields: ProcessFields{ID: "chain", Description: "derived wind chill"},
		Components: &ComponentList{Components: []*ComponentListMember{
			{Name: "windChill", ProcessVariant: ProcessVariant{ProcessModel: &ProcessModel{
				ProcessFields: ProcessFields{ID: "windChill"},
				Method:        &ProcessMethod{Href: "urn:example:method:windChill"},
			}}},
		}},
	}
}

func sampleSensorML() *SensorML {
	doc := New(
		&Member{ProcessVariant: ProcessVariant{System: sampleSystem()}},
		&Member{ProcessVariant: ProcessVariant{ProcessChain: sampleChain()}},
	)
	doc.Keywords = []*Keywords{{KeywordList: &KeywordList{Keywords: []string{"station"}}}}
	doc.Contacts = []*Contact{{Person: &Person{Surname: "Doe", Name: "Jane", Email: "jane@example.org"}}}
	return doc
}

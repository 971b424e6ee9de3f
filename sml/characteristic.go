package sml

// Capabilities describes the performance of a process as a SWE
// DataRecord.
type Capabilities struct {
	Name       string      `xml:"name,attr,omitempty"`
	Href       string      `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
	DataRecord *DataRecord `xml:"http://www.opengis.net/swe/1.0.1 DataRecord,omitempty"`
}

type AbstractCapabilities interface {
	GetName() string
	GetHref() string
	GetDataRecord() AbstractDataRecord
}

func NewCapabilitiesFrom(src AbstractCapabilities) (*Capabilities, error) {
	if isNil(src) {
		return nil, nil
	}
	rec, err := NewDataRecordFrom(src.GetDataRecord())
	if err != nil {
		return nil, err
	}
	return &Capabilities{Name: src.GetName(), Href: src.GetHref(), DataRecord: rec}, nil
}

func (c *Capabilities) GetName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

func (c *Capabilities) GetHref() string {
	if c == nil {
		return ""
	}
	return c.Href
}

func (c *Capabilities) GetDataRecord() AbstractDataRecord {
	if c == nil || c.DataRecord == nil {
		return nil
	}
	return c.DataRecord
}

func (c *Capabilities) Equal(o *Capabilities) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Name == o.Name && c.Href == o.Href && c.DataRecord.Equal(o.DataRecord)
}

func (c *Capabilities) Hash() uint64 {
	if c == nil {
		return 0
	}
	return newHasher("Capabilities").str(c.Name).str(c.Href).node(c.DataRecord).sum()
}

func (c *Capabilities) String() string {
	if c == nil {
		return ""
	}
	return describe("Capabilities").
		str("name", c.Name).
		str("href", c.Href).
		node("dataRecord", c.DataRecord).String()
}

// Characteristics describes the physical properties of a process.
type Characteristics struct {
	Name       string      `xml:"name,attr,omitempty"`
	Href       string      `xml:"http://www.w3.org/1999/xlink href,attr,omitempty"`
	DataRecord *DataRecord `xml:"http://www.opengis.net/swe/1.0.1 DataRecord,omitempty"`
}

type AbstractCharacteristics interface {
	GetName() string
	GetHref() string
	GetDataRecord() AbstractDataRecord
}

func NewCharacteristicsFrom(src AbstractCharacteristics) (*Characteristics, error) {
	if isNil(src) {
		return nil, nil
	}
	rec, err := NewDataRecordFrom(src.GetDataRecord())
	if err != nil {
		return nil, err
	}
	return &Characteristics{Name: src.GetName(), Href: src.GetHref(), DataRecord: rec}, nil
}

func (c *Characteristics) GetName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

func (c *Characteristics) GetHref() string {
	if c == nil {
		return ""
	}
	return c.Href
}

func (c *Characteristics) GetDataRecord() AbstractDataRecord {
	if c == nil || c.DataRecord == nil {
		return nil
	}
	return c.DataRecord
}

func (c *Characteristics) Equal(o *Characteristics) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Name == o.Name && c.Href == o.Href && c.DataRecord.Equal(o.DataRecord)
}

func (c *Characteristics) Hash() uint64 {
	if c == nil {
		return 0
	}
	return newHasher("Characteristics").str(c.Name).str(c.Href).node(c.DataRecord).sum()
}

func (c *Characteristics) String() string {
	if c == nil {
		return ""
	}
	return describe("Characteristics").
		str("name", c.Name).
		str("href", c.Href).
		node("dataRecord", c.DataRecord).String()
}

var (
	_ AbstractCapabilities    = (*Capabilities)(nil)
	_ AbstractCharacteristics = (*Characteristics)(nil)
)

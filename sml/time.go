package sml

// TimeInstant is a gml:TimeInstant.
type TimeInstant struct {
	TimePosition string `xml:"timePosition,omitempty"`
}

type AbstractTimeInstant interface {
	GetTimePosition() string
}

func NewTimeInstantFrom(src AbstractTimeInstant) *TimeInstant {
	if isNil(src) {
		return nil
	}
	return &TimeInstant{TimePosition: src.GetTimePosition()}
}

func (t *TimeInstant) GetTimePosition() string {
	if t == nil {
		return ""
	}
	return t.TimePosition
}

func (t *TimeInstant) Equal(o *TimeInstant) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.TimePosition == o.TimePosition
}

func (t *TimeInstant) Hash() uint64 {
	if t == nil {
		return 0
	}
	return newHasher("TimeInstant").str(t.TimePosition).sum()
}

func (t *TimeInstant) String() string {
	if t == nil {
		return ""
	}
	return describe("TimeInstant").str("timePosition", t.TimePosition).String()
}

// TimePeriod is a gml:TimePeriod. An open period leaves one end empty.
type TimePeriod struct {
	BeginPosition string `xml:"beginPosition,omitempty"`
	EndPosition   string `xml:"endPosition,omitempty"`
}

type AbstractTimePeriod interface {
	GetBeginPosition() string
	GetEndPosition() string
}

func NewTimePeriodFrom(src AbstractTimePeriod) *TimePeriod {
	if isNil(src) {
		return nil
	}
	return &TimePeriod{BeginPosition: src.GetBeginPosition(), EndPosition: src.GetEndPosition()}
}

func (t *TimePeriod) GetBeginPosition() string {
	if t == nil {
		return ""
	}
	return t.BeginPosition
}

func (t *TimePeriod) GetEndPosition() string {
	if t == nil {
		return ""
	}
	return t.EndPosition
}

func (t *TimePeriod) Equal(o *TimePeriod) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.BeginPosition == o.BeginPosition && t.EndPosition == o.EndPosition
}

func (t *TimePeriod) Hash() uint64 {
	if t == nil {
		return 0
	}
	return newHasher("TimePeriod").str(t.BeginPosition).str(t.EndPosition).sum()
}

func (t *TimePeriod) String() string {
	if t == nil {
		return ""
	}
	return describe("TimePeriod").
		str("begin", t.BeginPosition).
		str("end", t.EndPosition).String()
}

// ValidTime is the sml:validTime property, holding either an instant or
// a period.
type ValidTime struct {
	TimeInstant *TimeInstant `xml:"http://www.opengis.net/gml TimeInstant,omitempty"`
	TimePeriod  *TimePeriod  `xml:"http://www.opengis.net/gml TimePeriod,omitempty"`
}

type AbstractValidTime interface {
	GetTimeInstant() AbstractTimeInstant
	GetTimePeriod() AbstractTimePeriod
}

func NewValidTimeFrom(src AbstractValidTime) *ValidTime {
	if isNil(src) {
		return nil
	}
	return &ValidTime{
		TimeInstant: NewTimeInstantFrom(src.GetTimeInstant()),
		TimePeriod:  NewTimePeriodFrom(src.GetTimePeriod()),
	}
}

func (v *ValidTime) GetTimeInstant() AbstractTimeInstant {
	if v == nil || v.TimeInstant == nil {
		return nil
	}
	return v.TimeInstant
}

func (v *ValidTime) GetTimePeriod() AbstractTimePeriod {
	if v == nil || v.TimePeriod == nil {
		return nil
	}
	return v.TimePeriod
}

func (v *ValidTime) Equal(o *ValidTime) bool {
	if v == nil || o == nil {
		return v == o
	}
	return v.TimeInstant.Equal(o.TimeInstant) && v.TimePeriod.Equal(o.TimePeriod)
}

func (v *ValidTime) Hash() uint64 {
	if v == nil {
		return 0
	}
	return newHasher("ValidTime").node(v.TimeInstant).node(v.TimePeriod).sum()
}

func (v *ValidTime) String() string {
	if v == nil {
		return ""
	}
	return describe("ValidTime").
		node("instant", v.TimeInstant).
		node("period", v.TimePeriod).String()
}

var (
	_ AbstractTimeInstant = (*TimeInstant)(nil)
	_ AbstractTimePeriod  = (*TimePeriod)(nil)
	_ AbstractValidTime   = (*ValidTime)(nil)
)

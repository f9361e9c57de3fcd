package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownLabel is returned when a text label does not name any member of a category.
var ErrUnknownLabel = errors.New("unknown category label")

func labelOf(kind string, labels []string, i int) string {
	if i < 0 || i >= len(labels) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}
	return labels[i]
}

func parseLabel[T ~int](kind string, labels []string, s string) (T, error) {
	for i, l := range labels {
		if l == s {
			return T(i), nil
		}
	}
	return T(-1), fmt.Errorf("parse %s %q: %w", kind, s, ErrUnknownLabel)
}

// City is one of the five fixed shipment endpoints.
type City int

const (
	Moscow City = iota
	SaintPetersburg
	Kazan
	Novosibirsk
	Yekaterinburg
)

var cityLabels = []string{"Москва", "Санкт-Петербург", "Казань", "Новосибирск", "Екатеринбург"}

// Cities lists every City in declaration order.
var Cities = []City{Moscow, SaintPetersburg, Kazan, Novosibirsk, Yekaterinburg}

func (c City) String() string { return labelOf("City", cityLabels, int(c)) }
func (c City) Valid() bool { return c >= Moscow && c <= Yekaterinburg }

func ParseCity(s string) (City, error) { return parseLabel[City]("city", cityLabels, s) }

// CargoType classifies what is being shipped.
type CargoType int

const (
	CargoGeneral CargoType = iota
	CargoPerishable
	CargoHazardous
	CargoFragile
)

var cargoLabels = []string{"общий", "скоропортящийся", "опасный", "хрупкий"}

var CargoTypes = []CargoType{CargoGeneral, CargoPerishable, CargoHazardous, CargoFragile}

func (c CargoType) String() string { return labelOf("CargoType", cargoLabels, int(c)) }
func (c CargoType) Valid() bool { return c >= CargoGeneral && c <= CargoFragile }

func ParseCargoType(s string) (CargoType, error) {
	return parseLabel[CargoType]("cargo type", cargoLabels, s)
}

// TransportType is the carrier mode.
type TransportType int

const (
	TransportTruck TransportType = iota
	TransportRail
	TransportAir
	TransportSea
)

var transportLabels = []string{"авто", "жд", "авиа", "морской"}

var TransportTypes = []TransportType{TransportTruck, TransportRail, TransportAir, TransportSea}

func (t TransportType) String() string { return labelOf("TransportType", transportLabels, int(t)) }
func (t TransportType) Valid() bool { return t >= TransportTruck && t <= TransportSea }

func ParseTransportType(s string) (TransportType, error) {
	return parseLabel[TransportType]("transport type", transportLabels, s)
}

type Season int

const (
	Winter Season = iota
	Spring
	Summer
	Autumn
)

var seasonLabels = []string{"зима", "весна", "лето", "осень"}

var Seasons = []Season{Winter, Spring, Summer, Autumn}

func (s Season) String() string { return labelOf("Season", seasonLabels, int(s)) }
func (s Season) Valid() bool { return s >= Winter && s <= Autumn }

func ParseSeason(s string) (Season, error) { return parseLabel[Season]("season", seasonLabels, s) }

// Weekday starts the week on Monday, unlike time.Weekday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayLabels = []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Weekday) String() string { return labelOf("Weekday", weekdayLabels, int(d)) }
func (d Weekday) Valid() bool { return d >= Monday && d <= Sunday }

func ParseWeekday(s string) (Weekday, error) {
	return parseLabel[Weekday]("day of week", weekdayLabels, s)
}

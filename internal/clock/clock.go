package clock

import (
	"fmt"
	"time"

	"github.com/agent-platform/worldclock/internal/cities"
	"github.com/agent-platform/worldclock/internal/convert"
)

// Format selects the time and date layouts for a Card.
type Format struct {
	Time string
	Date string
}

// Hour12 matches en-US locale output: "03:04:05 PM", "Saturday, June 15, 2024".
var Hour12 = Format{Time: "03:04:05 PM", Date: "Monday, January 2, 2006"}

// Hour24 uses a 24-hour clock with the same long date.
var Hour24 = Format{Time: "15:04:05", Date: "Monday, January 2, 2006"}

// FormatFor returns Hour12 or Hour24.
func FormatFor(hour12 bool) Format {
	if hour12 {
		return Hour12
	}
	return Hour24
}

// Card holds the formatted time info for one active city. Index is the
// city's position in the active list, used to address removal.
type Card struct {
	Index    int
	Name     string
	Timezone string
	Time     string
	Date     string
	Offset   string
	// OffsetSeconds is the zone's offset east of UTC at the projected instant.
	OffsetSeconds int
	Err           error
}

// GetCard returns the card for one city at the given instant.
func GetCard(index int, city cities.City, now time.Time, f Format) Card {
	card := Card{Index: index, Name: city.Name, Timezone: city.Timezone}

	loc, err := convert.LoadZone(city.Timezone)
	if err != nil {
		card.Err = fmt.Errorf("load timezone %s: %w", city.Timezone, err)
		return card
	}
	t := now.In(loc)
	_, offset := t.Zone()

	card.Time = t.Format(f.Time)
	card.Date = t.Format(f.Date)
	card.Offset = FormatOffset(offset)
	card.OffsetSeconds = offset
	return card
}

// Project returns one card per city, in list order. A city whose zone cannot
// be loaded gets a card with Err set.
func Project(list []cities.City, now time.Time, f Format) []Card {
	cards := make([]Card, 0, len(list))
	for i, c := range list {
		cards = append(cards, GetCard(i, c, now, f))
	}
	return cards
}

// FormatOffset renders a UTC offset in seconds as "UTC+9", "UTC-4" or "UTC+5:30".
func FormatOffset(offset int) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := offset / 3600
	minutes := (offset % 3600) / 60
	if minutes == 0 {
		return fmt.Sprintf("UTC%s%d", sign, hours)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, hours, minutes)
}

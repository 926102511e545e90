// Package cities provides the city-to-timezone catalog for the worldclock CLI.
package cities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a timezone is not in the catalog.
var ErrNotFound = errors.New("city not found")

// City represents a city with its display name and IANA timezone identifier.
type City struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

// String returns "Name (Timezone)", the label used in zone pickers.
func (c City) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Timezone)
}

// catalog is the fixed list of selectable cities, in display order.
var catalog = []City{
	{Name: "New York", Timezone: "America/New_York"},
	{Name: "London", Timezone: "Europe/London"},
	{Name: "Tokyo", Timezone: "Asia/Tokyo"},
	{Name: "Sydney", Timezone: "Australia/Sydney"},
	{Name: "Dubai", Timezone: "Asia/Dubai"},
	{Name: "Singapore", Timezone: "Asia/Singapore"},
	{Name: "Hong Kong", Timezone: "Asia/Hong_Kong"},
	{Name: "Mumbai", Timezone: "Asia/Kolkata"},
	{Name: "Paris", Timezone: "Europe/Paris"},
	{Name: "Los Angeles", Timezone: "America/Los_Angeles"},
	{Name: "Chicago", Timezone: "America/Chicago"},
	{Name: "Toronto", Timezone: "America/Toronto"},
	{Name: "São Paulo", Timezone: "America/Sao_Paulo"},
	{Name: "Berlin", Timezone: "Europe/Berlin"},
	{Name: "Moscow", Timezone: "Europe/Moscow"},
	{Name: "Shanghai", Timezone: "Asia/Shanghai"},
	{Name: "Seoul", Timezone: "Asia/Seoul"},
	{Name: "Mexico City", Timezone: "America/Mexico_City"},
	{Name: "Cairo", Timezone: "Africa/Cairo"},
	{Name: "Istanbul", Timezone: "Europe/Istanbul"},
	{Name: "Bangkok", Timezone: "Asia/Bangkok"},
	{Name: "Amsterdam", Timezone: "Europe/Amsterdam"},
	{Name: "Rome", Timezone: "Europe/Rome"},
	{Name: "Madrid", Timezone: "Europe/Madrid"},
	{Name: "Zurich", Timezone: "Europe/Zurich"},
	{Name: "Vancouver", Timezone: "America/Vancouver"},
	{Name: "Auckland", Timezone: "Pacific/Auckland"},
	{Name: "Buenos Aires", Timezone: "America/Argentina/Buenos_Aires"},
	{Name: "Johannesburg", Timezone: "Africa/Johannesburg"},
	{Name: "Tel Aviv", Timezone: "Asia/Tel_Aviv"},
}

// defaultActive lists the timezones shown before the user picks any cities.
var defaultActive = []string{"America/New_York", "Europe/London", "Asia/Tokyo"}

// Catalog is a read-only, ordered set of cities indexed by timezone.
type Catalog struct {
	cities []City
	byZone map[string]int
}

// NewCatalog returns the built-in catalog.
func NewCatalog() *Catalog {
	return newCatalog(catalog)
}

func newCatalog(list []City) *Catalog {
	c := &Catalog{
		cities: make([]City, len(list)),
		byZone: make(map[string]int, len(list)),
	}
	copy(c.cities, list)
	for i, city := range c.cities {
		c.byZone[city.Timezone] = i
	}
	return c
}

// Len returns the number of cities in the catalog.
func (c *Catalog) Len() int {
	return len(c.cities)
}

// All returns a copy of every city in catalog order.
func (c *Catalog) All() []City {
	out := make([]City, len(c.cities))
	copy(out, c.cities)
	return out
}

// Lookup returns the city for the given timezone identifier.
func (c *Catalog) Lookup(timezone string) (City, error) {
	i, ok := c.byZone[timezone]
	if !ok {
		return City{}, fmt.Errorf("%w: %s", ErrNotFound, timezone)
	}
	return c.cities[i], nil
}

// Search returns the cities whose name or timezone contains term,
// case-insensitively, in catalog order. The caller is expected to reject an
// empty term; an empty term matches everything.
func (c *Catalog) Search(term string) []City {
	needle := strings.ToLower(term)
	var out []City
	for _, city := range c.cities {
		if strings.Contains(strings.ToLower(city.Name), needle) ||
			strings.Contains(strings.ToLower(city.Timezone), needle) {
			out = append(out, city)
		}
	}
	return out
}

// Parse resolves city names or timezones given on the command line, in the
// order given. Matching is case-insensitive and exact. Unknown names are
// reported together.
func (c *Catalog) Parse(args []string) ([]City, error) {
	var out []City
	var unknown []string

	for _, arg := range args {
		key := strings.ToLower(strings.TrimSpace(arg))
		if key == "" {
			continue
		}
		city, ok := c.find(key)
		if !ok {
			unknown = append(unknown, arg)
			continue
		}
		out = append(out, city)
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s (see 'worldclock zones')", ErrNotFound, strings.Join(unknown, ", "))
	}
	if len(out) == 0 {
		return nil, errors.New("no cities specified")
	}
	return out, nil
}

func (c *Catalog) find(key string) (City, bool) {
	for _, city := range c.cities {
		if strings.ToLower(city.Name) == key || strings.ToLower(city.Timezone) == key {
			return city, true
		}
	}
	return City{}, false
}

// DefaultActive returns the seed list of active cities: New York, London, Tokyo.
func (c *Catalog) DefaultActive() []City {
	out := make([]City, 0, len(defaultActive))
	for _, tz := range defaultActive {
		if city, err := c.Lookup(tz); err == nil {
			out = append(out, city)
		}
	}
	return out
}

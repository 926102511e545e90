// worldclock shows live clocks for a user-chosen set of cities and converts
// times between timezones.
//
// Usage:
//
//	worldclock                      # live clocks for your cities
//	worldclock add tokyo            # add a city from the catalog
//	worldclock remove 0             # remove the first city
//	worldclock convert 2024-06-15T12:00 --from America/New_York --to Asia/Tokyo
package main

import "github.com/agent-platform/worldclock/cmd"

func main() {
	cmd.Execute()
}

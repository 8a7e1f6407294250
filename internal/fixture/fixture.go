// Package fixture holds the static user and event tables the seeder pushes
// into the backend, plus the helpers that resolve them to wire values.
package fixture

import "time"

// User is one hardcoded test account.
type User struct {
	Username  string `validate:"required,lowercase"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
	Name      string `validate:"required"`
	Bio       string `validate:"required"`
	Phone     string `validate:"required,e164"`
	Threema   string `validate:"required"`
	Languages string `validate:"required"`
}

// Event is one hardcoded event owned by a fixture user. DaysAhead and Hour
// are relative; StartTime resolves them against the current date at run time.
type Event struct {
	Location        string  `validate:"required"`
	Latitude        float64 `validate:"required,latitude"`
	Longitude       float64 `validate:"required,longitude"`
	Title           string  `validate:"required"`
	Description     string  `validate:"required"`
	Category        string  `validate:"required,category"`
	DaysAhead       int     `validate:"required,min=1"`
	Hour            int     `validate:"min=0,max=23"`
	MaxParticipants int     `validate:"required,min=1"`
	Gender          string  `validate:"required,gender"`
	AgeMin          int     `validate:"min=0"`
	AgeMax          int     `validate:"required,gtefield=AgeMin"`
}

// StartTime resolves an event's relative day offset and hour to an absolute
// future timestamp. Minute, second and sub-second components are pinned to
// zero so seeded events always start on the hour.
func StartTime(now time.Time, daysAhead, hour int) time.Time {
	d := now.UTC().AddDate(0, 0, daysAhead)

	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}

// UserByName returns the fixture user with the given username.
func UserByName(username string) (User, bool) {
	for _, u := range Users {
		if u.Username == username {
			return u, true
		}
	}

	return User{}, false
}

// EventsFor returns the event table of the given user, or nil for an unknown
// username.
func EventsFor(username string) []Event {
	return userEvents[username]
}

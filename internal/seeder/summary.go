package seeder

import (
	"fmt"

	"github.com/veidly/seedctl/internal/fixture"
)

// printSummary reports the final counts and how to use the seeded data.
func (s *Seeder) printSummary(eventsCreated, usersCreated int) {
	s.logger.Info("seeding finished",
		"users_created", usersCreated,
		"events_created", eventsCreated,
	)

	fmt.Println()
	fmt.Println("You can now:")
	fmt.Println("  - visit http://localhost:3000 to see the events on the map")
	fmt.Println("  - log in with any seeded user (password: SecurePass123):")
	for _, u := range fixture.Users {
		fmt.Printf("      %s (%s)\n", u.Email, u.Bio)
	}
	fmt.Println()
}

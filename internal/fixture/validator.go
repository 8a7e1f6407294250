package fixture

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Event categories the backend accepts.
var categories = map[string]bool{
	"sports_fitness":      true,
	"food_dining":         true,
	"social_drinks":       true,
	"parents_kids":        true,
	"adventure_travel":    true,
	"learning_skills":     true,
	"business_networking": true,
}

// Gender restrictions the backend accepts.
var genders = map[string]bool{
	"any":    true,
	"female": true,
	"male":   true,
}

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("category", validateCategory)
	validator.RegisterValidation("gender", validateGender)

	return validator
}

func validateCategory(fl validator.FieldLevel) bool {
	return categories[fl.Field().String()]
}

func validateGender(fl validator.FieldLevel) bool {
	return genders[fl.Field().String()]
}

// Validate checks every fixture table, so a malformed fixture fails the whole
// run before it touches the network instead of failing one item mid-run.
func Validate() error {
	v := NewValidator()

	for _, u := range Users {
		if err := v.Struct(u); err != nil {
			return fmt.Errorf("user fixture %q: %w", u.Username, err)
		}

		events := EventsFor(u.Username)
		if len(events) == 0 {
			return fmt.Errorf("user fixture %q has no events", u.Username)
		}

		for i, e := range events {
			if err := v.Struct(e); err != nil {
				return fmt.Errorf("event fixture %q[%d] (%s): %w", u.Username, i, e.Title, err)
			}
		}
	}

	return nil
}

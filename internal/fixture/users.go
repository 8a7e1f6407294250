package fixture

// Users are the five test accounts, one per country, each seeding ten events
// in their home region. All share the same password so anyone can log in and
// poke around after a seeding run.
var Users = []User{
	{
		Username:  "anna",
		Email:     "anna.kowalski@example.com",
		Password:  "SecurePass123",
		Name:      "Anna Kowalski",
		Bio:       "Polish mom looking for playdates and coffee",
		Phone:     "+48123456789",
		Threema:   "ANNAPL",
		Languages: "pl,en",
	},
	{
		Username:  "marco",
		Email:     "marco.rossi@example.com",
		Password:  "SecurePass123",
		Name:      "Marco Rossi",
		Bio:       "Italian sports enthusiast, love basketball and cycling",
		Phone:     "+39334567890",
		Threema:   "MARCOITA",
		Languages: "it,en",
	},
	{
		Username:  "sophie",
		Email:     "sophie.martin@example.com",
		Password:  "SecurePass123",
		Name:      "Sophie Martin",
		Bio:       "French foodie and culture lover",
		Phone:     "+33612345678",
		Threema:   "SOPHIEFR",
		Languages: "fr,en",
	},
	{
		Username:  "hans",
		Email:     "hans.mueller@example.com",
		Password:  "SecurePass123",
		Name:      "Hans Müller",
		Bio:       "German hiker and nature enthusiast",
		Phone:     "+49151234567",
		Threema:   "HANSDE",
		Languages: "de,en",
	},
	{
		Username:  "elena",
		Email:     "elena.garcia@example.com",
		Password:  "SecurePass123",
		Name:      "Elena García",
		Bio:       "Spanish dancer and social butterfly",
		Phone:     "+34612345678",
		Threema:   "ELENAES",
		Languages: "es,en",
	},
}

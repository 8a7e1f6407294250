package api

// Wire shapes for the slice of the Veidly REST surface the seeder touches.
// Field names follow the backend's JSON contract exactly.

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login. Login responses carry
// a zero-valued User on some backend versions, so callers must not rely on it
// outside of registration.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	ID            int    `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Bio           string `json:"bio"`
	Threema       string `json:"threema"`
	Languages     string `json:"languages"`
	IsAdmin       bool   `json:"is_admin"`
	EmailVerified bool   `json:"email_verified"`
}

type ProfileUpdateRequest struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	Phone     string `json:"phone"`
	Threema   string `json:"threema"`
	Languages string `json:"languages"`
}

type EventRequest struct {
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	StartTime         string  `json:"start_time"`
	CreatorName       string  `json:"creator_name"`
	CreatorContact    string  `json:"creator_contact"`
	MaxParticipants   int     `json:"max_participants"`
	GenderRestriction string  `json:"gender_restriction"`
	AgeMin            int     `json:"age_min"`
	AgeMax            int     `json:"age_max"`
}

type Event struct {
	ID                int     `json:"id"`
	UserID            int     `json:"user_id"`
	Title             string  `json:"title"`
	Category          string  `json:"category"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	StartTime         string  `json:"start_time"`
	MaxParticipants   int     `json:"max_participants"`
	GenderRestriction string  `json:"gender_restriction"`
	AgeMin            int     `json:"age_min"`
	AgeMax            int     `json:"age_max"`
}

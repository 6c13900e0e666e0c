package entity

// User is an account on the board. Password holds the bcrypt hash and
// is never serialized.
type User struct {
	Username  string `json:"username"`
	Password  string `json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	PhotoURL  string `json:"photo_url"`
	IsAdmin   bool   `json:"is_admin"`
}

// UserProfile is the single-user response shape. It carries neither
// the password hash nor the admin flag.
type UserProfile struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	PhotoURL  string `json:"photo_url"`
}

// UserSummary is the shape returned by the user listing.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

package signup

import "time"

// Signup is one captured email from the drop gate or the newsletter
// section.
type Signup struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

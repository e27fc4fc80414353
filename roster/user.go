package roster

// ID uniquely identifies a user within a roster.
type ID int64

// User is a single roster entry. Users are plain values: operations that
// "modify" a user build a replacement value instead of editing in place.
type User struct {
	ID       ID     `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Active   bool   `json:"active"`
}

func (u User) toggled() User {
	u.Active = !u.Active
	return u
}

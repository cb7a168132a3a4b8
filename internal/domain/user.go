package domain

type User struct {
	ID       int
	Name     string
	Email    string
	Password string
	Role     string
}

// Identity is what a verified credential says about its bearer.
type Identity struct {
	UserID int
	Role   string
}

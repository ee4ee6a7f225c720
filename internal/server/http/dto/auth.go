package dto

// LoginRequest describes staff email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and the account's role so the
// front-end can route to the right dashboard.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// CreateStaffRequest describes an admin creating a dashboard account.
type CreateStaffRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// StaffResponse is the public view of a staff account.
type StaffResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

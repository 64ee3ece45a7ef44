package auth

// RegisterRequest carries the raw registration form. Fields are bound
// without gin validation tags: the validator in this package evaluates
// every rule and reports per-field messages instead of failing the bind.
type RegisterRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	DateOfBirth     string `json:"dateOfBirth"`
	Gender          string `json:"gender"`
	Country         string `json:"country"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	PhoneNumber     string `json:"phoneNumber"`
	Location        string `json:"location"`
}

// RegistrationPayload is the derived outbound record sent to the
// registrar once the form validates.
type RegistrationPayload struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
	Location    string `json:"location"`
}

type AuthResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type RegisterResponse struct {
	User         AuthResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

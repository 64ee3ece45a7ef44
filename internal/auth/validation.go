package auth

import (
	"regexp"
	"strings"
)

// ValidationErrors maps a field name to the ordered list of violated
// rules. An absent field (or empty list) means the field is valid.
type ValidationErrors map[string][]string

// Roles the registration backend accepts.
var validRoles = []string{
	"admin",
	"farmer",
	"OrganicFarmer",
	"cropFarmer",
	"greenhouseFarmer",
	"forester",
	"gardener",
	"soilTester",
	"agriculturalResearcher",
}

var (
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

	upperRegex   = regexp.MustCompile(`[A-Z]`)
	digitRegex   = regexp.MustCompile(`[0-9]`)
	specialRegex = regexp.MustCompile(`[@#$%^&*(),.?":{}|<>]`)
)

// ValidatePassword checks the composite strength policy. Every rule is
// evaluated; the result is the list of violated ones, empty when the
// password is acceptable.
func ValidatePassword(password string) []string {
	var errs []string
	if len(password) < 8 {
		errs = append(errs, "At least 8 characters")
	}
	if !upperRegex.MatchString(password) {
		errs = append(errs, "At least one uppercase letter")
	}
	if !digitRegex.MatchString(password) {
		errs = append(errs, "At least one number")
	}
	if !specialRegex.MatchString(password) {
		errs = append(errs, "At least one special character")
	}
	return errs
}

// ValidateRegistration evaluates every field rule independently and
// returns the full mapping. Fields never short-circuit each other.
func ValidateRegistration(req RegisterRequest) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(req.FirstName) == "" {
		errs["firstName"] = []string{"First name is required"}
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs["lastName"] = []string{"Last name is required"}
	}
	if strings.TrimSpace(req.Username) == "" {
		errs["username"] = []string{"Username is required"}
	}

	if strings.TrimSpace(req.Email) == "" || !emailRegex.MatchString(req.Email) {
		errs["email"] = []string{"Valid email is required"}
	}

	if strings.TrimSpace(req.PhoneNumber) == "" {
		errs["phoneNumber"] = []string{"Phone number is required"}
	} else if !phoneRegex.MatchString(req.PhoneNumber) {
		errs["phoneNumber"] = []string{"Enter a valid phone number with country code (e.g. +91...)"}
	}

	if req.Role == "" {
		errs["role"] = []string{"Role is required"}
	} else if !isValidRole(req.Role) {
		errs["role"] = []string{"Role must be one of the accepted roles"}
	}

	if req.DateOfBirth == "" {
		errs["dateOfBirth"] = []string{"Date of birth is required"}
	}
	if req.Gender == "" {
		errs["gender"] = []string{"Gender is required"}
	}
	if req.Country == "" {
		errs["country"] = []string{"Country is required"}
	}
	if strings.TrimSpace(req.Location) == "" {
		errs["location"] = []string{"Specific location/address is required"}
	}

	if pwErrs := ValidatePassword(req.Password); len(pwErrs) > 0 {
		errs["password"] = pwErrs
	}

	if req.Password != req.ConfirmPassword {
		errs["confirmPassword"] = []string{"Passwords do not match"}
	}

	return errs
}

func isValidRole(role string) bool {
	for _, r := range validRoles {
		if r == role {
			return true
		}
	}
	return false
}

// containsDigit backs the name input pre-filter: digits in name fields
// are rejected at the request boundary, before the rule mapping runs.
func containsDigit(s string) bool {
	return digitRegex.MatchString(s)
}

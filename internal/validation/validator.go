package validation

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/fluentfox-api/internal/domain"
)

// Forecast bounds for the number of requested days.
const (
	MinForecastDays = 1
	MaxForecastDays = 10
)

// MinimumAge is the youngest age, in whole years, allowed to register.
const MinimumAge = 13

// ForecastQuery holds the parsed query parameters of a forecast request.
type ForecastQuery struct {
	Days int
}

// Validator checks request payloads. It is safe for concurrent use.
type Validator struct {
	tags *validator.Validate
	now  func() time.Time
}

// New creates a Validator that evaluates dates against the current time.
func New() *Validator {
	return NewWithClock(time.Now)
}

// NewWithClock creates a Validator with an injectable clock.
func NewWithClock(now func() time.Time) *Validator {
	return &Validator{
		tags: validator.New(validator.WithRequiredStructEnabled()),
		now:  now,
	}
}

// Validate returns every violation found in payload, in rule declaration
// order. A nil result means the payload is valid.
func (v *Validator) Validate(payload any) []string {
	switch p := payload.(type) {
	case domain.RegisterRequest:
		return v.Register(p)
	case *domain.RegisterRequest:
		return v.Register(*p)
	case domain.CreateUserRequest:
		return v.CreateUser(p)
	case *domain.CreateUserRequest:
		return v.CreateUser(*p)
	case domain.UpdateUserRequest:
		return v.UpdateUser(p)
	case *domain.UpdateUserRequest:
		return v.UpdateUser(*p)
	case domain.LoginRequest:
		return v.Login(p)
	case *domain.LoginRequest:
		return v.Login(*p)
	case domain.ChangePasswordRequest:
		return v.ChangePassword(p)
	case *domain.ChangePasswordRequest:
		return v.ChangePassword(*p)
	case ForecastQuery:
		return v.Forecast(p)
	case *ForecastQuery:
		return v.Forecast(*p)
	default:
		return []string{fmt.Sprintf("unsupported payload type %T", payload)}
	}
}

// Check is Validate reported as an error: a *domain.Error of kind
// validation listing every violation, or nil.
func (v *Validator) Check(payload any) error {
	if violations := v.Validate(payload); len(violations) > 0 {
		return domain.NewValidationError(violations)
	}
	return nil
}

// Register validates a self-service registration.
func (v *Validator) Register(req domain.RegisterRequest) []string {
	violations := v.profile(req.FirstName, req.LastName, req.Email, req.PhoneNumber, req.DateOfBirth)
	return append(violations, check(
		passwordField("Password", req.Password),
		field{
			value:    req.ConfirmPassword,
			required: "Confirm password is required",
			rules:    []rule{{equals(req.Password), "Passwords do not match"}},
		},
	)...)
}

// PasswordStrength reports the strength rules password violates.
func (v *Validator) PasswordStrength(password string) []string {
	return check(passwordField("Password", password))
}

// CreateUser validates a user created through the users endpoints.
func (v *Validator) CreateUser(req domain.CreateUserRequest) []string {
	return v.Register(domain.RegisterRequest(req))
}

// UpdateUser validates a profile replacement.
func (v *Validator) UpdateUser(req domain.UpdateUserRequest) []string {
	return v.profile(req.FirstName, req.LastName, req.Email, req.PhoneNumber, req.DateOfBirth)
}

// Login validates a credentials exchange. Password strength is not checked
// here so that a weak stored password still authenticates.
func (v *Validator) Login(req domain.LoginRequest) []string {
	return check(
		v.emailField(req.Email, false),
		field{value: req.Password, required: "Password is required"},
	)
}

// ChangePassword validates a password replacement.
func (v *Validator) ChangePassword(req domain.ChangePasswordRequest) []string {
	newPassword := passwordField("New password", req.NewPassword)
	if req.CurrentPassword != "" {
		newPassword.rules = append(newPassword.rules, rule{
			differs(req.CurrentPassword),
			"New password must be different from current password",
		})
	}

	return check(
		field{value: req.CurrentPassword, required: "Current password is required"},
		newPassword,
		field{
			value:    req.ConfirmNewPassword,
			required: "Confirm new password is required",
			rules:    []rule{{equals(req.NewPassword), "New passwords do not match"}},
		},
	)
}

// Forecast validates the forecast day count.
func (v *Validator) Forecast(q ForecastQuery) []string {
	if q.Days < MinForecastDays || q.Days > MaxForecastDays {
		return []string{fmt.Sprintf("Days must be between %d and %d", MinForecastDays, MaxForecastDays)}
	}
	return nil
}

func (v *Validator) profile(firstName, lastName, email, phone, dateOfBirth string) []string {
	return check(
		nameField("First name", firstName),
		nameField("Last name", lastName),
		v.emailField(email, true),
		phoneField(phone),
		v.dateOfBirthField(dateOfBirth),
	)
}

func (v *Validator) emailField(value string, limitLength bool) field {
	f := field{
		value:    value,
		required: "Email is required",
		rules: []rule{
			{func(s string) bool { return v.tags.Var(s, "email") == nil }, "Invalid email format"},
		},
	}
	if limitLength {
		f.rules = append(f.rules, rule{maxLen(255), "Email cannot exceed 255 characters"})
	}
	return f
}

func (v *Validator) dateOfBirthField(value string) field {
	today := domain.DateOf(v.now())
	parses := func(s string) bool {
		_, err := domain.ParseDate(s)
		return err == nil
	}
	// the age rules only run on a date that parsed
	withDate := func(fn func(domain.Date) bool) func(string) bool {
		return func(s string) bool {
			d, err := domain.ParseDate(s)
			return err != nil || fn(d)
		}
	}

	return field{
		value:    value,
		required: "Date of birth is required",
		rules: []rule{
			{parses, "Date of birth must be a valid date (YYYY-MM-DD)"},
			{
				withDate(func(d domain.Date) bool { return d.YearsUntil(today) >= MinimumAge }),
				fmt.Sprintf("You must be at least %d years old", MinimumAge),
			},
			{
				withDate(func(d domain.Date) bool { return !d.After(today) }),
				"Date of birth cannot be in the future",
			},
		},
	}
}

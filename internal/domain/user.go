package domain

import "time"

// User — учётная запись покупателя.
type User struct {
	ID       string
	Username string
	Email    string
	// PasswordHash — bcrypt-хэш пароля; сырой пароль нигде не хранится.
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidateInvariants проверяет базовые инварианты учётной записи.
func (u *User) ValidateInvariants() []error {
	var errs []error

	if u.Username == "" {
		errs = append(errs, ErrUsernameRequired)
	}
	if u.Email == "" {
		errs = append(errs, ErrEmailRequired)
	}
	if u.PasswordHash == "" {
		errs = append(errs, ErrPasswordHashRequired)
	}

	return errs
}

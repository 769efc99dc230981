package domain

import "errors"

// ErrUserNotFound indicates that no user exists for the given email.
var ErrUserNotFound = errors.New("user not found")

// User holds read-only reference data for an account holder.
//
// Email is the stable identity key joining users to portfolio entries and
// trades. The card number is stored masked.
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Email      string `json:"email"`
	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"` // MM/YY
	CardType   string `json:"card_type"`
}

// NewUser returns a user with the card number masked down to its last 4 digits.
func NewUser(id int64, name, surname, email, cardNumber, cardExpiry, cardType string) User {
	return User{
		ID:         id,
		Name:       name,
		Surname:    surname,
		Email:      email,
		CardNumber: MaskCardNumber(cardNumber),
		CardExpiry: cardExpiry,
		CardType:   cardType,
	}
}

// MaskCardNumber hides all but the last 4 digits of a card number.
func MaskCardNumber(number string) string {
	if len(number) < 4 {
		return number
	}

	return "**** **** **** " + number[len(number)-4:]
}

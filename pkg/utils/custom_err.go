package utils

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrAccountInactive         = errors.New("account is inactive")
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("user email already exists")
	ErrProtectedUser           = errors.New("protected user account")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrCampPriceMismatch       = errors.New("camps and prices length mismatch")
	ErrInvalidPartnershipCode  = errors.New("invalid or inactive partnership code")
	ErrPartnershipCodeNotFound = errors.New("partnership code not found")
	ErrPartnershipCodeExists   = errors.New("partnership code already exists")
	ErrDatabaseError           = errors.New("database error")
)

package service

import "errors"

var (
	// ErrInvalidDataProvided signals a request that failed validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	// ErrWrongPassword signals a failed credential check.
	ErrWrongPassword = errors.New("wrong password")
	// ErrTokenIsExpiredOrInvalid signals a bearer token that failed
	// validation.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	// ErrYearClosed signals a mutation aimed at a closed fiscal year.
	ErrYearClosed = errors.New("year is closed")
)

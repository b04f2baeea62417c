package domain

import "errors"

var (
	// ErrBankUnreadable is returned when a question bank source cannot be opened or read.
	ErrBankUnreadable = errors.New("question bank unreadable")
	// ErrMalformedRow is returned for a bank row that carries no fields.
	ErrMalformedRow = errors.New("malformed question bank row")
	// ErrInvalidTimeLimit indicates a time-limit row that is not an unsigned integer.
	ErrInvalidTimeLimit = errors.New("invalid time limit")
	// ErrBankNotFound indicates the requested bank id does not exist in the backing store.
	ErrBankNotFound = errors.New("question bank not found")
	// ErrInputClosed is returned when the player's input stream ends mid-quiz.
	ErrInputClosed = errors.New("answer input closed")
)

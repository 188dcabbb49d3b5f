package domain

import "errors"

var (
	// ErrBankNotFound indicates the question bank could not be loaded.
	ErrBankNotFound = errors.New("question bank not found")
	// ErrBankEmpty indicates the bank has no questions to draw from.
	ErrBankEmpty = errors.New("question bank is empty")
	// ErrAttractionNotFound indicates an unknown attraction name.
	ErrAttractionNotFound = errors.New("attraction not found")
	// ErrSpotNotFound indicates an unknown secret spot name.
	ErrSpotNotFound = errors.New("secret spot not found")
)

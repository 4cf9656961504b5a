package domain

import "errors"

var (
	ErrInvalidCard    = errors.New("card must be 4 digits, each 0, 1 or 2")
	ErrInvalidDay     = errors.New("day must be formatted as YYYY-MM-DD")
	ErrSelectionSize  = errors.New("selection must contain exactly 3 cards")
	ErrDuplicateCard  = errors.New("selection contains the same card twice")
	ErrCardNotOnBoard = errors.New("card is not on the board")
)

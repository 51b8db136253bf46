package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrCacheMiss      = errors.New("cache miss")

	// ErrNoMovies and ErrPageOutOfRange both match ErrRecordNotFound.
	ErrNoMovies       = fmt.Errorf("%w: no movies exist", ErrRecordNotFound)
	ErrPageOutOfRange = fmt.Errorf("%w: requested page exceeds available range", ErrRecordNotFound)
)

// Package domain defines domain-level errors for the brand feature.
package domain

import "errors"

var (
	// ErrEmptyImage is returned when the uploaded image has no content.
	ErrEmptyImage = errors.New("image data is empty")

	// ErrImageTooLarge is returned when the uploaded image exceeds the size limit.
	ErrImageTooLarge = errors.New("image too large")

	// ErrDetectorUnavailable is returned while the logo detector is failing fast.
	ErrDetectorUnavailable = errors.New("logo detector unavailable")
)

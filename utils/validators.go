package utils

import (
	"regexp"
)

var validConditions = map[string]bool{
	"Excellent": true,
	"Good":      true,
	"Fair":      true,
	"Poor":      true,
}

// IsValidCondition reports whether the condition is one of the four
// accepted enum values.
func IsValidCondition(condition string) bool {
	return validConditions[condition]
}

// IsValidRating checks the testimonial rating range.
func IsValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

// IsValidYear rejects pre-1900 manufacture years.
func IsValidYear(year int) bool {
	return year >= 1900
}

var phoneRegex = regexp.MustCompile(`^[0-9+\-() ]{10,20}$`)

func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

package validation

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mdnaeem95/purifai-mobile/src/logger"
	"github.com/mdnaeem95/purifai-mobile/src/models"
	"github.com/samber/lo"
)

var ErrValidationFailed = fmt.Errorf("validation failed")

const (
	DefaultMaxStringLength = 255
	MaxMemberNameLength    = 60
)

// --- String Validators ---

// ValidateStringNotEmpty checks if a string is not empty after trimming.
func ValidateStringNotEmpty(s, fieldName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrValidationFailed, fieldName)
	}
	return nil
}

// ValidateStringMaxLength checks if a string's UTF-8 character count is within max bounds.
func ValidateStringMaxLength(s string, maxLength int, fieldName string) error {
	if utf8.RuneCountInString(s) > maxLength {
		return fmt.Errorf("%w: %s exceeds maximum length of %d characters", ErrValidationFailed, fieldName, maxLength)
	}
	return nil
}

// ValidateMemberName cleans a member name and returns the stored form.
func ValidateMemberName(name string) (string, error) {
	clean := CleanLabel(name)
	if err := ValidateStringNotEmpty(clean, "name"); err != nil {
		return "", err
	}
	if err := ValidateStringMaxLength(clean, MaxMemberNameLength, "name"); err != nil {
		return "", err
	}
	return clean, nil
}

// ValidateRelationship accepts any known relationship, self included.
func ValidateRelationship(s string) (models.Relationship, error) {
	r := models.Relationship(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(models.Relationships, r) {
		return "", fmt.Errorf("%w: relationship %q is not one of %v", ErrValidationFailed, s, models.Relationships)
	}
	return r, nil
}

// --- Numeric Validators ---

// ValidatePositive rejects zero, negative and non-finite values.
func ValidatePositive(val float64, fieldName string) error {
	if math.IsNaN(val) || math.IsInf(val, 0) || val <= 0 {
		logger.L.Warn("Non-positive value rejected", "field", fieldName, "value", val)
		return fmt.Errorf("%w: %s must be a positive number", ErrValidationFailed, fieldName)
	}
	return nil
}

// ValidateNisab checks an admin update of the three reference values.
func ValidateNisab(monetary, goldWeight, goldPrice float64) error {
	if err := ValidatePositive(monetary, "monetaryThreshold"); err != nil {
		return err
	}
	if err := ValidatePositive(goldWeight, "goldWeightThreshold"); err != nil {
		return err
	}
	return ValidatePositive(goldPrice, "goldPricePerGram")
}

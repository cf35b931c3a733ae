package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/mdnaeem95/purifai-mobile/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanLabel(t *testing.T) {
	assert.Equal(t, "Aisha", CleanLabel("  <b>Aisha</b>\x00 "))
	assert.Equal(t, "", CleanLabel("<script></script>"))
}

func TestValidateMemberName(t *testing.T) {
	name, err := ValidateMemberName("  Umar ")
	require.NoError(t, err)
	assert.Equal(t, "Umar", name)

	_, err = ValidateMemberName("   ")
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = ValidateMemberName(strings.Repeat("a", MaxMemberNameLength+1))
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestValidateRelationship(t *testing.T) {
	r, err := ValidateRelationship(" Wife ")
	require.NoError(t, err)
	assert.Equal(t, models.RelationshipWife, r)

	_, err = ValidateRelationship("cousin")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestValidateNisab(t *testing.T) {
	assert.NoError(t, ValidateNisab(17230.10, 86, 200.35))

	tests := []struct {
		name   string
		values [3]float64
	}{
		{"zero monetary", [3]float64{0, 86, 200}},
		{"negative weight", [3]float64{17000, -1, 200}},
		{"nan price", [3]float64{17000, 86, math.NaN()}},
		{"infinite monetary", [3]float64{math.Inf(1), 86, 200}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateNisab(tc.values[0], tc.values[1], tc.values[2])
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

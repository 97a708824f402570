package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f1ction1/GeneratorGrafika/internal/domain"
)

func TestValidateShiftCatalog(t *testing.T) {
	ok := []domain.ShiftDefinition{
		{Name: "Poranna", StartHour: 6, Length: 8, Required: 1},
		{Name: "Nocna", StartHour: 22, Length: 8, Required: 1},
	}
	assert.NoError(t, ValidateShiftCatalog(ok))
	assert.NoError(t, ValidateShiftCatalog(nil))

	dup := []domain.ShiftDefinition{
		{Name: "Poranna", StartHour: 6, Length: 8, Required: 1},
		{Name: "Poranna", StartHour: 14, Length: 8, Required: 1},
	}
	err := ValidateShiftCatalog(dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate shift name")
}

func TestRemoveDiacritics(t *testing.T) {
	assert.Equal(t, "Malgorzata.Dabrowska", removeDiacritics("Małgorzata.Dąbrowska"))
	assert.Equal(t, "ZAZOLC", removeDiacritics("ZAŻÓŁĆ"))
}

func TestGenerateRandomOTP(t *testing.T) {
	for i := 0; i < 20; i++ {
		otp := GenerateRandomOTP()
		assert.Len(t, otp, 6)
		for _, r := range otp {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}

func TestGenerateRandomUser(t *testing.T) {
	user, err := GenerateRandomUser("secret", "example.com")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleOwner, user.Role)
	assert.Contains(t, user.Email, "@example.com")
	assert.NotEqual(t, "secret", user.PasswordHash)
}

func TestGenerateRandomEmployee(t *testing.T) {
	emp := GenerateRandomEmployee(42)

	assert.Equal(t, int64(42), emp.EmployerID)
	assert.NotEmpty(t, emp.FirstName)
	assert.Greater(t, emp.EmploymentFraction, 0.0)
	assert.LessOrEqual(t, emp.EmploymentFraction, 1.0)
}

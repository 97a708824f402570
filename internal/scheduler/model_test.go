package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/f1ction1/GeneratorGrafika/internal/domain"
	"github.com/f1ction1/GeneratorGrafika/internal/solver"
)

func TestRestHours(t *testing.T) {
	// day shift 8-16 followed by the same shift next day
	assert.Equal(t, 16, restHours(8, 8, 8))
	// night shift 22-06 followed by a 06:00 start leaves no rest at all
	assert.Equal(t, 0, restHours(22, 8, 6))
	// night shift 22-06 followed by the same shift next day
	assert.Equal(t, 16, restHours(22, 8, 22))
	// back-to-back 24h shifts
	assert.Equal(t, 0, restHours(0, 24, 0))
	// evening 14-22 followed by a morning 06:00 start
	assert.Equal(t, 8, restHours(14, 8, 6))
}

func TestTargetHours(t *testing.T) {
	assert.Equal(t, 168, targetHours(1.0, 168))
	assert.Equal(t, 84, targetHours(0.5, 168))
	// rounds half away from zero
	assert.Equal(t, 127, targetHours(0.75, 169))
}

func TestMaxHoursBound(t *testing.T) {
	shifts := []domain.ShiftDefinition{
		{Name: "Dzienna", StartHour: 8, Length: 8, Required: 1},
		{Name: "Nocna", StartHour: 20, Length: 12, Required: 1},
	}
	assert.Equal(t, 252, maxHoursBound(21, shifts))
}

func TestNewBoundedIntCoversRange(t *testing.T) {
	m := &scheduleModel{pb: solver.NewModel()}

	bits := m.newBoundedInt(200)
	sum := 0
	for _, b := range bits {
		sum += b.coeff
	}
	// powers of two up to the first one exceeding the bound
	assert.GreaterOrEqual(t, sum, 200)
	assert.Equal(t, 1, bits[0].coeff)
	assert.Equal(t, 2, bits[1].coeff)

	// a zero bound still yields one bit so the model stays well formed
	assert.Len(t, m.newBoundedInt(0), 1)
}

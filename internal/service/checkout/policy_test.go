package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikko13/tigercookies-checkout/internal/domain/attendance"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	tod, err := ParseTimeOfDay("18:01")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 18, Minute: 1}, tod)
	assert.Equal(t, "18:01", tod.String())

	for _, invalid := range []string{"", "25:00", "18:61", "6pm", "18.01"} {
		_, err := ParseTimeOfDay(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}

func TestTimeOfDay_On(t *testing.T) {
	t.Parallel()
	date := day(2026, time.March, 2)

	tod := TimeOfDay{Hour: 18, Minute: 1}
	anchored := tod.On(date, manila)
	assert.Equal(t, time.Date(2026, time.March, 2, 18, 1, 0, 0, manila), anchored)

	// DATE columns scan back as UTC midnight; the cutoff must still land in
	// the service timezone on the same wall date.
	utcDate := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, anchored, tod.On(utcDate, manila))
}

func TestParseShiftPolicy(t *testing.T) {
	t.Parallel()

	policy, err := ParseShiftPolicy(map[string]string{
		"Morning":   "18:01",
		"AFTERNOON": "22:01",
		"night":     "22:01",
	})
	require.NoError(t, err)
	assert.Len(t, policy, 3)
	assert.Equal(t, TimeOfDay{Hour: 18, Minute: 1}, policy[attendance.ShiftMorning])
	assert.Equal(t, TimeOfDay{Hour: 22, Minute: 1}, policy[attendance.ShiftAfternoon])

	_, err = ParseShiftPolicy(map[string]string{"graveyard": "02:00"})
	assert.ErrorIs(t, err, attendance.ErrUnknownShift)

	_, err = ParseShiftPolicy(map[string]string{"morning": "18:61"})
	assert.Error(t, err)
}

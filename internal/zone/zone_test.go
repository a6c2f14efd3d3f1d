package zone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustResolve(t *testing.T, id string) *Zone {
	t.Helper()
	z, err := Resolve(id)
	require.NoError(t, err)
	return z
}

func TestResolve_Valid(t *testing.T) {
	for _, id := range []string{
		"Europe/Berlin",
		"America/Costa_Rica",
		"America/New_York",
		"America/Port-au-Prince",
		"America/Argentina/Buenos_Aires",
		"Asia/Kolkata",
		"Etc/GMT+5",
		"UTC",
	} {
		t.Run(id, func(t *testing.T) {
			z, err := Resolve(id)
			require.NoError(t, err)
			assert.Equal(t, id, z.Name())
			assert.Equal(t, id, z.String())
		})
	}
}

func TestResolve_Invalid(t *testing.T) {
	for _, id := range []string{
		"Not/AZone",
		"",
		"Local",
		"europe/berlin",
		"Europe/Berlin ",
		"Europe//Berlin",
		"/Europe/Berlin",
		"../etc/passwd",
	} {
		t.Run(id, func(t *testing.T) {
			z, err := Resolve(id)
			require.Error(t, err)
			assert.Nil(t, z)
			assert.ErrorIs(t, err, ErrInvalidTimeZone)
			assert.Contains(t, err.Error(), `"`+id+`"`)
		})
	}
}

func TestResolve_RejectsHostOnlyFiles(t *testing.T) {
	// These exist in many system zoneinfo trees but are not IANA identifiers.
	for _, id := range []string{
		"posixrules",
		"localtime",
		"right/UTC",
		"posix/Europe/Berlin",
		"zone.tab",
	} {
		t.Run(id, func(t *testing.T) {
			_, err := Resolve(id)
			assert.ErrorIs(t, err, ErrInvalidTimeZone)
		})
	}
}

func TestZone_In(t *testing.T) {
	instant := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		id   string
		want string
	}{
		{"Europe/Berlin", "13:00:00"},
		{"America/Costa_Rica", "06:00:00"},
		{"America/New_York", "07:00:00"},
		{"Asia/Kolkata", "17:30:00"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := mustResolve(t, tt.id).In(instant).Format("15:04:05")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZone_InFollowsDaylightSaving(t *testing.T) {
	summer := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	got := mustResolve(t, "Europe/Berlin").In(summer).Format("15:04:05")
	assert.Equal(t, "14:00:00", got)
}

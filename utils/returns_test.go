package utils

import (
	"testing"
	"time"

	"github.com/Arjun-316/FurniMart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePickupDateWindow(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		name    string
		offset  int // days from today
		wantErr bool
	}{
		{"yesterday rejected", -1, true},
		{"today accepted", 0, false},
		{"mid window accepted", 5, false},
		{"window boundary accepted", models.ReturnWindowDays, false},
		{"past window rejected", models.ReturnWindowDays + 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := now.AddDate(0, 0, tc.offset).Format(PickupDateLayout)
			parsed, err := ValidatePickupDate(raw, now)
			if tc.wantErr {
				require.NotNil(t, err)
				assert.Equal(t, "pickup_date", err.Field)
			} else {
				require.Nil(t, err)
				assert.Equal(t, raw, parsed.Format(PickupDateLayout))
			}
		})
	}
}

func TestValidatePickupDateMissingOrMalformed(t *testing.T) {
	now := time.Now()

	_, err := ValidatePickupDate("", now)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "required")

	_, err = ValidatePickupDate("15/03/2025", now)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "format")
}

func TestValidateReturnReason(t *testing.T) {
	for _, reason := range models.ValidReturnReasons {
		assert.Nil(t, ValidateReturnReason(reason), "reason %s", reason)
	}

	err := ValidateReturnReason("")
	require.NotNil(t, err)
	assert.Equal(t, "reason", err.Field)

	err = ValidateReturnReason("changed_my_mind")
	require.NotNil(t, err)
	assert.Equal(t, "reason", err.Field)
}

package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedDefaults(db))
	require.NoError(t, SeedDefaults(db))

	belts, err := GetBeltRanks(db)
	require.NoError(t, err)
	require.Len(t, belts, 8)
	assert.Equal(t, "White", belts[0].Name)
	assert.Equal(t, "Black", belts[7].Name)

	categories, err := GetAgeCategories(db)
	require.NoError(t, err)
	assert.Len(t, categories, 7)

	admin, err := GetUserByUsername(db, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)

	assert.Equal(t, "500", GetSettingValue(db, "monthly_fee", ""))
	assert.Equal(t, "300", GetSettingValue(db, "yearly_license", ""))
}

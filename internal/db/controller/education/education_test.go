package education

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoFolio/GoFolio/internal/db/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Education{}))

	return db
}

func TestSaveAndGet(t *testing.T) {
	db := testDB(t)

	end := uint(2024)
	e := models.Education{
		Institution: "State University",
		Degree:      "BSc",
		StartYear:   2020,
		EndYear:     &end,
	}
	require.NoError(t, Save(db, &e))

	got, err := GetByID(db, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "State University", got.Institution)
	require.NotNil(t, got.EndYear)
	assert.Equal(t, uint(2024), *got.EndYear)
}

func TestSaveOngoing(t *testing.T) {
	db := testDB(t)

	e := models.Education{Institution: "State University", Degree: "MSc", StartYear: 2025}
	require.NoError(t, Save(db, &e))

	got, err := GetByID(db, e.ID)
	require.NoError(t, err)
	assert.Nil(t, got.EndYear)
}

func TestSaveEndYearBeforeStartYear(t *testing.T) {
	db := testDB(t)

	end := uint(2019)
	e := models.Education{Institution: "State University", Degree: "BSc", StartYear: 2020, EndYear: &end}
	assert.ErrorIs(t, Save(db, &e), models.ErrEndYearBeforeStartYear)
}

func TestGetAllOrdering(t *testing.T) {
	db := testDB(t)

	require.NoError(t, Save(db, &models.Education{Institution: "High School", Degree: "HSC", StartYear: 2016}))
	require.NoError(t, Save(db, &models.Education{Institution: "University", Degree: "BSc", StartYear: 2020}))

	entries, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "University", entries[0].Institution)
	assert.Equal(t, "High School", entries[1].Institution)
}

func TestDelete(t *testing.T) {
	db := testDB(t)

	e := models.Education{Institution: "Gone", Degree: "BSc", StartYear: 2020}
	require.NoError(t, Save(db, &e))
	require.NoError(t, Delete(db, e.ID))

	_, err := GetByID(db, e.ID)
	assert.ErrorIs(t, err, ErrEducationNotFound)

	assert.ErrorIs(t, Delete(db, e.ID), ErrEducationNotFound)
}

func TestNilDB(t *testing.T) {
	_, err := GetAll(nil)
	assert.ErrorIs(t, err, ErrDBNil)
	_, err = GetByID(nil, 1)
	assert.ErrorIs(t, err, ErrDBNil)
	assert.ErrorIs(t, Save(nil, &models.Education{}), ErrDBNil)
	assert.ErrorIs(t, Delete(nil, 1), ErrDBNil)
}

package experience

import (
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&models.Experience{}))

	return db
}

func date(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func TestSaveAndGet(t *testing.T) {
	db := testDB(t)

	e := models.Experience{
		Role:         "Backend Engineer",
		Organization: "Acme Corp",
		StartDate:    date(2021, time.March),
		IsCurrent:    true,
	}
	require.NoError(t, Save(db, &e))

	got, err := GetByID(db, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", got.Role)
	assert.Nil(t, got.EndDate)
}

func TestSaveCurrentClearsEndDate(t *testing.T) {
	db := testDB(t)

	end := date(2023, time.June)
	e := models.Experience{
		Role:         "Intern",
		Organization: "Acme Corp",
		StartDate:    date(2022, time.June),
		EndDate:      &end,
		IsCurrent:    true,
	}
	require.NoError(t, Save(db, &e))
	assert.Nil(t, e.EndDate)
}

func TestSaveEndBeforeStart(t *testing.T) {
	db := testDB(t)

	end := date(2020, time.January)
	e := models.Experience{
		Role:         "Engineer",
		Organization: "Acme Corp",
		StartDate:    date(2021, time.January),
		EndDate:      &end,
	}
	assert.ErrorIs(t, Save(db, &e), models.ErrEndBeforeStart)
}

func TestGetAllOrdering(t *testing.T) {
	db := testDB(t)

	end := date(2020, time.December)
	require.NoError(t, Save(db, &models.Experience{
		Role: "Old Role", Organization: "A", StartDate: date(2019, time.January), EndDate: &end,
	}))
	require.NoError(t, Save(db, &models.Experience{
		Role: "Current Role", Organization: "B", StartDate: date(2018, time.January), IsCurrent: true,
	}))
	require.NoError(t, Save(db, &models.Experience{
		Role: "Recent Role", Organization: "C", StartDate: date(2021, time.January), EndDate: &end,
	}))

	entries, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Current Role", entries[0].Role)
	assert.Equal(t, "Recent Role", entries[1].Role)
	assert.Equal(t, "Old Role", entries[2].Role)
}

func TestDelete(t *testing.T) {
	db := testDB(t)

	e := models.Experience{Role: "Gone", Organization: "A", StartDate: date(2020, time.January), IsCurrent: true}
	require.NoError(t, Save(db, &e))
	require.NoError(t, Delete(db, e.ID))

	_, err := GetByID(db, e.ID)
	assert.ErrorIs(t, err, ErrExperienceNotFound)

	assert.ErrorIs(t, Delete(db, e.ID), ErrExperienceNotFound)
}

func TestNilDB(t *testing.T) {
	_, err := GetAll(nil)
	assert.ErrorIs(t, err, ErrDBNil)
	_, err = GetByID(nil, 1)
	assert.ErrorIs(t, err, ErrDBNil)
	assert.ErrorIs(t, Save(nil, &models.Experience{}), ErrDBNil)
	assert.ErrorIs(t, Delete(nil, 1), ErrDBNil)
}

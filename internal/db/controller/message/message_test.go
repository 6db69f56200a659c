package message

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
	require.NoError(t, db.AutoMigrate(&models.ContactMessage{}))

	return db
}

func TestCreateAndGet(t *testing.T) {
	db := testDB(t)

	m := models.ContactMessage{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "I enjoyed your projects page.",
	}
	require.NoError(t, Create(db, &m))

	got, err := GetByID(db, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.False(t, got.IsRead)
}

func TestCountUnreadAndMarkRead(t *testing.T) {
	db := testDB(t)

	first := models.ContactMessage{Name: "A", Email: "a@example.com", Message: "one"}
	second := models.ContactMessage{Name: "B", Email: "b@example.com", Message: "two"}
	require.NoError(t, Create(db, &first))
	require.NoError(t, Create(db, &second))

	count, err := CountUnread(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, MarkRead(db, first.ID))

	count, err = CountUnread(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := GetByID(db, first.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)
}

func TestMarkReadNotFound(t *testing.T) {
	db := testDB(t)

	assert.ErrorIs(t, MarkRead(db, 42), ErrMessageNotFound)
}

func TestDelete(t *testing.T) {
	db := testDB(t)

	m := models.ContactMessage{Name: "Gone", Email: "g@example.com", Message: "bye"}
	require.NoError(t, Create(db, &m))
	require.NoError(t, Delete(db, m.ID))

	_, err := GetByID(db, m.ID)
	assert.ErrorIs(t, err, ErrMessageNotFound)

	assert.ErrorIs(t, Delete(db, m.ID), ErrMessageNotFound)
}

func TestNilDB(t *testing.T) {
	_, err := GetAll(nil)
	assert.ErrorIs(t, err, ErrDBNil)
	_, err = GetByID(nil, 1)
	assert.ErrorIs(t, err, ErrDBNil)
	_, err = CountUnread(nil)
	assert.ErrorIs(t, err, ErrDBNil)
	assert.ErrorIs(t, Create(nil, &models.ContactMessage{}), ErrDBNil)
	assert.ErrorIs(t, MarkRead(nil, 1), ErrDBNil)
	assert.ErrorIs(t, Delete(nil, 1), ErrDBNil)
}

package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
	assert.True(t, isUniqueConstraintViolation(errors.New("UNIQUE constraint failed: daily_plan_stores.daily_plan_id")))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))

	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(errors.New("FOREIGN KEY constraint failed")))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("timeout")))

	assert.True(t, isNotNullConstraintViolation(errors.New("NOT NULL constraint failed: stores.name")))
}

func TestNewIDIsVersion7(t *testing.T) {
	id := newID()
	assert.Equal(t, 7, int(id.Version()))
	assert.NotEqual(t, id, newID())
}

package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyErr(t *testing.T) {
	assert.False(t, IsDuplicateKeyErr(nil))
	assert.False(t, IsDuplicateKeyErr(errors.New("connection refused")))

	assert.True(t, IsDuplicateKeyErr(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicateKeyErr(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))

	// Driver errors that gorm does not translate.
	assert.True(t, IsDuplicateKeyErr(errors.New(
		`ERROR: duplicate key value violates unique constraint "employees_pkey" (SQLSTATE 23505)`)))
	assert.True(t, IsDuplicateKeyErr(errors.New(
		"Error 1062 (23000): Duplicate entry 'EMP001' for key 'PRIMARY'")))
	assert.True(t, IsDuplicateKeyErr(errors.New(
		"UNIQUE constraint failed: employees.id")))
}

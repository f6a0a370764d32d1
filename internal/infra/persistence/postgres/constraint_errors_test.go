package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	uniquePg := errors.New(`ERROR: duplicate key value violates unique constraint "idx_handshakes_active_pair" (SQLSTATE 23505)`)
	fkPg := errors.New(`ERROR: insert or update on table "moments" violates foreign key constraint "fk_moments_profile" (SQLSTATE 23503)`)
	notNullPg := errors.New(`ERROR: null value in column "name" of relation "profiles" violates not-null constraint (SQLSTATE 23502)`)
	checkPg := errors.New(`ERROR: new row for relation "moments" violates check constraint "chk_moments_duration" (SQLSTATE 23514)`)
	other := errors.New("connection reset by peer")

	assert.True(t, isUniqueConstraintViolation(uniquePg))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "create")))
	assert.False(t, isUniqueConstraintViolation(other))

	assert.True(t, isForeignKeyConstraintViolation(fkPg))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(uniquePg))

	assert.True(t, isNotNullConstraintViolation(notNullPg))
	assert.False(t, isNotNullConstraintViolation(other))

	assert.True(t, isCheckConstraintViolation(checkPg))
	assert.False(t, isCheckConstraintViolation(fkPg))
}

package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationHelpers(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		unique bool
		fk     bool
		check  bool
		null   bool
	}{
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "gorm foreign key", err: errors.Wrap(gorm.ErrForeignKeyViolated, "insert"), fk: true},
		{name: "gorm check", err: gorm.ErrCheckConstraintViolated, check: true},
		{name: "pg unique", err: &pgconn.PgError{Code: "23505"}, unique: true},
		{name: "pg foreign key wrapped", err: fmt.Errorf("create: %w", &pgconn.PgError{Code: "23503"}), fk: true},
		{name: "pg not null", err: &pgconn.PgError{Code: "23502"}, null: true},
		{name: "pg check", err: &pgconn.PgError{Code: "23514"}, check: true},
		{name: "message only", err: errors.New(`ERROR: duplicate key value violates unique constraint "uq_users_email" (SQLSTATE 23505)`), unique: true},
		{name: "unrelated", err: errors.New("connection reset by peer")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.fk, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
			assert.Equal(t, tt.null, isNotNullConstraintViolation(tt.err))
		})
	}
}

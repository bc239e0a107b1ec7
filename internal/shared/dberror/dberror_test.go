package dberror_test

import (
	"errors"
	"fmt"
	"testing"

	"go-hrms/internal/shared/dberror"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"postgres 23505", &pgconn.PgError{Code: "23505", ConstraintName: "uq_departments_name"}, true},
		{"wrapped postgres", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"postgres other code", &pgconn.PgError{Code: "23503"}, false},
		{"mysql 1062", &mysql.MySQLError{Number: 1062}, true},
		{"message fallback", errors.New("ERROR: duplicate key value violates unique constraint"), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dberror.IsUniqueViolation(tc.err))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrForeignKeyViolated, true},
		{"postgres 23503", &pgconn.PgError{Code: "23503"}, true},
		{"mysql 1452", &mysql.MySQLError{Number: 1452}, true},
		{"unique is not fk", &pgconn.PgError{Code: "23505"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dberror.IsForeignKeyViolation(tc.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, dberror.IsNotFound(fmt.Errorf("find: %w", gorm.ErrRecordNotFound)))
	assert.False(t, dberror.IsNotFound(errors.New("boom")))
}

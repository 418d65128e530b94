package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"io/fs"
	"log/slog"
	"testing"
	"time"

	"taskman/config"
	"taskman/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.Migrations, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_tasks.sql"}, files)
}

func TestRunMigrations(t *testing.T) {
	original := gooseUpContext
	t.Cleanup(func() { gooseUpContext = original })

	var gotDir string
	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		gotDir = dir

		return nil
	}
	require.NoError(t, RunMigrations(context.Background(), nil))
	assert.Equal(t, ".", gotDir)

	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("relation already exists")
	}
	err := RunMigrations(context.Background(), nil)
	assert.ErrorContains(t, err, "failed to apply migrations")
}

func TestGormSlogLogger_DropsParams(t *testing.T) {
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{})
	filter, ok := l.(interface {
		ParamsFilter(ctx context.Context, sql string, params ...any) (string, []any)
	})
	require.True(t, ok)

	sqlText, params := filter.ParamsFilter(context.Background(), "UPDATE users SET password_hash=$1", "secret-hash")
	assert.Equal(t, "UPDATE users SET password_hash=$1", sqlText)
	assert.Nil(t, params)
}

func TestGormSlogLogger_LevelFollowsDebug(t *testing.T) {
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	quiet := newGormSlogLogger(discard, &config.Config{}).(*gormSlogLogger)
	assert.Equal(t, logger.Warn, quiet.level)

	cfg := &config.Config{}
	cfg.Env.Debug = true
	verbose := newGormSlogLogger(discard, cfg).(*gormSlogLogger)
	assert.Equal(t, logger.Info, verbose.level)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return "SELECT * FROM users WHERE email = $1", 1 }

	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantNot string
	}{
		{name: "fast query is quiet outside debug", begin: time.Now(), wantNot: "GORM"},
		{name: "fast query is logged in debug", debug: true, begin: time.Now(), want: `msg="GORM query"`},
		{name: "slow query", begin: time.Now().Add(-time.Second), want: "GORM slow query"},
		{name: "failure", begin: time.Now(), err: errors.New("deadlock detected"), want: "deadlock detected"},
		{name: "missing record is not a failure", begin: time.Now(), err: gorm.ErrRecordNotFound, wantNot: "GORM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

			l.Trace(context.Background(), tt.begin, query, tt.err)

			if tt.want != "" {
				assert.Contains(t, buf.String(), tt.want)
				assert.Contains(t, buf.String(), "db.op=SELECT")
			}
			if tt.wantNot != "" {
				assert.NotContains(t, buf.String(), tt.wantNot)
			}
		})
	}
}

func TestStatementKind(t *testing.T) {
	assert.Equal(t, "SELECT", statementKind("  select * from tasks"))
	assert.Equal(t, "INSERT", statementKind("INSERT INTO users (id) VALUES ($1)"))
	assert.Equal(t, "", statementKind(""))
}

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, _, waited := poolWait(prev, prev)
	assert.False(t, waited)

	level, attrs, waited := poolWait(prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond})
	assert.True(t, waited)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Equal(t, "avg_wait", attrs[2].Key)
	assert.Equal(t, 5*time.Millisecond, attrs[2].Value.Duration())

	level, _, _ = poolWait(prev, sql.DBStats{WaitCount: 11, WaitDuration: 2 * time.Second})
	assert.Equal(t, slog.LevelWarn, level)
}

package program

import (
	"errors"
	"log/slog"

	"github.com/mlahtinen/liftplan/internal/sqlite"
)

// ErrNotFound is returned when a requested aggregate does not exist.
var ErrNotFound = errors.New("not found")

// baseRepository carries the shared database handle.
type baseRepository struct {
	db *sqlite.Database
}

func newBaseRepository(db *sqlite.Database) baseRepository {
	return baseRepository{db: db}
}

// repository groups the per-aggregate repositories behind one handle.
type repository struct {
	exercises *sqliteExerciseRepository
	profiles  *sqliteProfileRepository
	programs  *sqliteProgramRepository
}

// repositoryFactory wires repositories to a database.
type repositoryFactory struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newRepositoryFactory(db *sqlite.Database, logger *slog.Logger) *repositoryFactory {
	return &repositoryFactory{db: db, logger: logger}
}

func (f *repositoryFactory) newRepository() *repository {
	return &repository{
		exercises: newSQLiteExerciseRepository(f.db),
		profiles:  newSQLiteProfileRepository(f.db),
		programs:  newSQLiteProgramRepository(f.db),
	}
}

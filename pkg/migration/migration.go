package migration

import (
	"errors"
	"fmt"
	"path"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

const migrationsDir = "migrations"

func newMigrate(sourceDir string, databaseURL string) *migrate.Migrate {
	m, err := migrate.New("file://"+sourceDir, databaseURL)
	if err != nil {
		panic(err)
	}
	return m
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand builds the up / down / force sub commands over the migrations directory
func MigrateCommand(databaseURL string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "migrate",
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply every pending migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				m := newMigrate(migrationsDir, databaseURL)
				defer func() { _, _ = m.Close() }()
				return ignoreNoChange(m.Up())
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "rollback n migrations, default 1",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps := 1
				if len(args) > 0 {
					n, err := strconv.Atoi(args[0])
					if err != nil {
						return fmt.Errorf("invalid steps: %w", err)
					}
					steps = n
				}
				m := newMigrate(migrationsDir, databaseURL)
				defer func() { _, _ = m.Close() }()
				return ignoreNoChange(m.Steps(-steps))
			},
		},
		&cobra.Command{
			Use:   "force <version>",
			Short: "set the version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid version: %w", err)
				}
				m := newMigrate(migrationsDir, databaseURL)
				defer func() { _, _ = m.Close() }()
				return m.Force(version)
			},
		},
	)
	return rootCmd
}

// MigrateUpForTesting drops everything then applies all migrations under rootDir
func MigrateUpForTesting(rootDir string, databaseURL string) {
	sourceDir := path.Join(rootDir, migrationsDir)

	dropper := newMigrate(sourceDir, databaseURL)
	if err := dropper.Drop(); err != nil {
		panic(err)
	}
	_, _ = dropper.Close()

	// Drop removes the schema_migrations table as well, a new instance is needed
	m := newMigrate(sourceDir, databaseURL)
	defer func() { _, _ = m.Close() }()

	if err := ignoreNoChange(m.Up()); err != nil {
		panic(err)
	}
}

package main

import (
	"github.com/urfave/cli/v2"

	"github.com/petpal/petpal/db/migrations"
	"github.com/petpal/petpal/pkg/pg"
)

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply pending database migrations",
		Flags: []cli.Flag{envFileFlag()},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c.StringSlice("env-file"))
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			if !cfg.DB.Enabled() {
				return pg.ErrEmptyConnectionString
			}
			pool, err := pg.Connect(c.Context, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := pg.Migrate(c.Context, pool, migrations.FS, cfg.DB, log); err != nil {
				return err
			}
			log.InfoContext(c.Context, "migrations applied")
			return nil
		},
	}
}

func envFileFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    "env-file",
		Usage:   "dotenv files to load before reading the environment",
		EnvVars: []string{"PETPAL_ENV_FILES"},
	}
}

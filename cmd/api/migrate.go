package main

import (
	"database/sql"
	"errors"
	"log"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sql.Open("postgres", dbConfig().ConnString())
		if err != nil {
			return errors.New("opening database error: " + err.Error())
		}
		defer db.Close()
		if err = goose.SetDialect("postgres"); err != nil {
			return err
		}
		dir := cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")
		if err = goose.Up(db, dir); err != nil {
			return errors.New("applying migrations error: " + err.Error())
		}
		log.Println("migrations applied from " + dir)
		return nil
	},
}

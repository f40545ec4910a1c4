package main

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

func (a *App) initDB() error {
	db, err := sqlx.Connect("postgres", a.Config.DB.DSN())
	if err != nil {
		return err
	}

	a.DB = db

	return nil
}

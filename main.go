package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	GitCommit string
	GitTag    string
	BuildTime string
)

//	@title			Bookshop API
//	@version		1.0
//	@description	CRUD service for books and catalogs.
//	@BasePath		/
func main() {
	app := &cli.App{
		Name:    "bookshop",
		Usage:   "books and catalogs CRUD api",
		Version: GitTag,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "./config.yml",
				Usage:   "path of the yaml configuration file",
			},
			&cli.StringFlag{
				Name:  "env",
				Value: "./config.env",
				Usage: "path of the optional env file",
			},
		},
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the api server",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the books table",
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (*Config, error) {
	return LoadAndInitConfigs(c.String("config"), c.String("env"), GitCommit, GitTag, BuildTime)
}

func serve(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("application failed to initialized: %w", err)
	}
	app, err := NewApp(config)
	if err != nil {
		return fmt.Errorf("application failed to initialized: %w", err)
	}
	if err = app.Run(); err != nil {
		return fmt.Errorf("application exited. check logs for more details: %w", err)
	}
	return nil
}

func migrate(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	if config.Storage.Driver != PostgresDriver {
		fmt.Printf("Nothing to migrate for %s storage\n", config.Storage.Driver)
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	db, err := GetPostgresClient(config, logger)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err = MigratePostgres(db); err != nil {
		return err
	}
	fmt.Println("Books table migrated")
	return nil
}

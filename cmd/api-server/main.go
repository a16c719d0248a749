package main

import (
	"KMate/config"
	"KMate/pkg/database"
	"KMate/pkg/log"
	"KMate/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "K-Mate travel info api",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "auto-migrate",
						Usage: "sync table schema before serving",
						Value: true,
					},
				},
				Action: func(ctx *cli.Context) error {
					appProvider := InitServer(cfg)
					if ctx.Bool("auto-migrate") {
						if err := database.Migrate(ctx.Context, appProvider.DB); err != nil {
							return err
						}
					}
					return server.Run(ctx, appProvider.App)
				},
			},
			{
				Name:  "migrate",
				Usage: "sync table schema and exit",
				Action: func(ctx *cli.Context) error {
					db := database.NewDB(cfg)
					if err := database.Migrate(ctx.Context, db); err != nil {
						return err
					}
					log.L.Info("migrate done")
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/weeklydigest/internal"
	pkgconfig "github.com/starford/weeklydigest/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if cmd.Args().Len() > 1 {
		return fmt.Errorf("expected at most one argument, got %d", cmd.Args().Len())
	}
	if arg := cmd.Args().First(); arg != "" {
		days, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid number of days %q: %w", arg, err)
		}
		cfg.Digest.Days = days
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
		internal.WithDryRun(cmd.Bool("dry-run")),
		internal.WithSkipBuild(cmd.Bool("no-build")),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("digest: %w", err)
	}

	return nil
}

func watch(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := internal.Watch(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	return nil
}

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to config file; defaults apply when it does not exist",
		DefaultText: "config/config.yaml",
		Value:       "config/config.yaml",
		Sources:     cli.EnvVars("APP_CONFIG_FILE"),
	}
}

func main() {

	cmd := &cli.Command{
		Name:      "digest",
		Usage:     "Roll the posts of the past days into a weekly digest post and rebuild the site",
		ArgsUsage: "[days]",
		Action:    run,
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the digest instead of writing it; the site is not rebuilt",
			},
			&cli.BoolFlag{
				Name:  "no-build",
				Usage: "Write the digest but do not rebuild the site",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "watch",
				Usage:  "Rebuild the site whenever a post changes",
				Action: watch,
				Flags:  []cli.Flag{configFlag()},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

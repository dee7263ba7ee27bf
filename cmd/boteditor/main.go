package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vgau/boteditor/app"
	"github.com/vgau/boteditor/internal/config"
	"github.com/vgau/boteditor/internal/database"
	"github.com/vgau/boteditor/internal/database/repository"
	"github.com/vgau/boteditor/internal/logging"
	"github.com/vgau/boteditor/internal/menugraph"
	"github.com/vgau/boteditor/internal/service"
	"github.com/vgau/boteditor/internal/testdata"
)

func main() {
	root := &cobra.Command{
		Use:          "boteditor",
		Short:        "Admin shell for the bot menu editor",
		Long:         "boteditor edits the menu, documents and FAQ served by the Telegram bot and exports them as bot_data.json.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup()
			if err != nil {
				return err
			}
			defer env.Close()

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			deps := app.Deps{
				Config: env.cfg,
				Loader: menugraph.Loader{
					Store:    env.repo,
					SeedPath: env.cfg.Data.BotDataPath,
					Logger:   env.log,
				},
				Exporter: env.exporter(),
				Logger:   env.log,
				Context:  ctx,
			}
			env.log.WithField("db", env.cfg.Database.Path).Info("starting admin shell")
			p := tea.NewProgram(app.NewModel(deps), tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored menu to the export directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("format")
			format, err := service.ParseFormat(raw)
			if err != nil {
				return err
			}
			env, err := setup()
			if err != nil {
				return err
			}
			defer env.Close()

			exp := env.exporter()
			if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
				exp.Dir = dir
			}
			path, err := exp.Export(cmd.Context(), format)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			env.log.WithFields(logrus.Fields{"format": format, "path": path}).Info("export written")
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	exportCmd.Flags().String("format", "json", "Export format: json or csv")
	exportCmd.Flags().String("dir", "", "Directory to write to (overrides export.dir)")

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the stored menu with a bot_data.json file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup()
			if err != nil {
				return err
			}
			defer env.Close()

			imp := &service.Importer{Store: env.repo}
			n, err := imp.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			env.log.WithFields(logrus.Fields{"file": args[0], "nodes": n}).Info("bot data imported")
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d nodes from %s\n", n, args[0])
			return nil
		},
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Replace the stored menu with a generated demo menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup()
			if err != nil {
				return err
			}
			defer env.Close()

			seed, _ := cmd.Flags().GetInt64("seed")
			n, err := testdata.Seed(cmd.Context(), env.repo, seed)
			if err != nil {
				return fmt.Errorf("seed demo: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored demo menu with %d nodes\n", n)
			return nil
		},
	}
	demoCmd.Flags().Int64("seed", 1, "Random seed for document counts")

	root.AddCommand(exportCmd, importCmd, demoCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

type environment struct {
	cfg     config.Config
	log     *logrus.Logger
	logFile io.Closer
	db      *sql.DB
	repo    *repository.GraphRepo
}

// setup loads config, opens the log file and a migrated database.
func setup() (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	logger, logFile, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, err
	}
	env := &environment{cfg: cfg, log: logger, logFile: logFile}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		env.Close()
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		env.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("open db: %w", err)
	}
	env.db = db
	env.repo = repository.NewGraphRepo(db)
	return env, nil
}

func (e *environment) exporter() *service.Exporter {
	return &service.Exporter{Store: e.repo, Dir: e.cfg.Export.Dir}
}

func (e *environment) Close() {
	if e.db != nil {
		_ = e.db.Close()
	}
	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}

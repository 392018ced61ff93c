package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/maze/internal/config"
	"github.com/example/maze/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize maze configuration and run history",
		Long: `Write .maze/config.json in the current directory (if missing) and create the
run history database with the required schema.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initRunE(os.Getwd, cmd.OutOrStdout())
		},
	}
}

// initRunE is the testable body of the init command.
func initRunE(getwd func() (string, error), out io.Writer) error {
	cwd, err := getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	if _, err := config.LoadConfig(cwd); errors.Is(err, os.ErrNotExist) {
		if err := config.SaveConfig(cwd, config.Default()); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Config written to %s\n", config.Path(cwd))
	} else if err != nil {
		return err
	} else {
		fmt.Fprintf(out, "Config already exists at %s\n", config.Path(cwd))
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}
	if cfg.DisableHistory {
		fmt.Fprintln(out, "Run history is disabled, skipping database.")
		return nil
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		if dbPath, err = db.GetDBPath(); err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
	}

	conn, err := db.Open(dbPath)
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Fprintf(out, "✓ Database initialized at %s\n", dbPath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  maze --columns 10 --rows 10")
	fmt.Fprintln(out, "  maze runs list")

	return nil
}

package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/josephlewis42/minish/commands"
	"github.com/josephlewis42/minish/core/config"
	"github.com/josephlewis42/minish/core/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const version = "0.0.1"

var (
	cfgPath string

	// exitCode is the status the process exits with after the shell stops.
	exitCode int
)

func loadConfig(fsys afero.Fs) (*config.Configuration, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}

	configuration, err := config.Load(fsys, cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

// openEventLog returns a recorder for a new session and a function to close
// the underlying file.
func openEventLog(cfg *config.Configuration) (logger.EventRecorder, io.Closer, error) {
	if !cfg.HasEventLog() {
		return logger.NopEventRecorder{}, io.NopCloser(nil), nil
	}

	fd, err := cfg.OpenEventLog()
	if err != nil {
		return nil, nil, err
	}

	return logger.NewJsonLinesLogRecorder(fd).NewSession(), fd, nil
}

// rootCmd runs the shell when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "minish [SCRIPT [ARG...]]",
	Short: "A minimal command shell",
	Long: `A minimal command shell.

With no arguments, minish reads commands interactively. Given a SCRIPT, it
runs each line of the file with the remaining arguments bound to the shell
variables 0, 1, ...`,
	Version: version,
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		fsys := afero.NewOsFs()
		cfg, err := loadConfig(fsys)
		if err != nil {
			return err
		}

		events, eventLog, err := openEventLog(cfg)
		if err != nil {
			return err
		}
		defer eventLog.Close()

		sh := commands.NewShell(commands.Options{
			Fs:     fsys,
			Config: cfg,
			Events: events,
			Stdin:  cmd.InOrStdin(),
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		})

		if len(args) > 0 {
			exitCode = sh.RunScript(args[0], args[1:])
			return nil
		}

		input, err := sh.NewReadline()
		if err != nil {
			return err
		}
		defer input.Close()

		exitCode = sh.RunInteractive(input)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func init() {
	rootCmd.SetVersionTemplate("minish v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config directory, built-in defaults are used if empty")

	// Flags after the script name belong to the script.
	rootCmd.Flags().SetInterspersed(false)
}

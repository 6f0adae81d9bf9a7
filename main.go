// typeshed2spec converts Python type stubs into summary-spec XML documents.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/phobologic/typeshed2spec/internal/batch"
	"github.com/phobologic/typeshed2spec/internal/config"
	"github.com/phobologic/typeshed2spec/internal/logger"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *config.Config
	log        *zap.SugaredLogger
	stdout     io.Writer
	stderr     io.Writer
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"log-json":          "log.json",
	"log-level":         "log.level",
	"output-directory":  "output_directory",
	"ext":               "extensions",
	"respect-gitignore": "respect_gitignore",
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.New(), stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "typeshed2spec",
		Short: "Convert Python type stubs into summary-spec XML",
		Long: `typeshed2spec reads Python type stub files (.pyi) and writes, for each one,
a summary-spec XML document describing the module as synthetic classes whose
methods construct the declared return and field types.

Examples:
  typeshed2spec convert stdlib/ -o specs/     # Convert every stub under stdlib/
  typeshed2spec convert json.pyi              # Write ./json.xml
  typeshed2spec check stdlib/ -o specs/       # Fail if specs/ is out of date`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("typeshed2spec {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	flags.Bool("log-json", false, "emit JSON logs")
	flags.String("log-level", "info", "minimum log level: debug, info, warn, error")

	cmd.AddCommand(newConvertCmd(a), newCheckCmd(a))
	return cmd
}

// setup binds the executing command's flags, loads configuration and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return err
	}
	log, err := logger.New(logger.Options{JSON: cfg.Log.JSON, Level: cfg.Log.Level}, a.stderr)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

// addBatchFlags registers the flags shared by convert and check.
func addBatchFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("output-directory", "o", ".", "directory the summaries are written to")
	flags.StringSlice("ext", []string{".pyi", ".py"}, "stub file extensions to convert in directories")
	flags.Bool("respect-gitignore", true, "skip files ignored by .gitignore")
}

func (a *app) batchOptions(input string) batch.Options {
	return batch.Options{
		Input:            input,
		OutputDir:        a.cfg.OutputDirectory,
		Extensions:       a.cfg.Extensions,
		RespectGitignore: a.cfg.RespectGitignore,
		Logger:           logger.Component(a.log, "batch"),
	}
}

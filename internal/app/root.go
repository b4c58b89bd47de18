package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/andyballingall/rust-code-uploader/internal/config"
	"github.com/andyballingall/rust-code-uploader/internal/fsh"
	"github.com/andyballingall/rust-code-uploader/internal/rustfmt"
	"github.com/andyballingall/rust-code-uploader/internal/validator"
)

// Version is the current version of rcu, set at build time.
var Version = "dev"

var LongDescription = `
rcu writes a piece of Rust code to a file and formats it in place with rustfmt.
The rustfmt executable is located through rustup, so the formatter matches the
active toolchain.

If the target is a directory, the code is written to main.rs inside it.
The target must already exist; nothing is created on the way to it.
`

const example = `  rcu -t src/lib.rs -c 'pub fn add(a:i32,b:i32)->i32{a+b}'
  rcu -t ./scratch --code "$(cat snippet.rs)" --rust-version 2021
  rcu -t src/main.rs -c 'fn main(){}' --rustfmt-config ./rustfmt.toml -o json`

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(lazy *LazyManager, ll *slog.LevelVar, stdout, stderr io.Writer, env fsh.EnvProvider) *cobra.Command {
	var debug bool
	var noColour bool
	target := newPlaceholderValue("FILE")
	code := newPlaceholderValue("CODE")
	rustfmtConfig := newPlaceholderValue("FILE")
	rustVersion := newPlaceholderValue("VERSION")
	outputVal := formatValue("text")

	rootCmd := &cobra.Command{
		Use:     "rcu -t <target> -c <code>",
		Short:   "Upload Rust code to a file and format it with rustfmt",
		Long:    LongDescription,
		Example: example,
		Version: Version,
		Args:    cobra.NoArgs,
		// Usage is shown for flag errors only; RunE silences it for runtime failures.
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if debug {
				ll.Set(slog.LevelDebug)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			// Skip if already initialised (e.g., in tests)
			if !lazy.HasInner() {
				closer, err := hydrate(lazy, ll, stdout, stderr, env)
				if closer != nil {
					defer closer.Close()
				}
				if err != nil {
					return err
				}
			}

			opts := config.NewOptions(target.String(), code.String(), rustfmtConfig.String(), rustVersion.String())
			return lazy.Upload(cmd.Context(), opts, string(outputVal), !noColour)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.VarP(target, "target", "t", "The file or directory to upload the code to")
	flags.VarP(code, "code", "c", "The code to be uploaded")
	flags.Var(rustfmtConfig, "rustfmt-config", "Path to a rustfmt configuration file")
	flags.Var(rustVersion, "rust-version", "The Rust edition to use for formatting")
	flags.VarP(&outputVal, "output", "o", "Output format (text, json)")
	_ = rootCmd.MarkFlagRequired("target")
	_ = rootCmd.MarkFlagRequired("code")

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolour", false, "Disable colour in output")
	// Support alternate spellings
	rootCmd.PersistentFlags().BoolVar(&noColour, "nocolor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColor", false, "")
	rootCmd.PersistentFlags().BoolVar(&noColour, "noColour", false, "")
	_ = rootCmd.PersistentFlags().MarkHidden("nocolor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColor")
	_ = rootCmd.PersistentFlags().MarkHidden("noColour")

	return rootCmd
}

// hydrate builds the real dependencies and installs a CLIManager in lazy.
// The returned closer, if any, belongs to the log file.
func hydrate(lazy *LazyManager, ll *slog.LevelVar, stdout, stderr io.Writer, env fsh.EnvProvider) (io.Closer, error) {
	// 1. Setup Logging
	logger, closer, err := setupLogger(stderr, ll, env)
	if err != nil {
		logger.Warn("logging to file disabled", "error", err)
	}

	// 2. Build Dependencies
	paths := fsh.NewPathResolver()
	workDir, err := paths.Abs(".")
	if err != nil {
		return closer, err
	}

	settings, err := config.LoadSettings(env, workDir, validator.NewSanthoshCompiler())
	if err != nil {
		return closer, fmt.Errorf("settings initialisation failed: %w", err)
	}
	if settings.Source != "" {
		logger.Debug("loaded settings", "path", settings.Source)
	}

	resolver := rustfmt.NewResolver(settings.Formatter, env, paths)
	formatter := rustfmt.NewFormatter(settings.Formatter.Name, resolver, os.Stdin, stdout, stderr)

	// 3. Hydrate the Lazy Wrapper
	lazy.SetInner(NewCLIManager(logger, settings, formatter, stdout))
	return closer, nil
}

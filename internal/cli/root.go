package cli

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vitestarter/vitestarter/internal/version"
	"github.com/vitestarter/vitestarter/pkg/catalog"
	"github.com/vitestarter/vitestarter/pkg/config"
	"github.com/vitestarter/vitestarter/pkg/errors"
	"github.com/vitestarter/vitestarter/pkg/filesystem"
	"github.com/vitestarter/vitestarter/pkg/installer"
	"github.com/vitestarter/vitestarter/pkg/logging"
	"github.com/vitestarter/vitestarter/pkg/output"
	"github.com/vitestarter/vitestarter/pkg/selection"
	"github.com/vitestarter/vitestarter/pkg/setup"
	"github.com/vitestarter/vitestarter/pkg/types"
	"github.com/vitestarter/vitestarter/pkg/ui/prompt"
)

// env is what the commands touch outside the process
type env struct {
	fs     types.FS
	runner installer.Runner
}

// globalOptions are the flags shared by every command
type globalOptions struct {
	verbosity   int
	dir         string
	format      string
	skipInstall bool
}

// runContext is the resolved state a command works with
type runContext struct {
	dir     string
	cfg     *config.Config
	printer *output.Printer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(env{
		fs:     filesystem.NewOS(),
		runner: installer.NewExecRunner(),
	})
}

func newRootCmd(e env) *cobra.Command {
	initTemplateFormatting()

	var (
		opts         globalOptions
		all          bool
		featureFlags = make(map[string]*bool)
	)

	cat, catErr := catalog.Default()

	rootCmd := &cobra.Command{
		Use:     "vitestarter",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return catErr
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				logger := logging.GetLogger("cli")
				logger.Debug().Strs("args", args).Msg("Ignoring positional arguments")
			}

			rc, err := newRunContext(cmd, e, opts)
			if err != nil {
				return err
			}

			flags := selection.Flags{All: all, Features: make(map[string]bool, len(featureFlags))}
			for name, set := range featureFlags {
				flags.Features[name] = *set
			}

			_, err = setup.Run(cmd.Context(), setup.Options{
				Dir:          rc.dir,
				ManifestPath: rc.cfg.ManifestPath(rc.dir),
				Features:     cat.All(),
				Flags:        flags,
				Prompter:     prompt.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout()),
				FS:           e.fs,
				Installer: installer.New(e.runner, installer.Options{
					Command:  rc.cfg.Install.Command,
					Args:     rc.cfg.Install.Args,
					Dir:      rc.dir,
					Disabled: !rc.cfg.Install.Enabled || opts.skipInstall,
				}),
				Printer: rc.printer,
			})
			return err
		},
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.dir, "dir", ".", MsgFlagDir)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", MsgFlagFormat)
	rootCmd.PersistentFlags().BoolVar(&opts.skipInstall, "skip-install", false, MsgFlagSkipInstall)

	// Selection flags, one per catalog feature
	rootCmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	if catErr == nil {
		for _, f := range cat.Features {
			featureFlags[f.Name] = rootCmd.Flags().Bool(f.Name, false, fmt.Sprintf(MsgFlagFeature, f.Description))
		}
	}

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(cat))
	rootCmd.AddCommand(newInitCmd(e, cat, &opts))
	rootCmd.AddCommand(newConfigCmd(e, &opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// newRunContext resolves the project directory, configuration and printer
func newRunContext(cmd *cobra.Command, e env, opts globalOptions) (*runContext, error) {
	dir, err := filepath.Abs(opts.dir)
	if err != nil {
		return nil, fmt.Errorf(MsgErrResolveDir, err)
	}
	if info, err := e.fs.Stat(dir); err == nil && !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, MsgErrNotDir, dir).WithDetail("dir", dir)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	formatName := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		formatName = opts.format
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("cli")
	logger.Debug().
		Str("dir", dir).
		Str("config", cfg.String()).
		Msg("Run context ready")

	return &runContext{
		dir:     dir,
		cfg:     cfg,
		printer: output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), format),
	}, nil
}

package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vitestarter/vitestarter/internal/version"
	"github.com/vitestarter/vitestarter/pkg/catalog"
	"github.com/vitestarter/vitestarter/pkg/config"
	"github.com/vitestarter/vitestarter/pkg/errors"
	"github.com/vitestarter/vitestarter/pkg/setup"
	"github.com/vitestarter/vitestarter/pkg/types"
)

func newListCmd(cat *catalog.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "list [feature...]",
		Short: MsgListShort,
		Long:  MsgListLong,
		Args:  cobra.ArbitraryArgs,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return cat.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			features, err := lookupFeatures(cat, args)
			if err != nil {
				return err
			}
			listFeatures(cmd.OutOrStdout(), features)
			return nil
		},
	}
}

// lookupFeatures returns the named features in the order given, or the
// whole catalog when no names are given
func lookupFeatures(cat *catalog.Catalog, names []string) (types.Selection, error) {
	if len(names) == 0 {
		return cat.All(), nil
	}

	features := make(types.Selection, 0, len(names))
	for _, name := range names {
		f, ok := cat.Lookup(name)
		if !ok {
			return nil, errors.Newf(errors.ErrFeatureNotFound, MsgErrUnknownFeature, name, strings.Join(cat.Names(), ", ")).
				WithDetail("feature", name)
		}
		features = append(features, f)
	}
	return features, nil
}

// listFeatures writes every feature with the flag that selects it
func listFeatures(w io.Writer, features types.Selection) {
	width := 0
	for _, f := range features {
		if n := len(f.Name) + 2; n > width {
			width = n
		}
	}
	indent := strings.Repeat(" ", width+4)

	fmt.Fprintln(w, MsgAvailableFeatures)
	for _, f := range features {
		fmt.Fprintf(w, "\n  %-*s  %s\n", width, "--"+f.Name, f.Description)
		if len(f.DevDependencies) > 0 {
			fmt.Fprintf(w, "%s%s: %s\n", indent, MsgListDevDeps, strings.Join(f.DevDependencies, ", "))
		}
		if len(f.Scripts) > 0 {
			fmt.Fprintf(w, "%s%s: %s\n", indent, MsgListScripts, strings.Join(f.ScriptNames(), ", "))
		}
		if len(f.Files) > 0 {
			fmt.Fprintf(w, "%s%s: %s\n", indent, MsgListFiles, strings.Join(f.FilePaths(), ", "))
		}
	}
}

func newInitCmd(e env, cat *catalog.Catalog, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: MsgInitShort,
		Long:  MsgInitLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := newRunContext(cmd, e, *opts)
			if err != nil {
				return err
			}

			_, err = setup.Init(setup.InitOptions{
				Dir:          rc.dir,
				ManifestPath: rc.cfg.ManifestPath(rc.dir),
				App:          cat.App,
				FS:           e.fs,
				Printer:      rc.printer,
			})
			return err
		},
	}
}

func newConfigCmd(e env, opts *globalOptions) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				fmt.Fprint(out, config.DefaultsContent())
				return nil
			}

			rc, err := newRunContext(cmd, e, *opts)
			if err != nil {
				return err
			}
			data, err := rc.cfg.TOML()
			if err != nil {
				return err
			}

			fmt.Fprintf(out, MsgConfigSources, config.UserConfigPath(), filepath.Join(rc.dir, config.ProjectFile))
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "bash":
				err = cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				err = cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				err = cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				err = cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			if err != nil {
				log.Error().Err(err).Str("shell", args[0]).Msg("Failed to generate completion")
			}
			return err
		},
	}
}

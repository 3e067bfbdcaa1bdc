package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubefetch/tubefetch/color"
	"github.com/tubefetch/tubefetch/config"
	"github.com/tubefetch/tubefetch/constant"
	"github.com/tubefetch/tubefetch/style"
	"github.com/tubefetch/tubefetch/where"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envVar is one environment variable and the setting it overrides.
type envVar struct {
	Name  string
	Field mo.Option[config.Field]
}

// envCmd lists the environment variables understood by the application, grouped by configuration section.
var envCmd = &cobra.Command{
	Use:   "env [section]",
	Short: "Display the supported environment variables by configuration section",
	Long: `Display the supported environment variables grouped by configuration section.
Unset variables show the value in effect and whether it comes from the config file or the defaults.`,
	Example: "  " + constant.App + " env fetch\n" +
		"  " + constant.App + " env network --set-only",
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return append(config.Sections(), "paths"), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		sections := append(config.Sections(), "paths")
		if len(args) == 1 {
			if !slices.Contains(sections, args[0]) {
				handleErr(fmt.Errorf("unknown section %q, expected one of: %s", args[0], strings.Join(sections, ", ")))
			}
			sections = args
		}

		for _, section := range sections {
			lines := lo.FilterMap(envVars(section), func(v envVar, _ int) (string, bool) {
				value, present := os.LookupEnv(v.Name)
				if (setOnly && !present) || (unsetOnly && present) {
					return "", false
				}
				return envLine(v, value, present), true
			})

			if len(lines) == 0 {
				continue
			}

			cmd.Println(style.Bold(section))
			for _, line := range lines {
				cmd.Println("  " + line)
			}
		}
	},
}

func envVars(section string) []envVar {
	if section == "paths" {
		return []envVar{{Name: where.EnvConfigPath, Field: mo.None[config.Field]()}}
	}

	return lo.Map(config.InSection(section), func(f config.Field, _ int) envVar {
		return envVar{Name: f.Env(), Field: mo.Some(f)}
	})
}

func envLine(v envVar, value string, present bool) string {
	name := style.New().Bold(true).Foreground(color.Purple).Render(v.Name)
	if present {
		return name + "=" + style.Fg(color.Green)(value)
	}

	line := name + "=" + style.Fg(color.Red)("unset")
	if field, ok := v.Field.Get(); ok {
		line += " " + style.Faint(fmt.Sprintf("(%v from %s)", viper.Get(field.Key), field.Source()))
	}
	return line
}

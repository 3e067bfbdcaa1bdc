package cmd

import (
	"os"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"github.com/tubefetch/tubefetch/color"
	"github.com/tubefetch/tubefetch/constant"
	"github.com/tubefetch/tubefetch/style"
	"github.com/tubefetch/tubefetch/version"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
	versionCmd.Flags().BoolP("json", "j", false, "Print build and page layout information as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
	"quote":   func(s []string) string { return strings.Join(s, "  ") },
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}       {{ bold .Version }}
  {{ faint "Git Commit" }}    {{ bold .Revision }}
  {{ faint "Build Date" }}    {{ bold .BuiltAt }}
  {{ faint "Built By" }}      {{ bold .BuiltBy }}
  {{ faint "Platform" }}      {{ bold .Platform }}

  {{ faint "Watch Host" }}    {{ bold .Host }}
  {{ faint "Page Layout" }}   {{ bold .Layout }}
  {{ faint "Markers" }}       {{ quote .Markers }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display build metadata and the supported page layout",
	Long:  "Display the application version, build metadata, the watch page host in use and the page layout the extractor reads.",
	Example: "  " + constant.App + " version --short\n" +
		"  " + constant.App + " version --json",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := version.Current()

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(info))
			return
		}

		defer version.Notify(cmd.OutOrStdout())
		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), info))
	},
}

package cmd

import (
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"github.com/tubefetch/tubefetch/constant"
	"github.com/tubefetch/tubefetch/filesystem"
	"github.com/tubefetch/tubefetch/inline"
	"github.com/tubefetch/tubefetch/youtube"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringSliceP("id", "i", []string{}, "Video ids or watch urls to look up")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("kind", "k", "", "Keep only formats of a kind: audio, video or av")
	inlineCmd.Flags().IntP("itag", "t", 0, "Keep only the format with this itag")
	inlineCmd.Flags().StringP("formats", "f", "", "Formats selector")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")
	lo.Must0(inlineCmd.MarkFlagRequired("id"))

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("id", completionVideoIDs))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("kind", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"audio", "video", "av"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Look up videos in non-interactive, scriptable mode",
	Long: `Look up videos and print their formats for scripts.

Without --json the direct url of every selected format is printed, one per line.
Formats that only carry a signature cipher are skipped.

Formats selectors:
  all - every format
  audio - audio only formats
  video - video only formats
  av - formats with muxed audio and video
  downloadable - formats with a direct url
  best-audio - the downloadable format with audio and the highest bitrate
  best-video - the downloadable format with video and the highest resolution
  [number] - the format with this itag`,
	Example: "  " + constant.App + " inline -i dQw4w9WgXcQ --formats best-audio",
	Run: func(cmd *cobra.Command, args []string) {
		writer, closeOutput, err := openOutput(lo.Must(cmd.Flags().GetString("output")))
		handleErr(err)
		defer func() { handleErr(closeOutput()) }()

		var filters []inline.FormatsFilter
		if kind := lo.Must(cmd.Flags().GetString("kind")); kind != "" {
			filter, err := inline.ParseKindFilter(kind)
			handleErr(err)
			filters = append(filters, filter)
		}
		if selector := lo.Must(cmd.Flags().GetString("formats")); selector != "" {
			filter, err := inline.ParseFormatsFilter(selector)
			handleErr(err)
			filters = append(filters, filter)
		}
		if itag := lo.Must(cmd.Flags().GetInt("itag")); itag != 0 {
			filter, err := inline.ParseFormatsFilter(strconv.Itoa(itag))
			handleErr(err)
			filters = append(filters, filter)
		}

		formatsFilter := mo.None[inline.FormatsFilter]()
		if len(filters) > 0 {
			formatsFilter = mo.Some(inline.Chain(filters...))
		}

		ids := lo.Map(lo.Must(cmd.Flags().GetStringSlice("id")), func(s string, _ int) string {
			return youtube.ParseID(s)
		})

		options := &inline.Options{
			Out:           writer,
			Client:        newClient(),
			IDs:           ids,
			Json:          lo.Must(cmd.Flags().GetBool("json")),
			FormatsFilter: formatsFilter,
			OnVideo:       remember,
		}

		handleErr(inline.Run(cmd.Context(), options))
	},
}

// openOutput opens the --output file, or stdout when path is empty.
// The returned func closes the file and reports a failed flush.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := filesystem.API().Create(path)
	if err != nil {
		return nil, nil, err
	}
	return file, file.Close, nil
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline mode output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "video", "output", "formatinfo", "thumbnail":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reflector.Reflect(&inline.Output{})))
	},
}

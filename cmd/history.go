package cmd

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"github.com/tubefetch/tubefetch/color"
	"github.com/tubefetch/tubefetch/history"
	"github.com/tubefetch/tubefetch/icon"
	"github.com/tubefetch/tubefetch/style"
	"github.com/tubefetch/tubefetch/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().IntP("limit", "n", 20, "Show at most this many lookups")
	historyCmd.Flags().StringP("remove", "r", "", "Forget the lookup of a video id")
	historyCmd.Flags().Bool("clear", false, "Forget every lookup")
	historyCmd.MarkFlagsMutuallyExclusive("remove", "clear")
	lo.Must0(historyCmd.RegisterFlagCompletionFunc("remove", completionVideoIDs))
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently looked up videos",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			cmd.Printf("%s history cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		if id := lo.Must(cmd.Flags().GetString("remove")); id != "" {
			handleErr(history.Remove(id))
			cmd.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(id))
			return
		}

		videos, err := history.List()
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && len(videos) > limit {
			videos = videos[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(videos))
			return
		}

		if len(videos) == 0 {
			cmd.Println(style.Faint("no lookups yet"))
			return
		}

		for _, v := range videos {
			cmd.Printf(
				"%s %s %s\n",
				style.Fg(color.Purple)(v.ID),
				v.Title,
				style.Faint(fmt.Sprintf("%s, %s, %s", v.Author, util.Quantify(v.Formats, "format", "formats"), v.LookedUpAt.Format("2006-01-02 15:04"))),
			)
		}
	},
}

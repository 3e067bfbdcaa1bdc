package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tubefetch/tubefetch/color"
	"github.com/tubefetch/tubefetch/download"
	"github.com/tubefetch/tubefetch/icon"
	"github.com/tubefetch/tubefetch/key"
	"github.com/tubefetch/tubefetch/network"
	"github.com/tubefetch/tubefetch/style"
	"github.com/tubefetch/tubefetch/util"
	"github.com/tubefetch/tubefetch/where"
	"github.com/tubefetch/tubefetch/youtube"
)

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().IntP("itag", "t", 0, "The itag of the format to download")
	downloadCmd.Flags().StringP("directory", "d", "", "Directory to save the stream to")
	lo.Must0(viper.BindPFlag(key.DownloadDirectory, downloadCmd.Flags().Lookup("directory")))
	downloadCmd.Flags().Bool("overwrite", false, "Overwrite an existing file")
	lo.Must0(viper.BindPFlag(key.DownloadOverwrite, downloadCmd.Flags().Lookup("overwrite")))
}

var downloadCmd = &cobra.Command{
	Use:               "download <id or url>",
	Short:             "Download a stream of a video",
	Long:              "Download a stream of a video. Without --itag the format is picked interactively.",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionVideoIDs,
	Run: func(cmd *cobra.Command, args []string) {
		erase := util.PrintErasable(fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Progress), args[0]))
		video, err := lookup(cmd.Context(), newClient(), args[0])
		erase()
		handleErr(err)

		downloadable := video.Formats.Downloadable()
		if len(downloadable) == 0 {
			handleErr(fmt.Errorf("video %s has no format with a direct url", video.Details.ID()))
		}

		var format youtube.Format
		if itag := lo.Must(cmd.Flags().GetInt("itag")); itag != 0 {
			f, ok := video.Formats.ByItag(itag)
			if !ok {
				handleErr(fmt.Errorf("video %s has no format with itag %d", video.Details.ID(), itag))
			}
			format = f
		} else {
			format, err = pickFormat(downloadable)
			handleErr(err)
		}

		dir := viper.GetString(key.DownloadDirectory)
		if dir == "" {
			dir = where.Downloads()
		}
		dest := filepath.Join(dir, download.Filename(video, format))

		err = download.Download(cmd.Context(), network.Client, format, dest, download.Funcs{
			Downloading: func(progress int) {
				fmt.Printf("\r%s Downloading %s %s", icon.Get(icon.Download), style.Bold(video.String()), style.Fg(color.Yellow)(strconv.Itoa(progress)+"%"))
			},
			Finished: func(path string) {
				fmt.Printf("\r%s Saved to %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), path)
			},
		})
		if errors.Is(err, download.ErrExists) {
			err = fmt.Errorf("%w (use --overwrite to replace it)", err)
		}
		handleErr(err)
	},
}

func pickFormat(formats youtube.Formats) (youtube.Format, error) {
	options := lo.Map(formats, func(f youtube.Format, _ int) string {
		info := youtube.Describe(f)
		quality := info.QualityLabel
		if quality == "" {
			quality = info.AudioQuality
		}
		return fmt.Sprintf("%d %s %s %s %s", info.Itag, kindIcon(f.Kind()), info.Kind, info.Extension, quality)
	})

	var index int
	err := survey.AskOne(&survey.Select{
		Message: "Select a format",
		Options: options,
	}, &index)
	if err != nil {
		return nil, err
	}

	return formats[index], nil
}

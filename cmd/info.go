package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"github.com/tubefetch/tubefetch/color"
	"github.com/tubefetch/tubefetch/icon"
	"github.com/tubefetch/tubefetch/style"
	"github.com/tubefetch/tubefetch/util"
	"github.com/tubefetch/tubefetch/youtube"
)

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolP("json", "j", false, "Print the extracted video as JSON")
	infoCmd.Flags().BoolP("description", "d", false, "Include the video description")
	infoCmd.Flags().Bool("raw", false, "Print the details and format entries exactly as the page carries them")
	infoCmd.MarkFlagsMutuallyExclusive("json", "raw")
}

var infoCmd = &cobra.Command{
	Use:               "info <id or url>",
	Short:             "Show the details and stream formats of a video",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionVideoIDs,
	Run: func(cmd *cobra.Command, args []string) {
		erase := util.PrintErasable(fmt.Sprintf("%s Fetching %s...", icon.Get(icon.Progress), args[0]))
		video, err := lookup(cmd.Context(), newClient(), args[0])
		erase()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(video))
			return
		}

		if lo.Must(cmd.Flags().GetBool("raw")) {
			doc, err := rawDocument(video)
			handleErr(err)

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(doc))
			return
		}

		width := 80
		if w, _, err := util.TerminalSize(); err == nil && w > 0 {
			width = util.Min(w, 120)
		}

		cmd.Println(renderDetails(video.Details, width, lo.Must(cmd.Flags().GetBool("description"))))
		cmd.Println()
		cmd.Println(renderFormats(video.Formats))
	},
}

func renderDetails(d *youtube.VideoDetails, width int, withDescription bool) string {
	label := style.Fg(color.Blue)
	title := d.Title()
	if title == "" {
		title = d.ID()
	}

	lines := []string{
		style.Title(title),
		"",
		fmt.Sprintf("%s %s", label("ID:      "), d.ID()),
	}

	if author := d.Author(); author != "" {
		lines = append(lines, fmt.Sprintf("%s %s", label("Author:  "), author))
	}
	if length := d.LengthSeconds(); length > 0 {
		lines = append(lines, fmt.Sprintf("%s %s", label("Length:  "), time.Duration(length)*time.Second))
	}
	if views := d.ViewCount(); views > 0 {
		lines = append(lines, fmt.Sprintf("%s %s", label("Views:   "), strconv.FormatInt(views, 10)))
	}
	if rating := d.AverageRating(); rating > 0 {
		lines = append(lines, fmt.Sprintf("%s %.2f", label("Rating:  "), rating))
	}
	if d.IsLive() {
		lines = append(lines, fmt.Sprintf("%s %s", label("Live:    "), style.Fg(color.Red)("yes")))
	}
	if keywords := d.Keywords(); len(keywords) > 0 {
		lines = append(lines, fmt.Sprintf("%s %s", label("Keywords:"), style.Faint(strings.Join(keywords, ", "))))
	}

	if d.IdentifierOnly() {
		lines = append(lines, "", style.Faint("The page carried no details for this video"))
	}

	if withDescription && d.ShortDescription() != "" {
		lines = append(lines, "", wordwrap.String(d.ShortDescription(), width-6))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.AccentColor).
		Padding(0, 2).
		MaxWidth(width)

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// rawDocument decodes the page's own details object and format entries into
// generic values, keyed by the names the page uses.
func rawDocument(video *youtube.Video) (map[string]any, error) {
	details, err := video.Details.Raw().Interface()
	if err != nil {
		return nil, fmt.Errorf("video details: %w", err)
	}

	formats := make([]any, 0, len(video.Formats))
	for _, f := range video.Formats {
		entry, err := f.Raw().Interface()
		if err != nil {
			return nil, fmt.Errorf("itag %d: %w", f.Itag(), err)
		}
		formats = append(formats, entry)
	}

	return map[string]any{
		"videoId":      video.Details.ID(),
		"videoDetails": details,
		"formats":      formats,
	}, nil
}

func renderFormats(formats youtube.Formats) string {
	if len(formats) == 0 {
		return style.Faint("no formats")
	}

	header := []string{"ITAG", "KIND", "TYPE", "QUALITY", "BITRATE", "SIZE", ""}
	rows := lo.Map(formats, func(f youtube.Format, _ int) []string {
		info := youtube.Describe(f)

		quality := info.QualityLabel
		if quality == "" && info.AudioSampleRate > 0 {
			quality = fmt.Sprintf("%d Hz", info.AudioSampleRate)
		}

		locked := ""
		if f.Ciphered() {
			locked = icon.Get(icon.Locked)
		}

		return []string{
			strconv.Itoa(info.Itag),
			kindIcon(f.Kind()) + " " + info.Kind,
			info.Extension,
			quality,
			humanize(int64(info.Bitrate)) + "bps",
			humanize(info.ContentLength) + "B",
			locked,
		}
	})

	widths := lo.Map(header, func(h string, i int) int {
		return lo.Max(append(lo.Map(rows, func(r []string, _ int) int {
			return lipgloss.Width(r[i])
		}), lipgloss.Width(h)))
	})

	render := func(cells []string, s lipgloss.Style) string {
		return strings.Join(lo.Map(cells, func(c string, i int) string {
			return s.Width(widths[i] + 2).Render(c)
		}), "")
	}

	lines := []string{render(header, style.New().Bold(true).Foreground(style.SecondaryColor))}
	for _, row := range rows {
		lines = append(lines, render(row, style.New()))
	}

	return strings.Join(lines, "\n")
}

func kindIcon(k youtube.Kind) string {
	switch k {
	case youtube.KindAudio:
		return icon.Get(icon.Audio)
	case youtube.KindVideo:
		return icon.Get(icon.Video)
	default:
		return icon.Get(icon.AudioVideo)
	}
}

func humanize(n int64) string {
	if n <= 0 {
		return "-"
	}

	const unit = 1000
	if n < unit {
		return strconv.FormatInt(n, 10) + " "
	}

	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %c", float64(n)/float64(div), "kMGTPE"[exp])
}

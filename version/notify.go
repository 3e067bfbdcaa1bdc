package version

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
	"github.com/tubefetch/tubefetch/color"
	"github.com/tubefetch/tubefetch/constant"
	"github.com/tubefetch/tubefetch/icon"
	"github.com/tubefetch/tubefetch/key"
	"github.com/tubefetch/tubefetch/style"
	"github.com/tubefetch/tubefetch/util"
	"github.com/tubefetch/tubefetch/youtube"
)

const releasePage = "https://github.com/tubefetch/tubefetch/releases/tag/v"

// Status compares the running build with the latest release.
type Status struct {
	Current Semver
	Latest  Semver
}

// Outdated reports whether a newer release exists.
func (s Status) Outdated() bool {
	return s.Latest.Compare(s.Current) > 0
}

func check(current string, latest func() (string, error)) (Status, error) {
	cur, err := Parse(current)
	if err != nil {
		return Status{}, err
	}

	raw, err := latest()
	if err != nil {
		return Status{}, err
	}

	lat, err := Parse(raw)
	if err != nil {
		return Status{}, err
	}

	return Status{Current: cur, Latest: lat}, nil
}

// Notify writes an update notice to w when a newer release exists.
// Failed checks stay silent.
func Notify(w io.Writer) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	status, err := check(constant.Version, Latest)
	erase()
	if err != nil || !status.Outdated() {
		return
	}

	writeNotice(w, status)
}

func writeNotice(w io.Writer, status Status) {
	fmt.Fprintf(w, `
%s New version is available %s %s
%s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(status.Latest.String()),
		style.Faint(fmt.Sprintf("(You're on %s)", status.Current)),
		style.Faint("Newer releases may read watch pages that this build ("+youtube.Layout+") cannot."),
		style.Faint(releasePage+status.Latest.String()),
	)
}

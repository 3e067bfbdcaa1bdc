// Package download saves the stream of a format to disk.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/tubefetch/tubefetch/filesystem"
	"github.com/tubefetch/tubefetch/key"
	"github.com/tubefetch/tubefetch/log"
	"github.com/tubefetch/tubefetch/util"
	"github.com/tubefetch/tubefetch/where"
	"github.com/tubefetch/tubefetch/youtube"
)

var (
	// ErrCiphered is returned for formats that only carry a signature cipher.
	ErrCiphered = errors.New("format has no direct url")
	// ErrExists is returned when the destination exists and overwriting is disabled.
	ErrExists = errors.New("file already exists")
)

// StaleAfter is how long a staging directory may go untouched before Prune removes it.
const StaleAfter = 24 * time.Hour

// Callback observes a download.
type Callback interface {
	// OnDownloading receives the completed percentage each time it grows.
	// It is never called when the size of the stream is unknown.
	OnDownloading(progress int)
	OnFinished(path string)
	OnError(err error)
}

// Funcs implements Callback with optional functions.
type Funcs struct {
	Downloading func(progress int)
	Finished    func(path string)
	Error       func(err error)
}

func (f Funcs) OnDownloading(progress int) {
	if f.Downloading != nil {
		f.Downloading(progress)
	}
}

func (f Funcs) OnFinished(path string) {
	if f.Finished != nil {
		f.Finished(path)
	}
}

func (f Funcs) OnError(err error) {
	if f.Error != nil {
		f.Error(err)
	}
}

// Filename returns the file name for a format of video: the sanitized title
// (or the id when there is none), the itag and the format extension.
func Filename(video *youtube.Video, format youtube.Format) string {
	name := util.SanitizeFilename(video.Details.Title())
	if name == "" {
		name = video.Details.ID()
	}

	ext := format.Extension()
	if ext == "" {
		ext = "bin"
	}

	return fmt.Sprintf("%s-%d.%s", name, format.Itag(), ext)
}

// Download streams format into dest. Errors are both returned and passed to
// cb.OnError; a successful download ends with cb.OnFinished.
func Download(ctx context.Context, client *http.Client, format youtube.Format, dest string, cb Callback) (err error) {
	if cb == nil {
		cb = Funcs{}
	}

	defer func() {
		if err != nil {
			log.Error(err)
			cb.OnError(err)
		}
	}()

	if format.Ciphered() {
		return fmt.Errorf("itag %d: %w", format.Itag(), ErrCiphered)
	}

	fs := filesystem.API()
	if exists, _ := fs.Exists(dest); exists && !viper.GetBool(key.DownloadOverwrite) {
		return fmt.Errorf("%s: %w", dest, ErrExists)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, format.URL(), nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("itag %d: unexpected status %d", format.Itag(), resp.StatusCode)
	}

	size := resp.ContentLength
	if size <= 0 {
		size = format.ContentLength()
	}

	// Each download stages in its own directory; Prune only removes stale ones.
	stage, err := fs.TempDir(where.Temp(), "itag-"+strconv.Itoa(format.Itag())+"-")
	if err != nil {
		return err
	}
	defer func() { _ = fs.RemoveAll(stage) }()

	tmp, err := fs.TempFile(stage, "stream-*")
	if err != nil {
		return err
	}

	log.Infof("downloading itag %d to %s", format.Itag(), dest)
	if err = copyWithProgress(tmp, resp.Body, size, cb); err != nil {
		_ = tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	if err = fs.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	if err = filesystem.Move(tmp.Name(), dest); err != nil {
		return err
	}

	cb.OnFinished(dest)
	return nil
}

func copyWithProgress(dst afero.File, src io.Reader, size int64, cb Callback) error {
	if size <= 0 {
		_, err := io.Copy(dst, src)
		return err
	}

	pw := &progressWriter{size: size, last: -1, report: cb.OnDownloading}
	_, err := io.Copy(io.MultiWriter(dst, pw), src)
	return err
}

type progressWriter struct {
	size    int64
	written int64
	last    int
	report  func(int)
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	percent := int(p.written * 100 / p.size)
	if percent > 100 {
		percent = 100
	}
	if percent > p.last {
		p.last = percent
		p.report(percent)
	}
	return len(b), nil
}

// Prune removes staging directories left by interrupted downloads: entries
// of where.Temp with nothing modified during the last age.
func Prune(age time.Duration) error {
	fs := filesystem.API()
	root := where.Temp()

	entries, err := fs.ReadDir(root)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-age)
	var errs []error
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if lastModified(fs, path).After(cutoff) {
			continue
		}

		log.Debugf("pruning stale download %s", path)
		if err := fs.RemoveAll(path); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// lastModified returns the newest modification time found under path.
func lastModified(fs afero.Afero, path string) time.Time {
	var latest time.Time
	_ = fs.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err == nil && info.ModTime().After(latest) {
			latest = info.ModTime()
		}
		return nil
	})
	return latest
}

package sender

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/kashee337/solve_digest/logger"
)

func MarkdownPath(dir string, now time.Time) string {
	return filepath.Join(dir, DateString(now)+".md")
}

// WriteMarkdown writes doc over the day's file under dir and returns its
// path. A failed write is logged and yields an empty path.
func WriteMarkdown(dir string, now time.Time, doc string, log logger.Sink) string {
	path := MarkdownPath(dir, now)
	if err := writeFile(path, doc); err != nil {
		log.Error("generating markdown file: %v", err)
		return ""
	}
	log.Info("markdown file successfully generated at %s", path)
	return path
}

func writeFile(path string, doc string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create output dir")
	}
	return errors.Wrap(ioutil.WriteFile(path, []byte(doc), 0644), "write markdown")
}

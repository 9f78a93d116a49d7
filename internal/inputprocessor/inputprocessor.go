// Package inputprocessor auto-detects whether a CLI input string names a
// local file, an HTTP(S) URL, or raw text, and resolves it to bytes plus a
// detected content type.
package inputprocessor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Result holds extracted content details and how the input was resolved.
type Result struct {
	Body        string
	ContentType string
	FilePath    *string
	FileSize    *int64
	URL         *string
	Mtime       *time.Time
	Metadata    map[string]interface{}
}

// Processor resolves a CLI input string to content.
type Processor interface {
	Process(ctx context.Context, input string) (Result, error)
}

// New creates the default file/URL/raw-string processor.
func New(logger logrus.FieldLogger) Processor {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &defaultProcessor{logger: logger}
}

type defaultProcessor struct {
	logger logrus.FieldLogger
}

func (p *defaultProcessor) Process(ctx context.Context, input string) (Result, error) {
	res := Result{Metadata: map[string]interface{}{}}

	fi, err := os.Stat(input)
	if err == nil {
		if fi.IsDir() {
			p.logger.WithField("input", input).Warn("input is a directory, treating as raw string")
		} else {
			p.logger.WithField("input", input).Debug("input detected as a file")
			data, readErr := os.ReadFile(input)
			if readErr != nil {
				if errors.Is(readErr, os.ErrPermission) {
					return res, fmt.Errorf("permission denied reading file %q: %w", input, readErr)
				}
				return res, fmt.Errorf("read file %q: %w", input, readErr)
			}

			ct := http.DetectContentType(data)
			absPath, pathErr := filepath.Abs(input)
			if pathErr != nil {
				p.logger.WithError(pathErr).WithField("input", input).Warn("failed to resolve absolute path, using original")
				absPath = input
			}
			fileSize := fi.Size()
			mtime := fi.ModTime()

			res.Body = string(data)
			res.ContentType = ct
			res.FilePath = &absPath
			res.FileSize = &fileSize
			res.Mtime = &mtime
			res.Metadata["input_type"] = "file"
			res.Metadata["mtime"] = mtime.Format(time.RFC3339)
			return res, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return res, fmt.Errorf("stat input %q: %w", input, err)
	}

	parsedURL, urlErr := url.Parse(input)
	if urlErr == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") {
		p.logger.WithField("input", input).Debug("input detected as a URL")
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, input, nil)
		if reqErr != nil {
			return res, fmt.Errorf("build request for url %q: %w", input, reqErr)
		}

		resp, httpErr := http.DefaultClient.Do(req)
		if httpErr != nil {
			return res, fmt.Errorf("fetch url %q: %w", input, httpErr)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			bodyBytes, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return res, fmt.Errorf("fetch url %q: status %d %s: %s",
				input, resp.StatusCode, http.StatusText(resp.StatusCode), string(bodyBytes))
		}

		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return res, fmt.Errorf("read response body from url %q: %w", input, readErr)
		}

		ct := resp.Header.Get("Content-Type")
		if ct == "" {
			ct = http.DetectContentType(bodyBytes)
		}

		urlStr := parsedURL.String()
		res.Body = string(bodyBytes)
		res.ContentType = ct
		res.URL = &urlStr
		res.Metadata["input_type"] = "url"
		return res, nil
	}

	res.Body = input
	res.ContentType = "text/plain; charset=utf-8"
	res.Metadata["input_type"] = "raw"
	return res, nil
}

var _ Processor = (*defaultProcessor)(nil)

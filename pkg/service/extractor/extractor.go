package extractor

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prato-lab/prato/pkg/domain/model"
	"github.com/prato-lab/prato/pkg/utils/logging"
	"github.com/prato-lab/prato/pkg/utils/safe"
	"golang.org/x/sync/errgroup"
)

const (
	maxAttachmentSize = 16 << 20 // provider media caps out at 16MB
	maxParallel       = 3
	maxRenderedRows   = 20
)

// Service fetches attachment bytes, archives them to durable blob storage
// and produces a best-effort textual rendering for tabular or plain formats.
type Service interface {
	// Process handles all attachments of one turn and returns the combined
	// textual rendering. Failures on individual attachments degrade to a
	// placeholder line rather than failing the batch.
	Process(ctx context.Context, companyID model.CompanyID, attachments []model.Attachment) (string, error)
}

// client implements Service with GCS as the archive backend
type client struct {
	bucket     string
	gcs        *storage.Client
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// WithHTTPClient replaces the HTTP client used to fetch attachment bytes
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// New creates a new extractor Service archiving into the given GCS bucket
func New(ctx context.Context, bucket string, opts ...Option) (Service, error) {
	if bucket == "" {
		return nil, goerr.New("attachment bucket is required")
	}

	gcs, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	c := &client{
		bucket: bucket,
		gcs:    gcs,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *client) Process(ctx context.Context, companyID model.CompanyID, attachments []model.Attachment) (string, error) {
	if len(attachments) == 0 {
		return "", nil
	}

	renderings := make([]string, len(attachments))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, att := range attachments {
		g.Go(func() error {
			text, err := c.processOne(ctx, companyID, att)
			if err != nil {
				logging.From(ctx).Warn("failed to process attachment",
					"filename", att.Filename,
					"type", att.Type,
					"error", err.Error(),
				)
				renderings[i] = fmt.Sprintf("[%s: conteúdo não disponível]", att.Filename)
				return nil
			}
			renderings[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", goerr.Wrap(err, "failed to process attachments")
	}

	return strings.Join(renderings, "\n\n"), nil
}

func (c *client) processOne(ctx context.Context, companyID model.CompanyID, att model.Attachment) (string, error) {
	data, err := c.fetch(ctx, att.URL)
	if err != nil {
		return "", err
	}

	if err := c.archive(ctx, companyID, att, data); err != nil {
		// Archiving is best effort; the rendering is still useful
		logging.From(ctx).Warn("failed to archive attachment",
			"filename", att.Filename,
			"error", err.Error(),
		)
	}

	return renderText(att, data), nil
}

func (c *client) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if rawURL == "" {
		return nil, goerr.New("attachment has no URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build attachment request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch attachment")
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.New("attachment fetch returned non-2xx status",
			goerr.V("status", resp.StatusCode),
		)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAttachmentSize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read attachment body")
	}
	return data, nil
}

func (c *client) archive(ctx context.Context, companyID model.CompanyID, att model.Attachment, data []byte) error {
	objectName := fmt.Sprintf("%s/%s/%s",
		companyID,
		time.Now().UTC().Format("2006-01-02"),
		att.Filename,
	)

	w := c.gcs.Bucket(c.bucket).Object(objectName).NewWriter(ctx)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write attachment object", goerr.V("object", objectName))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize attachment object", goerr.V("object", objectName))
	}
	return nil
}

// renderText produces a best-effort textual rendering: CSV files become a
// row-per-line listing, other valid UTF-8 content is passed through, and
// binary content degrades to a placeholder.
func renderText(att model.Attachment, data []byte) string {
	ext := strings.ToLower(path.Ext(att.Filename))

	if ext == ".csv" {
		if rendered, ok := renderCSV(data); ok {
			return fmt.Sprintf("[%s]\n%s", att.Filename, rendered)
		}
	}

	if utf8.Valid(data) && att.Type != "image" {
		text := strings.TrimSpace(string(data))
		if text != "" {
			return fmt.Sprintf("[%s]\n%s", att.Filename, text)
		}
	}

	return fmt.Sprintf("[%s: conteúdo binário arquivado]", att.Filename)
}

func renderCSV(data []byte) (string, bool) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	var lines []string
	for len(lines) < maxRenderedRows {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", false
		}
		lines = append(lines, strings.Join(record, " | "))
	}
	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/tadbeerx/admin-console/pkg/models"
)

// ListSlots fetches the authoritative slot state for a worker.
func (c *Client) ListSlots(ctx context.Context, workerID string) (*models.MediaSlots, error) {
	var out struct {
		Slots models.MediaSlots `json:"slots"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/media/workers/"+workerID+"/slots", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Slots, nil
}

// UploadSlot sends one file into a named slot. Uploading to an occupied slot
// replaces its occupant server-side.
func (c *Client) UploadSlot(ctx context.Context, workerID, slotType, filename, contentType string, file io.Reader) (*models.MediaItem, error) {
	var out struct {
		Media *models.MediaItem `json:"media"`
	}
	err := c.doMultipart(ctx, http.MethodPost, "/api/media/workers/"+workerID+"/slots", &out, func(w *multipart.Writer) error {
		if err := w.WriteField("slotType", slotType); err != nil {
			return err
		}
		part, err := createFilePart(w, "media", filename, contentType)
		if err != nil {
			return err
		}
		_, err = io.Copy(part, file)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out.Media, nil
}

// DeleteSlot removes the occupant of one slot.
func (c *Client) DeleteSlot(ctx context.Context, workerID, slotType string) error {
	return c.do(ctx, http.MethodDelete, "/api/media/workers/"+workerID+"/slots/"+slotType, nil, nil, nil)
}

// UploadPhoto is the legacy single-photo variant kept for workers created
// before the slot model existed.
func (c *Client) UploadPhoto(ctx context.Context, workerID, filename, contentType string, file io.Reader) error {
	return c.doMultipart(ctx, http.MethodPost, "/api/media/workers/"+workerID+"/photo", nil, func(w *multipart.Writer) error {
		part, err := createFilePart(w, "photo", filename, contentType)
		if err != nil {
			return err
		}
		_, err = io.Copy(part, file)
		return err
	})
}

func (c *Client) DeletePhoto(ctx context.Context, workerID string) error {
	return c.do(ctx, http.MethodDelete, "/api/media/workers/"+workerID+"/photo", nil, nil, nil)
}

// BlobTestUpload forwards an ad-hoc file to the blob test endpoint and hands
// back the raw response for the caller to relay.
func (c *Client) BlobTestUpload(ctx context.Context, filename, contentType string, file io.Reader) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.doMultipart(ctx, http.MethodPost, "/api/blob-test/upload", &out, func(w *multipart.Writer) error {
		part, err := createFilePart(w, "file", filename, contentType)
		if err != nil {
			return err
		}
		_, err = io.Copy(part, file)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BlobTestDelete forwards a delete payload to the blob test endpoint.
func (c *Client) BlobTestDelete(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/api/blob-test/delete", nil, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// doMultipart issues a multipart request built by form, with the same auth
// and error mapping as do.
func (c *Client) doMultipart(ctx context.Context, method, path string, out any, form func(w *multipart.Writer) error) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := form(w); err != nil {
		w.Close()
		return fmt.Errorf("build multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.send(req, out)
}

// createFilePart adds a file part carrying the real MIME type instead of the
// octet-stream default of CreateFormFile.
func createFilePart(w *multipart.Writer, field, filename, contentType string) (io.Writer, error) {
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)
	return w.CreatePart(h)
}

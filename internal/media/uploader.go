// Package media manages the five named media slots of a worker profile:
// three images, a video thumbnail and one video. Each slot holds at most one
// file; uploading to an occupied slot replaces it server-side.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/tadbeerx/admin-console/pkg/backend"
)

// Slot names, fixed per worker.
const (
	SlotImage1Postcard = "image1Postcard"
	SlotImage2         = "image2"
	SlotImage3         = "image3"
	SlotVideoThumbnail = "videoThumbnail"
	SlotVideo1         = "video1"
)

// Slots lists every slot in display order.
var Slots = []string{SlotImage1Postcard, SlotImage2, SlotImage3, SlotVideoThumbnail, SlotVideo1}

// Per-kind upload ceilings.
const (
	MaxImageSize = 5 << 20   // 5 MB
	MaxVideoSize = 100 << 20 // 100 MB
)

var (
	ErrUnknownSlot = errors.New("unknown media slot")
	ErrWrongKind   = errors.New("file type does not match slot")
	ErrTooLarge    = errors.New("file exceeds the size limit for this slot")
	ErrSlotBusy    = errors.New("an upload for this slot is already in flight")
	ErrEmptyUpload = errors.New("no file provided")
)

// File describes one upload candidate. Size must be known up front so the
// ceiling check happens before any network call.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Uploader manages slot uploads for one worker. Uploads on distinct slots
// run independently; a second upload on a busy slot is rejected without a
// network call. After any successful mutation the caller-supplied refresh
// callback runs so the parent refetches authoritative slot state.
type Uploader struct {
	client   *backend.Client
	workerID string
	refresh  func()

	mu       sync.Mutex
	inflight map[string]bool
	lastErr  string
}

func NewUploader(client *backend.Client, workerID string, refresh func()) *Uploader {
	return &Uploader{
		client:   client,
		workerID: workerID,
		refresh:  refresh,
		inflight: map[string]bool{},
	}
}

// ValidateFile checks a candidate against the slot's kind and size rules
// without touching the network.
func ValidateFile(slot string, f File) error {
	if !knownSlot(slot) {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, slot)
	}
	if f.Content == nil {
		return ErrEmptyUpload
	}

	isVideo := strings.HasPrefix(f.ContentType, "video/")
	isImage := strings.HasPrefix(f.ContentType, "image/")

	if slot == SlotVideo1 {
		if !isVideo {
			return fmt.Errorf("%w: video slot requires a video file", ErrWrongKind)
		}
		if f.Size > MaxVideoSize {
			return fmt.Errorf("%w: video must be at most 100MB", ErrTooLarge)
		}
		return nil
	}

	if !isImage {
		return fmt.Errorf("%w: image slots require image files", ErrWrongKind)
	}
	if f.Size > MaxImageSize {
		return fmt.Errorf("%w: image must be at most 5MB", ErrTooLarge)
	}
	return nil
}

func knownSlot(slot string) bool {
	for _, s := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// Upload validates and sends one file into a slot. Validation and busy-slot
// rejections happen before any network call.
func (u *Uploader) Upload(ctx context.Context, slot string, f File) error {
	if err := ValidateFile(slot, f); err != nil {
		u.fail(err)
		return err
	}

	if !u.acquire(slot) {
		return ErrSlotBusy
	}
	defer u.release(slot)

	if _, err := u.client.UploadSlot(ctx, u.workerID, slot, f.Name, f.ContentType, f.Content); err != nil {
		u.fail(err)
		return err
	}

	u.clearErr()
	if u.refresh != nil {
		u.refresh()
	}
	return nil
}

// Delete removes the occupant of a slot.
func (u *Uploader) Delete(ctx context.Context, slot string) error {
	if !knownSlot(slot) {
		err := fmt.Errorf("%w: %s", ErrUnknownSlot, slot)
		u.fail(err)
		return err
	}

	if err := u.client.DeleteSlot(ctx, u.workerID, slot); err != nil {
		u.fail(err)
		return err
	}

	if u.refresh != nil {
		u.refresh()
	}
	return nil
}

// Busy reports whether an upload for the slot is in flight.
func (u *Uploader) Busy(slot string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.inflight[slot]
}

// Idle reports whether no slot has an upload in flight.
func (u *Uploader) Idle() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.inflight) == 0
}

// Err returns the last failure message; empty when none or dismissed.
// Last failure wins, and a failure never rolls back other slots' state.
func (u *Uploader) Err() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastErr
}

// Dismiss clears the visible error message.
func (u *Uploader) Dismiss() { u.clearErr() }

func (u *Uploader) acquire(slot string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.inflight[slot] {
		return false
	}
	u.inflight[slot] = true
	return true
}

func (u *Uploader) release(slot string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.inflight, slot)
}

func (u *Uploader) fail(err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.lastErr = err.Error()
}

func (u *Uploader) clearErr() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.lastErr = ""
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"time"

	"photoapp/internal/model"
)

// NoUploadsLabel is reported when the gallery holds no records.
const NoUploadsLabel = "No images yet"

// GalleryView is the service-level DTO for the gallery page: all records
// newest-first plus the derived display fields.
type GalleryView struct {
	Photos      []model.Photo `json:"data"`
	Count       int           `json:"total"`
	LastUpdated string        `json:"last_updated"`
}

// Gallery defines the photo use cases the HTTP layer depends on. Both
// storage variants implement it; handlers never see which one is behind it.
type Gallery interface {
	// Upload validates the candidate file, persists its bytes and metadata,
	// and returns the stored record's view. Validation failures occur before
	// any store mutation.
	Upload(ctx context.Context, r io.Reader, in UploadInput) (*model.Photo, error)

	// View returns all photos newest-first with the record count and the
	// "time since last upload" label.
	View(ctx context.Context) (*GalleryView, error)

	// Get returns a single photo by its ID.
	Get(ctx context.Context, id string) (*model.Photo, error)

	// Data returns the raw image bytes and stored content type for direct
	// serving. Only the inline-blob variant supports it; the object-store
	// variant returns ErrNoInlineData.
	Data(ctx context.Context, id string) ([]byte, string, error)

	// Delete removes a photo's blob and metadata row by ID.
	Delete(ctx context.Context, id string) error
}

// lastUpdatedLabel renders the age of the newest upload in whole 24-hour
// periods: "today" (0), "yesterday" (1), or "<n> days ago".
func lastUpdatedLabel(latest, now time.Time) string {
	days := int(now.Sub(latest).Hours() / 24)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// newGalleryView assembles the display fields. Photos must already be
// ordered newest-first.
func newGalleryView(photos []model.Photo, count int, now time.Time) *GalleryView {
	view := &GalleryView{
		Photos:      photos,
		Count:       count,
		LastUpdated: NoUploadsLabel,
	}
	if len(photos) > 0 {
		view.LastUpdated = "Last updated " + lastUpdatedLabel(photos[0].UploadedAt, now)
	}
	return view
}

// logEvent writes a one-line JSON log entry, matching the request logger's
// output format.
func logEvent(level, event string, fields map[string]any) {
	entry := map[string]any{
		"ts":        time.Now().UTC().Format(time.RFC3339Nano),
		"level":     level,
		"component": "gallery",
		"event":     event,
	}
	for k, v := range fields {
		entry[k] = v
	}
	b, err := json.Marshal(entry)
	if err != nil {
		log.Printf("failed to marshal log entry: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}

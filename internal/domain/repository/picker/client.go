package picker

import (
	"context"

	"framecast/internal/domain/dto"
)

// Client consumes the remote picker service. All calls are deadline-bounded
// by the implementation; a session the remote reports gone surfaces as
// entity.ErrNotFound.
type Client interface {
	CreateSession(ctx context.Context) (*dto.RemoteSession, error)
	GetSession(ctx context.Context, remoteID string) (*dto.RemoteSessionStatus, error)

	// ListMediaItems paginates the full selection, 100 descriptors per page.
	ListMediaItems(ctx context.Context, remoteID string) ([]dto.MediaItem, error)

	// DownloadOriginal fetches the item's canonical bytes (`=d` rendition).
	DownloadOriginal(ctx context.Context, item dto.MediaItem) ([]byte, error)

	// DownloadSized fetches a specific rendition (`=w{w}-h{h}`).
	DownloadSized(ctx context.Context, item dto.MediaItem, width, height int) ([]byte, error)
}

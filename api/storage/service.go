package storage

import (
	"context"

	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/openapi"
)

// Service sends storage requests to the cloud endpoint.
type Service struct {
	client *openapi.Client
}

// NewService returns a Service using c.
func NewService(c *openapi.Client) *Service {
	return &Service{client: c.WithEndpointType(openapi.EndpointCloud)}
}

// Download reads a whole file, or a byte range of it, into memory.
func (s *Service) Download(ctx context.Context, req *DownloadRequest) (*DownloadResponse, error) {
	return openapi.Send[*DownloadResponse](ctx, s.client, req)
}

// DownloadStream is Download without buffering. The caller closes the stream.
func (s *Service) DownloadStream(ctx context.Context, req *DownloadRequest) (*httpclient.StreamResponse, error) {
	return openapi.Send[*httpclient.StreamResponse](ctx, s.client, downloadStream{req})
}

// ReadAt reads part of a file into memory.
func (s *Service) ReadAt(ctx context.Context, req *ReadAtRequest) (*ReadAtResponse, error) {
	return openapi.Send[*ReadAtResponse](ctx, s.client, req)
}

// ReadAtStream is ReadAt without buffering. The caller closes the stream.
func (s *Service) ReadAtStream(ctx context.Context, req *ReadAtRequest) (*httpclient.StreamResponse, error) {
	return openapi.Send[*httpclient.StreamResponse](ctx, s.client, readAtStream{req})
}

// WriteAt writes bytes into a file.
func (s *Service) WriteAt(ctx context.Context, req *WriteAtRequest) (*openapi.Response[WriteAtResponse], error) {
	return openapi.Send[*openapi.Response[WriteAtResponse]](ctx, s.client, req)
}

// Upload uploads a whole file.
func (s *Service) Upload(ctx context.Context, req *UploadRequest) (*openapi.Response[UploadResponse], error) {
	return openapi.Send[*openapi.Response[UploadResponse]](ctx, s.client, req)
}

// Stat reads file metadata.
func (s *Service) Stat(ctx context.Context, req *StatRequest) (*openapi.Response[StatResponse], error) {
	return openapi.Send[*openapi.Response[StatResponse]](ctx, s.client, req)
}

// List reads one page of a directory.
func (s *Service) List(ctx context.Context, req *ListRequest) (*openapi.Response[ListResponse], error) {
	return openapi.Send[*openapi.Response[ListResponse]](ctx, s.client, req)
}

// Mkdir creates a directory.
func (s *Service) Mkdir(ctx context.Context, req *MkdirRequest) (*openapi.Response[Empty], error) {
	return openapi.Send[*openapi.Response[Empty]](ctx, s.client, req)
}

// Move renames a file or directory.
func (s *Service) Move(ctx context.Context, req *MoveRequest) (*openapi.Response[Empty], error) {
	return openapi.Send[*openapi.Response[Empty]](ctx, s.client, req)
}

// Remove deletes a file or directory.
func (s *Service) Remove(ctx context.Context, req *RemoveRequest) (*openapi.Response[Empty], error) {
	return openapi.Send[*openapi.Response[Empty]](ctx, s.client, req)
}

// ChunkChecksums reads the block checksums of a file.
func (s *Service) ChunkChecksums(ctx context.Context, req *ChunkChecksumsRequest) (*openapi.Response[ChunkChecksumsResponse], error) {
	return openapi.Send[*openapi.Response[ChunkChecksumsResponse]](ctx, s.client, req)
}

// FindChunks matches local checksums against a remote file.
func (s *Service) FindChunks(ctx context.Context, req *FindChunksRequest) (*openapi.Response[FindChunksResponse], error) {
	return openapi.Send[*openapi.Response[FindChunksResponse]](ctx, s.client, req)
}

package storage

import (
	"net/http"

	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/model"
	"github.com/kbukum/openapi-go/openapi"
	"github.com/kbukum/openapi-go/validation"
)

// ChunkChecksumsRequest asks the server for the block checksums of a file
// between two chunk offsets.
type ChunkChecksumsRequest struct {
	Path             string `json:"Path" validate:"notblank"`
	BlockSize        *int64
	BeginChunkOffset *int64
	EndChunkOffset   *int64
	RollingHashType  *string
}

// ChunkChecksumsResponse lists the checksums in offset order.
type ChunkChecksumsResponse struct {
	Checksums []model.ChunkChecksum `json:"Checksums"`
}

func (r *ChunkChecksumsRequest) BuildRequest() (*httpclient.Request, error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	req := httpclient.NewRequest(http.MethodGet, "/api/storage/checksum")
	req.SetQuery("Path", r.Path)
	httpclient.SetQueryPtr(req, "BlockSize", r.BlockSize)
	httpclient.SetQueryPtr(req, "BeginChunkOffset", r.BeginChunkOffset)
	httpclient.SetQueryPtr(req, "EndChunkOffset", r.EndChunkOffset)
	httpclient.SetQueryPtr(req, "RollingHashType", r.RollingHashType)
	return req, nil
}

func (r *ChunkChecksumsRequest) DecodeResponse(resp *http.Response) (*openapi.Response[ChunkChecksumsResponse], error) {
	return openapi.DecodeJSON[ChunkChecksumsResponse](resp)
}

// FindChunksRequest sends local checksums and asks which blocks of the
// remote file match them.
type FindChunksRequest struct {
	Path             string                `json:"Path" validate:"notblank"`
	BlockSize        *int64                `json:"BlockSize,omitempty"`
	BeginChunkOffset *int64                `json:"BeginChunkOffset,omitempty"`
	EndChunkOffset   *int64                `json:"EndChunkOffset,omitempty"`
	RollingHashType  *string               `json:"RollingHashType,omitempty"`
	Checksums        []model.ChunkChecksum `json:"Checksums"`
}

// FindChunksResponse lists the matching chunks.
type FindChunksResponse struct {
	Chunks []model.Chunk `json:"Checksums"`
}

func (r *FindChunksRequest) BuildRequest() (*httpclient.Request, error) {
	return jsonRequest(http.MethodPost, "/api/storage/checksumsFindChunks", r)
}

func (r *FindChunksRequest) DecodeResponse(resp *http.Response) (*openapi.Response[FindChunksResponse], error) {
	return openapi.DecodeJSON[FindChunksResponse](resp)
}

package storage

import (
	"fmt"
	"io"
	"net/http"

	"github.com/kbukum/openapi-go/errors"
	"github.com/kbukum/openapi-go/httpclient"
	"github.com/kbukum/openapi-go/model"
	"github.com/kbukum/openapi-go/openapi"
	"github.com/kbukum/openapi-go/validation"
)

// DownloadRequest downloads a file, or the inclusive byte range
// [RangeStart, RangeEnd] when both bounds are set.
type DownloadRequest struct {
	Path       string `json:"Path" validate:"notblank"`
	RangeStart *int64
	RangeEnd   *int64
}

// DownloadResponse is a fully buffered download.
type DownloadResponse struct {
	FileName string
	FileType string
	FileSize int64
	Data     []byte
}

func (r *DownloadRequest) BuildRequest() (*httpclient.Request, error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	req := httpclient.NewRequest(http.MethodGet, "/api/storage/download")
	req.SetQuery("Path", r.Path)
	if r.RangeStart != nil && r.RangeEnd != nil {
		req.SetQuery("Range", fmt.Sprintf("bytes=%d-%d", *r.RangeStart, *r.RangeEnd))
	}
	return req, nil
}

func (r *DownloadRequest) DecodeResponse(resp *http.Response) (*DownloadResponse, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Decode(err)
	}
	size := resp.ContentLength
	if size < 0 {
		size = int64(len(data))
	}
	return &DownloadResponse{
		FileName: httpclient.ParseFileName(resp.Header.Get("Content-Disposition")),
		FileType: resp.Header.Get("Content-Type"),
		FileSize: size,
		Data:     data,
	}, nil
}

// downloadStream sends a DownloadRequest without buffering the payload.
type downloadStream struct {
	*DownloadRequest
}

func (downloadStream) Streaming() {}

func (downloadStream) DecodeResponse(resp *http.Response) (*httpclient.StreamResponse, error) {
	return openapi.DecodeStream(resp)
}

// ReadAtRequest reads Length bytes of a file starting at Offset, optionally
// compressed on the wire by Compressor.
type ReadAtRequest struct {
	Path       string `json:"Path" validate:"notblank"`
	Compressor *string
	Offset     *int64
	Length     *int64
}

// ReadAtResponse holds the bytes read.
type ReadAtResponse struct {
	Data []byte
}

func (r *ReadAtRequest) BuildRequest() (*httpclient.Request, error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	req := httpclient.NewRequest(http.MethodGet, "/api/storage/readAt")
	setRangeQuery(req, r.Path, r.Compressor, r.Offset, r.Length)
	return req, nil
}

func (r *ReadAtRequest) DecodeResponse(resp *http.Response) (*ReadAtResponse, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Decode(err)
	}
	return &ReadAtResponse{Data: data}, nil
}

type readAtStream struct {
	*ReadAtRequest
}

func (readAtStream) Streaming() {}

func (readAtStream) DecodeResponse(resp *http.Response) (*httpclient.StreamResponse, error) {
	return openapi.DecodeStream(resp)
}

// WriteAtRequest writes Data into a file at Offset.
type WriteAtRequest struct {
	Path       string `json:"Path" validate:"notblank"`
	Compressor *string
	Offset     *int64
	Length     *int64
	Data       []byte
}

// WriteAtResponse describes the file after the write.
type WriteAtResponse struct {
	File *model.FileInfo `json:"File"`
}

func (r *WriteAtRequest) BuildRequest() (*httpclient.Request, error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	req := httpclient.NewRequest(http.MethodPost, "/api/storage/writeAt")
	setRangeQuery(req, r.Path, r.Compressor, r.Offset, r.Length)
	req.SetRawBody(r.Data, httpclient.ContentTypeOctetStream)
	return req, nil
}

func (r *WriteAtRequest) DecodeResponse(resp *http.Response) (*openapi.Response[WriteAtResponse], error) {
	return openapi.DecodeJSON[WriteAtResponse](resp)
}

// UploadRequest uploads Content as a whole file.
type UploadRequest struct {
	Path      string `json:"Path" validate:"notblank"`
	Overwrite *bool
	Content   []byte
}

// UploadResponse is empty on success.
type UploadResponse struct{}

func (r *UploadRequest) BuildRequest() (*httpclient.Request, error) {
	if err := validation.Validate(r); err != nil {
		return nil, err
	}
	req := httpclient.NewRequest(http.MethodPost, "/api/storage/upload/file")
	req.SetQuery("Path", r.Path)
	httpclient.SetQueryPtr(req, "Overwrite", r.Overwrite)
	req.SetRawBody(r.Content, httpclient.ContentTypeOctetStream)
	return req, nil
}

func (r *UploadRequest) DecodeResponse(resp *http.Response) (*openapi.Response[UploadResponse], error) {
	return openapi.DecodeJSON[UploadResponse](resp)
}

func setRangeQuery(req *httpclient.Request, path string, compressor *string, offset, length *int64) {
	req.SetQuery("Path", path)
	httpclient.SetQueryPtr(req, "Compressor", compressor)
	httpclient.SetQueryPtr(req, "Offset", offset)
	httpclient.SetQueryPtr(req, "Length", length)
}

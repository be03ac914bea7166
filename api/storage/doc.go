// Package storage reads and writes files through the cloud storage
// endpoint.
//
// Download and ReadAt come in two forms. The buffered form reads the whole
// payload into memory; the stream form returns an
// *httpclient.StreamResponse the caller reads and closes:
//
//	stream, err := storage.NewService(client).DownloadStream(ctx, &storage.DownloadRequest{Path: "/home/u/out.log"})
//	if err != nil {
//		return err
//	}
//	defer stream.Close()
//	_, err = io.Copy(dst, stream)
package storage

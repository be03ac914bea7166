package model

// FileInfo describes a file or directory in the storage service.
type FileInfo struct {
	Name    string `json:"Name"`
	Size    int64  `json:"Size"`
	Mode    int64  `json:"Mode"`
	ModTime string `json:"ModTime"`
	IsDir   bool   `json:"IsDir"`
}

// ChunkChecksum is the rolling and strong checksum of one block of a file.
type ChunkChecksum struct {
	ChunkOffset    int64  `json:"ChunkOffset"`
	Size           int64  `json:"Size"`
	WeakChecksum   []byte `json:"WeakChecksum"`
	StrongChecksum []byte `json:"StrongChecksum"`
}

// Chunk is a block the server matched against a set of checksums.
type Chunk struct {
	ID             string `json:"Id"`
	RoundID        int64  `json:"RoundId"`
	Priority       int64  `json:"Priority"`
	Offset         int64  `json:"Offset"`
	Length         int64  `json:"Length"`
	WeakChecksum   []byte `json:"WeakChecksum"`
	StrongChecksum []byte `json:"StrongChecksum"`
}

package model

// SyncTask is the state of a job's result file synchronisation.
type SyncTask struct {
	JobID                   string `json:"JobId"`
	State                   string `json:"State"`
	DownloadFinished        bool   `json:"DownloadFinished"`
	DownloadFileSizeCurrent int64  `json:"DownloadFileSizeCurrent"`
	DownloadFileSizeTotal   int64  `json:"DownloadFileSizeTotal"`
	DownloadFinishedTime    string `json:"DownloadFinishedTime"`
}

// Percent returns the download progress in [0, 100]. A task with an
// unknown total reports 100 once it has finished and 0 before that.
func (t *SyncTask) Percent() float64 {
	if t.DownloadFileSizeTotal <= 0 {
		if t.DownloadFinished {
			return 100
		}
		return 0
	}
	p := float64(t.DownloadFileSizeCurrent) / float64(t.DownloadFileSizeTotal) * 100
	return min(max(p, 0), 100)
}

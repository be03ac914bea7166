package model

// Zone lists the per-zone service endpoints.
type Zone struct {
	HPCEndpoint        string `json:"HPCEndpoint"`
	StorageEndpoint    string `json:"StorageEndpoint"`
	CloudAppEnable     bool   `json:"CloudAppEnable"`
	SyncRunnerEndpoint string `json:"SyncRunnerEndpoint"`
}

// AllocResource is the compute allocated to a job.
type AllocResource struct {
	Cores  int32 `json:"Cores"`
	Memory int32 `json:"Resources"`
}

// Progress reports how far a job's file transfer has come.
type Progress struct {
	TotalSize int32 `json:"TotalSize"`
	Progress  int32 `json:"Progress"`
}

// JobInfo is the user-facing view of a job. Only the commonly used fields
// are modelled; unknown fields are ignored on decode.
type JobInfo struct {
	ID             string         `json:"Id"`
	Name           string         `json:"Name"`
	State          string         `json:"State"`
	FileSyncState  string         `json:"FileSyncState"`
	StateReason    string         `json:"StateReason"`
	Zone           string         `json:"Zone"`
	AppID          string         `json:"AppID"`
	AppName        string         `json:"AppName"`
	UserID         string         `json:"UserId"`
	Workdir        string         `json:"Workdir"`
	OutputDir      string         `json:"OutputDir"`
	AllocResource  *AllocResource `json:"AllocResource,omitempty"`
	DownloadStatus *Progress      `json:"DownloadProgress,omitempty"`
	UploadStatus   *Progress      `json:"UploadProgress,omitempty"`
	ExecutionDur   int64          `json:"ExecutionDuration"`
	CreateTime     string         `json:"CreateTime"`
	StartTime      string         `json:"StartTime"`
	EndTime        string         `json:"EndTime"`
}

// AdminJobInfo extends JobInfo with fields only visible to administrators.
type AdminJobInfo struct {
	JobInfo
	HPCJobID     string `json:"HPCJobId"`
	PriorityType string `json:"PriorityType"`
	IsSystemFail bool   `json:"IsSystemFailed"`
	IsPaid       bool   `json:"IsPaid"`
}

// IsTerminal reports whether the job has reached a final state.
func (j *JobInfo) IsTerminal() bool {
	switch j.State {
	case JobStateCompleted, JobStateFailed, JobStateTerminated:
		return true
	}
	return false
}

// Job states reported by the service.
const (
	JobStateInitiated   = "Initiated"
	JobStatePending     = "Pending"
	JobStateRunning     = "Running"
	JobStateTerminating = "Terminating"
	JobStateCompleted   = "Completed"
	JobStateFailed      = "Failed"
	JobStateTerminated  = "Terminated"
)

package synctask_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/openapi-go/api/synctask"
	"github.com/kbukum/openapi-go/errors"
	"github.com/kbukum/openapi-go/model"
	"github.com/kbukum/openapi-go/openapitest"
	"github.com/kbukum/openapi-go/util"
)

func TestBatchGet(t *testing.T) {
	srv := openapitest.Start(t)
	srv.Handle(http.MethodPost, "/system/sync-task/batch", func(c *gin.Context) {
		var in struct{ JobIds []string }
		if err := c.ShouldBindJSON(&in); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		tasks := make([]model.SyncTask, 0, len(in.JobIds))
		for _, id := range in.JobIds {
			tasks = append(tasks, model.SyncTask{JobID: id, State: "Syncing", DownloadFileSizeCurrent: 1, DownloadFileSizeTotal: 4})
		}
		openapitest.OK(c, tasks)
	})

	resp, err := synctask.NewService(srv.Client(t)).BatchGet(context.Background(), &synctask.BatchGetRequest{JobIDs: []string{"a", "b"}})
	if err != nil {
		t.Fatalf("BatchGet failed: %v", err)
	}
	if resp.Data == nil || len(*resp.Data) != 2 {
		t.Fatalf("unexpected tasks %+v", resp.Data)
	}
	if task := (*resp.Data)[1]; task.JobID != "b" || task.Percent() != 25 {
		t.Errorf("unexpected task %+v", task)
	}
}

func TestBatchGet_RequiresJobIDs(t *testing.T) {
	srv := openapitest.Start(t)
	svc := synctask.NewService(srv.Client(t))
	for _, ids := range [][]string{nil, {"a", ""}} {
		if _, err := svc.BatchGet(context.Background(), &synctask.BatchGetRequest{JobIDs: ids}); !errors.IsInvalidRequest(err) {
			t.Errorf("expected INVALID_REQUEST for %v, got %v", ids, err)
		}
	}
	if len(srv.Requests()) != 0 {
		t.Error("expected no request to be sent")
	}
}

func TestTaskActions(t *testing.T) {
	srv := openapitest.Start(t)
	srv.Respond(http.MethodPost, "/system/sync-task/:id/stop", synctask.Empty{})
	srv.Respond(http.MethodPost, "/system/sync-task/:id/resume", synctask.Empty{})
	srv.Respond(http.MethodPatch, "/system/sync-task/:id/retransmit", synctask.Empty{})
	srv.Respond(http.MethodPatch, "/system/sync-task/:id/state", synctask.Empty{})
	svc := synctask.NewService(srv.Client(t))
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func() error
		wantMethod string
		wantPath   string
		wantBody   map[string]any
	}{
		{
			name: "stop",
			call: func() error {
				_, err := svc.Stop(ctx, &synctask.StopRequest{JobID: "j/1", Mode: util.Ptr(1)})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/system/sync-task/j/1/stop",
			wantBody:   map[string]any{"JobId": "j/1", "Mode": float64(1)},
		},
		{
			name: "resume",
			call: func() error {
				_, err := svc.Resume(ctx, &synctask.ResumeRequest{JobID: "j2"})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/system/sync-task/j2/resume",
		},
		{
			name: "retransmit",
			call: func() error {
				_, err := svc.Retransmit(ctx, &synctask.RetransmitRequest{JobID: "j3"})
				return err
			},
			wantMethod: http.MethodPatch,
			wantPath:   "/system/sync-task/j3/retransmit",
		},
		{
			name: "update state",
			call: func() error {
				_, err := svc.UpdateState(ctx, &synctask.UpdateStateRequest{JobID: "j4", FileSyncState: "Paused"})
				return err
			},
			wantMethod: http.MethodPatch,
			wantPath:   "/system/sync-task/j4/state",
			wantBody:   map[string]any{"JobId": "j4", "FileSyncState": "Paused"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err != nil {
				t.Fatalf("call failed: %v", err)
			}
			got, _ := srv.LastRequest()
			if got.Method != tt.wantMethod || got.Path != tt.wantPath {
				t.Errorf("got %s %s, want %s %s", got.Method, got.Path, tt.wantMethod, tt.wantPath)
			}
			if tt.wantBody == nil {
				if len(got.Body) != 0 {
					t.Errorf("expected no body, got %q", got.Body)
				}
				return
			}
			var body map[string]any
			if err := json.Unmarshal(got.Body, &body); err != nil {
				t.Fatalf("bad body %q: %v", got.Body, err)
			}
			for k, v := range tt.wantBody {
				if body[k] != v {
					t.Errorf("body[%s] = %v, want %v", k, body[k], v)
				}
			}
		})
	}
}

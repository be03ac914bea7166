// Package job lists zones and reads jobs through the API endpoint.
//
//	svc := job.NewService(client)
//	resp, err := svc.JobGet(ctx, &job.JobGetRequest{JobID: "4Cx2"})
//	if err == nil {
//		err = resp.Err()
//	}
package job

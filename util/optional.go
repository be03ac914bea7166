package util

// Ptr returns a pointer to a copy of v. Request types use pointer fields
// for optional parameters, and a nil field is left off the wire:
//
//	svc.JobList(ctx, &job.JobListRequest{PageSize: util.Ptr(50)})
func Ptr[T any](v T) *T { return &v }

// Deref returns *p, or the zero value when an optional field was not sent
// or not returned.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

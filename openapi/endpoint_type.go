package openapi

import (
	"fmt"
	"strings"
)

// EndpointType selects one of the service base URLs.
type EndpointType int

const (
	// EndpointAPI is the general API gateway (jobs, zones, merchandise).
	EndpointAPI EndpointType = iota
	// EndpointCloud serves storage operations.
	EndpointCloud
	// EndpointHPC serves HPC node operations.
	EndpointHPC
	// EndpointSync serves file sync tasks.
	EndpointSync
)

// String returns the lowercase name of the endpoint type.
func (e EndpointType) String() string {
	switch e {
	case EndpointAPI:
		return "api"
	case EndpointCloud:
		return "cloud"
	case EndpointHPC:
		return "hpc"
	case EndpointSync:
		return "sync"
	default:
		return fmt.Sprintf("unknown(%d)", int(e))
	}
}

// ParseEndpointType parses a name produced by String, ignoring case.
func ParseEndpointType(s string) (EndpointType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "api":
		return EndpointAPI, nil
	case "cloud":
		return EndpointCloud, nil
	case "hpc":
		return EndpointHPC, nil
	case "sync":
		return EndpointSync, nil
	}
	return 0, fmt.Errorf("unknown endpoint type %q", s)
}

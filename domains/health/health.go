package health

import "context"

type Status string

const (
	StatusOk    Status = "OK"
	StatusError Status = "ERROR"
)

// CacheStats reports the cache keyspace as seen from the health endpoint.
type CacheStats struct {
	Status     Status `json:"status"`
	Keys       int64  `json:"keys"`
	UsedMemory string `json:"used_memory,omitempty"`
}

type HealthReport struct {
	Status   Status     `json:"status"`
	Version  string     `json:"version"`
	Database Status     `json:"database"`
	Cache    CacheStats `json:"cache"`
}

type IHealthUsecase interface {
	Check(ctx context.Context) HealthReport
}

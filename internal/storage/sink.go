package storage

import (
	"context"
	"strings"
)

// Sink stores body under dest and returns the final location.
type Sink interface {
	Put(ctx context.Context, dest string, body []byte) (string, error)
}

// Router sends s3:// destinations to S3 and everything else to File.
type Router struct {
	File Sink
	S3   Sink
}

func NewRouter(cfg S3Config) *Router {
	return &Router{File: FileSink{}, S3: NewS3Sink(cfg)}
}

func (r *Router) Put(ctx context.Context, dest string, body []byte) (string, error) {
	if IsS3URL(dest) {
		return r.S3.Put(ctx, dest, body)
	}
	return r.File.Put(ctx, dest, body)
}

func IsS3URL(dest string) bool {
	return strings.HasPrefix(strings.ToLower(dest), "s3://")
}

// Package storage writes export artifacts to their destination: a local file
// path or an object in an S3-compatible bucket (s3://bucket/key).
package storage

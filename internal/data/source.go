package data

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"strings"
)

// Source opens dataset files by path or URI.
type Source interface {
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
}

// FileSource opens files on the local filesystem.
type FileSource struct{}

func (FileSource) Open(_ context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return maybeGunzip(path, f)
}

// MuxSource sends s3:// URIs to S3 and everything else to Files.
type MuxSource struct {
	Files Source
	S3    Source
}

func (m MuxSource) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	if IsS3URI(uri) {
		if m.S3 == nil {
			return nil, errors.New("no S3 source configured for " + uri)
		}
		return m.S3.Open(ctx, uri)
	}
	files := m.Files
	if files == nil {
		files = FileSource{}
	}
	return files.Open(ctx, uri)
}

// NewSource returns a source able to open every given URI. An S3 client is
// only configured when at least one of them is an s3:// URI.
func NewSource(ctx context.Context, uris ...string) (Source, error) {
	for _, u := range uris {
		if IsS3URI(u) {
			s3src, err := NewDefaultS3Source(ctx)
			if err != nil {
				return nil, err
			}
			return MuxSource{Files: FileSource{}, S3: s3src}, nil
		}
	}
	return MuxSource{Files: FileSource{}}, nil
}

type gzipReadCloser struct {
	*gzip.Reader
	underlying io.Closer
}

func (g *gzipReadCloser) Close() error {
	err := g.Reader.Close()
	if cerr := g.underlying.Close(); err == nil {
		err = cerr
	}
	return err
}

// DynamoDB S3 exports are written as .json.gz objects.
func maybeGunzip(name string, rc io.ReadCloser) (io.ReadCloser, error) {
	if !strings.HasSuffix(name, ".gz") {
		return rc, nil
	}
	zr, err := gzip.NewReader(rc)
	if err != nil {
		rc.Close()
		return nil, err
	}
	return &gzipReadCloser{Reader: zr, underlying: rc}, nil
}

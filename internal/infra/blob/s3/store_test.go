package s3

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"pfasscreen/internal/blob/core"
)

func TestMockStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMockForTests()
	if s.Driver() != core.DriverS3 || s.Bucket() != mockBucket {
		t.Fatalf("unexpected store %s %s", s.Driver(), s.Bucket())
	}

	info, err := s.Put(ctx, "screenings/s-1/technical-summary.txt", strings.NewReader("summary"), core.PutOptions{
		ContentType: "text/plain; charset=utf-8",
		Metadata:    map[string]string{"overall-status": "CRITICAL"},
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if info.Size != int64(len("summary")) || info.ETag != "mock" {
		t.Fatalf("unexpected info %+v", info)
	}
	if info.Metadata["overall-status"] != "CRITICAL" {
		t.Fatalf("metadata not round-tripped: %+v", info.Metadata)
	}

	got, rc, err := s.Get(ctx, "screenings/s-1/technical-summary.txt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	if string(body) != "summary" || got.ContentType != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected object %q %+v", body, got)
	}

	if _, err := s.Put(ctx, "screenings/s-1/technical-summary.txt", strings.NewReader("again"), core.PutOptions{}); !errors.Is(err, core.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}

	list, err := s.List(ctx, "screenings/")
	if err != nil || len(list) != 1 || list[0].Key != "screenings/s-1/technical-summary.txt" {
		t.Fatalf("list: %+v %v", list, err)
	}

	ok, err := s.Delete(ctx, "screenings/s-1/technical-summary.txt")
	if err != nil || !ok {
		t.Fatalf("delete: %v %v", ok, err)
	}
	ok, err = s.Delete(ctx, "screenings/s-1/technical-summary.txt")
	if err != nil || ok {
		t.Fatalf("second delete: %v %v", ok, err)
	}
}

func TestMockStoreMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMockForTests()
	if _, err := s.Head(ctx, "nope"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("head: expected ErrNotFound, got %v", err)
	}
	if _, _, err := s.Get(ctx, "nope"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("get: expected ErrNotFound, got %v", err)
	}
	list, err := s.List(ctx, "nothing/")
	if err != nil || len(list) != 0 {
		t.Fatalf("list: %+v %v", list, err)
	}
}

func TestNewRequiresBucket(t *testing.T) {
	if _, err := New(context.Background(), Config{}); err == nil {
		t.Fatalf("expected bucket error")
	}
}

func TestNewWithStaticCredentials(t *testing.T) {
	s, err := New(context.Background(), Config{
		Bucket:          "reports",
		Endpoint:        "http://localhost:9000",
		PathStyle:       true,
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	creds, err := s.client.Options().Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("retrieve credentials: %v", err)
	}
	if creds.AccessKeyID != "minio" || creds.SecretAccessKey != "minio123" {
		t.Fatalf("static credentials not applied: %+v", creds)
	}
	if !s.client.Options().UsePathStyle || s.client.Options().Region != defaultRegion {
		t.Fatalf("unexpected client options")
	}
}

func TestDecodeAWSChunked(t *testing.T) {
	dec, ok := decodeAWSChunked([]byte("3\r\nabc\r\n2;chunk-signature=x\r\nde\r\n0\r\nx-amz-checksum-crc32:AAAA\r\n\r\n"))
	if !ok || string(dec) != "abcde" {
		t.Fatalf("decode: %v %q", ok, dec)
	}
	if _, ok := decodeAWSChunked([]byte("zz\r\nabc\r\n0\r\n")); ok {
		t.Fatalf("expected invalid size")
	}
	if _, ok := decodeAWSChunked([]byte("5\r\nabc\r\n")); ok {
		t.Fatalf("expected short chunk failure")
	}
}

func TestMockTransportUnsupportedMethod(t *testing.T) {
	rt := &mockTransport{objects: make(map[string]mockObject)}
	req, _ := http.NewRequest(http.MethodPatch, "https://mock.s3.local/bucket/key", nil)
	resp, _ := rt.RoundTrip(req)
	if resp.StatusCode != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", resp.StatusCode)
	}
}

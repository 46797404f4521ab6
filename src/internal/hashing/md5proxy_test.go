package hashing

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"
)

const emptyMD5 = "d41d8cd98f00b204e9800998ecf8427e"

type errorReader struct {
	err error
}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, e.err
}

type shortWriter struct {
	limit int
}

func (s *shortWriter) Write(p []byte) (int, error) {
	if len(p) > s.limit {
		return s.limit, io.ErrShortWrite
	}
	return len(p), nil
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

func TestChecksumReaderProxy_Read(t *testing.T) {
	reader := strings.NewReader("hello world")
	proxy := NewMD5ReaderProxy(reader)

	buf := make([]byte, 5)
	n, err := proxy.Read(buf)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("Expected to read 5 bytes, got %d", n)
	}
	if string(buf) != "hello" {
		t.Errorf("Expected 'hello', got '%s'", string(buf))
	}
	if proxy.Size() != 5 {
		t.Errorf("Expected size 5, got %d", proxy.Size())
	}
}

func TestChecksumReaderProxy_ReadError(t *testing.T) {
	expectedErr := errors.New("read error")
	proxy := NewMD5ReaderProxy(&errorReader{err: expectedErr})

	buf := make([]byte, 10)
	if _, err := proxy.Read(buf); err != expectedErr {
		t.Errorf("Expected error %v, got %v", expectedErr, err)
	}
}

func TestChecksumReaderProxy_GetChecksum(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"single line", "||ads.example.com^"},
		{"hosts file", "0.0.0.0 a.example\n0.0.0.0 b.example\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proxy := NewMD5ReaderProxy(strings.NewReader(tt.data))

			allData, err := io.ReadAll(proxy)
			if err != nil {
				t.Fatalf("Failed to read data: %v", err)
			}
			if string(allData) != tt.data {
				t.Errorf("Expected '%s', got '%s'", tt.data, string(allData))
			}

			checksum, err := proxy.GetChecksum()
			if err != nil {
				t.Errorf("Unexpected error getting checksum: %v", err)
			}
			if checksum != md5Hex(tt.data) {
				t.Errorf("Expected checksum %s, got %s", md5Hex(tt.data), checksum)
			}
			if proxy.Size() != int64(len(tt.data)) {
				t.Errorf("Expected size %d, got %d", len(tt.data), proxy.Size())
			}
		})
	}
}

func TestChecksumWriterProxy(t *testing.T) {
	var buf bytes.Buffer
	proxy := NewMD5WriterProxy(&buf)

	if _, err := io.WriteString(proxy, "0.0.0.0 a.example\n"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := io.WriteString(proxy, "0.0.0.0 b.example"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "0.0.0.0 a.example\n0.0.0.0 b.example"
	if buf.String() != expected {
		t.Errorf("Expected written data %q, got %q", expected, buf.String())
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		t.Fatalf("Unexpected error getting checksum: %v", err)
	}
	if checksum != md5Hex(expected) {
		t.Errorf("Expected checksum %s, got %s", md5Hex(expected), checksum)
	}
	if proxy.Size() != int64(len(expected)) {
		t.Errorf("Expected size %d, got %d", len(expected), proxy.Size())
	}
}

func TestChecksumWriterProxy_Empty(t *testing.T) {
	proxy := NewMD5WriterProxy(io.Discard)

	checksum, err := proxy.GetChecksum()
	if err != nil {
		t.Errorf("Unexpected error getting checksum: %v", err)
	}
	if checksum != emptyMD5 {
		t.Errorf("Expected checksum %s, got %s", emptyMD5, checksum)
	}
}

func TestChecksumWriterProxy_ShortWrite(t *testing.T) {
	proxy := NewMD5WriterProxy(&shortWriter{limit: 3})

	n, err := proxy.Write([]byte("abcdef"))
	if err != io.ErrShortWrite {
		t.Errorf("Expected short write error, got %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 bytes written, got %d", n)
	}

	// Only the bytes that reached the writer are hashed
	checksum, _ := proxy.GetChecksum()
	if checksum != md5Hex("abc") {
		t.Errorf("Expected checksum of written prefix, got %s", checksum)
	}
}

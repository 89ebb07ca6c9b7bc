package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"
)

// memStorage records saves in memory.
type memStorage struct {
	files   map[string]string
	deleted []string
	failOn  string
}

func newMemStorage() *memStorage { return &memStorage{files: map[string]string{}} }

func (m *memStorage) Save(_ context.Context, key string, data io.Reader) (string, error) {
	if m.failOn != "" && strings.HasSuffix(key, m.failOn) {
		return "", errors.New("disk full")
	}
	b, _ := io.ReadAll(data)
	m.files[key] = string(b)
	return "/uploads/" + key, nil
}

func (m *memStorage) Delete(_ context.Context, key string) error {
	delete(m.files, key)
	m.deleted = append(m.deleted, key)
	return nil
}

type testFile struct {
	name        string
	contentType string
	body        string
}

// fileHeaders builds real multipart headers by round-tripping through a form.
func fileHeaders(t *testing.T, files ...testFile) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="images"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("CreatePart: %v", err)
		}
		_, _ = part.Write([]byte(f.body))
	}
	_ = w.Close()

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["images"]
}

func newTestUploader(store *memStorage) *Uploader {
	u := New(store)
	u.now = func() time.Time { return time.UnixMilli(1700000000123) }
	n := 0
	u.suffix = func() int { n++; return 41 + n }
	return u
}

func TestUploader_Save_NamesAndOrder(t *testing.T) {
	store := newMemStorage()
	u := newTestUploader(store)
	files := fileHeaders(t,
		testFile{"front.JPG", "image/jpeg", "a"},
		testFile{"plan", "image/png", "b"},
	)

	paths, err := u.Save(context.Background(), "images", files)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	want := []string{
		"/uploads/images-1700000000123-42.JPG",
		"/uploads/images-1700000000123-43",
	}
	if len(paths) != len(want) || paths[0] != want[0] || paths[1] != want[1] {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	if store.files["images-1700000000123-42.JPG"] != "a" {
		t.Fatalf("content not written: %v", store.files)
	}
}

func TestUploader_Save_RejectsBeforeWriting(t *testing.T) {
	cases := []struct {
		name    string
		files   []testFile
		maxSize int64
		want    error
	}{
		{
			name:  "non-image after image",
			files: []testFile{{"ok.png", "image/png", "a"}, {"doc.pdf", "application/pdf", "b"}},
			want:  ErrNotImage,
		},
		{
			name:    "too large",
			files:   []testFile{{"ok.png", "image/png", "a"}, {"big.png", "image/png", "0123456789"}},
			maxSize: 5,
			want:    ErrFileTooLarge,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemStorage()
			u := newTestUploader(store)
			if tc.maxSize > 0 {
				u.maxFileSize = tc.maxSize
			}

			_, err := u.Save(context.Background(), "images", fileHeaders(t, tc.files...))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if len(store.files) != 0 {
				t.Fatalf("files written despite rejection: %v", store.files)
			}
		})
	}
}

func TestUploader_Save_TooManyFiles(t *testing.T) {
	store := newMemStorage()
	u := newTestUploader(store)
	var files []testFile
	for i := 0; i < DefaultMaxFiles+1; i++ {
		files = append(files, testFile{"x.png", "image/png", "x"})
	}

	if _, err := u.Save(context.Background(), "images", fileHeaders(t, files...)); !errors.Is(err, ErrTooManyFiles) {
		t.Fatalf("expected ErrTooManyFiles, got %v", err)
	}
	if len(store.files) != 0 {
		t.Fatalf("files written despite rejection")
	}
}

func TestUploader_Save_WriteFailureCleansUp(t *testing.T) {
	store := newMemStorage()
	store.failOn = "-43.png"
	u := newTestUploader(store)
	files := fileHeaders(t, testFile{"a.png", "image/png", "a"}, testFile{"b.png", "image/png", "b"})

	if _, err := u.Save(context.Background(), "images", files); err == nil {
		t.Fatalf("expected write error")
	}
	if len(store.files) != 0 {
		t.Fatalf("partial upload left behind: %v", store.files)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "images-1700000000123-42.png" {
		t.Fatalf("deleted = %v", store.deleted)
	}
}

func TestUploader_Save_NoFiles(t *testing.T) {
	u := newTestUploader(newMemStorage())
	paths, err := u.Save(context.Background(), "images", nil)
	if err != nil || len(paths) != 0 {
		t.Fatalf("Save(nil) = %v, %v", paths, err)
	}
}

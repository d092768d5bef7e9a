package client

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"
)

const (
	uploadFieldName    = "file"
	defaultContentType = "application/octet-stream"

	// inFlightCeiling keeps reported progress below 1 until the server has
	// answered.
	inFlightCeiling = 0.99
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// multipartBody frames ur as a single-part multipart form. The framing is
// rendered up front so the total length is known and the file itself is
// streamed, never buffered.
func multipartBody(ur UploadRequest) (io.Reader, string, int64, error) {
	if ur.Body == nil {
		return nil, "", 0, errors.New("upload body is nil")
	}
	if ur.SizeBytes < 0 {
		return nil, "", 0, fmt.Errorf("negative upload size %d", ur.SizeBytes)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		uploadFieldName, quoteEscaper.Replace(ur.DisplayName)))
	h.Set("Content-Type", contentTypeOf(ur))
	if _, err := mw.CreatePart(h); err != nil {
		return nil, "", 0, fmt.Errorf("multipart header: %w", err)
	}
	head := bytes.Clone(buf.Bytes())

	buf.Reset()
	if err := mw.Close(); err != nil {
		return nil, "", 0, fmt.Errorf("multipart trailer: %w", err)
	}
	tail := bytes.Clone(buf.Bytes())

	length := int64(len(head)) + ur.SizeBytes + int64(len(tail))
	body := io.MultiReader(bytes.NewReader(head), &sizedReader{r: ur.Body, left: ur.SizeBytes}, bytes.NewReader(tail))
	return body, mw.FormDataContentType(), length, nil
}

// sizedReader passes through exactly left bytes of r. A body that ends early
// or still has data after them fails with ErrBodySizeMismatch instead of
// being silently cut.
type sizedReader struct {
	r    io.Reader
	left int64
}

func (s *sizedReader) Read(b []byte) (int, error) {
	if s.left <= 0 {
		var extra [1]byte
		if _, err := io.ReadAtLeast(s.r, extra[:], 1); err == nil {
			return 0, fmt.Errorf("%w: file grew while uploading", ErrBodySizeMismatch)
		} else if !errors.Is(err, io.EOF) {
			return 0, err
		}
		return 0, io.EOF
	}

	if int64(len(b)) > s.left {
		b = b[:s.left]
	}
	n, err := s.r.Read(b)
	s.left -= int64(n)
	if errors.Is(err, io.EOF) {
		if s.left > 0 {
			return n, fmt.Errorf("%w: %d bytes missing", ErrBodySizeMismatch, s.left)
		}
		err = nil
	}
	return n, err
}

func contentTypeOf(ur UploadRequest) string {
	if ur.MimeType != "" {
		return ur.MimeType
	}
	if t := mime.TypeByExtension(filepath.Ext(ur.DisplayName)); t != "" {
		return t
	}
	return defaultContentType
}

// progressReader reports the fraction of the body consumed by the transport.
type progressReader struct {
	r      io.Reader
	read   int64
	total  int64
	last   float64
	report ProgressFunc
}

func newProgressReader(r io.Reader, total int64, report ProgressFunc) io.Reader {
	if report == nil || total <= 0 {
		return r
	}
	return &progressReader{r: r, total: total, report: report}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		f := float64(p.read) / float64(p.total)
		if f > inFlightCeiling {
			f = inFlightCeiling
		}
		if f > p.last {
			p.last = f
			p.report(f)
		}
	}
	return n, err
}

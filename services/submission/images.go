package submission

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
)

// FileUpload is one image file received from the wizard.
type FileUpload struct {
	Name        string
	ContentType string
	Open        func() (io.ReadCloser, error)
}

// FileUploadsFromMultipart adapts multipart file headers to FileUploads.
func FileUploadsFromMultipart(headers []*multipart.FileHeader) []FileUpload {
	uploads := make([]FileUpload, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		uploads = append(uploads, FileUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return uploads
}

// encodeDataURI reads one upload into an embedded data URI. The declared
// content type is cross-checked against the sniffed one.
func encodeDataURI(upload FileUpload, maxBytes int64) (string, error) {
	rc, err := upload.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", upload.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", upload.Name, err)
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%s exceeds the %d byte image limit", upload.Name, maxBytes)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%s is empty", upload.Name)
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%s is not an image", upload.Name)
	}

	return fmt.Sprintf("data:%s;base64,%s", contentType,
		base64.StdEncoding.EncodeToString(data)), nil
}

// encodeAll converts uploads concurrently, one goroutine per file, and
// returns the results in the original selection order. Gathering before the
// draft append means simultaneous completions cannot lose entries.
func encodeAll(uploads []FileUpload, maxBytes int64) ([]string, error) {
	results := make([]string, len(uploads))
	errs := make([]error, len(uploads))

	var wg sync.WaitGroup
	for i, upload := range uploads {
		wg.Add(1)
		go func(i int, upload FileUpload) {
			defer wg.Done()
			results[i], errs[i] = encodeDataURI(upload, maxBytes)
		}(i, upload)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

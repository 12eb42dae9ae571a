package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
)

const photoField = "profilePhoto"

var errBadForm = errors.New("bad form")

func isMultipart(r *http.Request) bool {
	return mediaType(r) == "multipart/form-data"
}

// isForm reports whether the body is a multipart or urlencoded form.
func isForm(r *http.Request) bool {
	return isMultipart(r) || mediaType(r) == "application/x-www-form-urlencoded"
}

func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadForm, err)
	}
	return nil
}

// parseForm reads a multipart or urlencoded body of at most about maxBytes.
func parseForm(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+(1<<20))
	var err error
	if isMultipart(r) {
		err = r.ParseMultipartForm(maxBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errBadForm, err)
	}
	return nil
}

// formValue returns a posted form field and whether it was sent at all.
func formValue(r *http.Request, key string) (string, bool) {
	vals, ok := r.PostForm[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

func formString(r *http.Request, key string) *string {
	v, ok := formValue(r, key)
	if !ok {
		return nil
	}
	return &v
}

// formText returns a posted form field, or "" when it was not sent.
func formText(r *http.Request, key string) string {
	v, _ := formValue(r, key)
	return v
}

func formInt(r *http.Request, key string) (*int, error) {
	v, ok := formValue(r, key)
	if !ok || v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", errBadForm, key)
	}
	return &n, nil
}

// readPhoto returns the uploaded profile photo bytes, or nil when no file
// was attached.
func readPhoto(r *http.Request, maxBytes int64) ([]byte, error) {
	if !isMultipart(r) {
		return nil, nil
	}
	file, _, err := r.FormFile(photoField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadForm, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadForm, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: photo too large", errBadForm)
	}
	return data, nil
}

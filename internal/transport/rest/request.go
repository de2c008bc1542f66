package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
)

const maxBodyBytes = 1 << 20

// parseID converts a path segment to an id. Segments that are not integers
// map to -1, which never matches a stored id.
func parseID(raw string) int {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return id
}

// decodeBody fills dst from a JSON or application/x-www-form-urlencoded body.
// Bodies of any other type, and empty bodies, leave dst untouched.
// Form values are applied through fromForm.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, fromForm func(get func(string) (string, bool))) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return fmt.Errorf("content type: %w", err)
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/json":
		err := json.NewDecoder(r.Body).Decode(dst)
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return err
		}
		fromForm(func(key string) (string, bool) {
			if !r.PostForm.Has(key) {
				return "", false
			}
			return r.PostForm.Get(key), true
		})
		return nil
	default:
		return nil
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

var (
	errInvalidID   = errors.New("invalid id")
	formDecoder    = newFormDecoder()
	maxFormMemSize = int64(1 << 20)
)

func newFormDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// decodeForm fills dst from the urlencoded or multipart body. Empty values
// leave the field at its zero value.
func decodeForm(r *http.Request, dst interface{}) error {
	if err := r.ParseMultipartForm(maxFormMemSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return formDecoder.Decode(dst, r.PostForm)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// formErrors turns a decoding failure into the field map rendered on pages.
func formErrors(err error) map[string]string {
	out := make(map[string]string)

	var multi schema.MultiError
	if errors.As(err, &multi) {
		for field := range multi {
			out[field] = field + " is invalid"
		}
		return out
	}

	out["form"] = "could not read the submitted form"
	return out
}

func pathID(r *http.Request, key string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[key], 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

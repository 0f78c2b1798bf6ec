package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/fastprodman/pockettrader/internal/apperr"
	"github.com/fastprodman/pockettrader/internal/catalog"
	"github.com/gookit/validate"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a single JSON object into dst and runs its validate tags.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("empty body")
		}

		return apperr.Invalid("invalid JSON: %v", err)
	}

	v := validate.Struct(dst)
	if !v.Validate() {
		return apperr.Invalid("%s", v.Errors.One())
	}

	return nil
}

// identityFromQuery reads ?userID= or ?username=.
func identityFromQuery(r *http.Request) (uint64, string, error) {
	q := r.URL.Query()

	raw := q.Get("userID")
	if raw == "" {
		return 0, q.Get("username"), nil
	}

	// users.id is a BIGINT
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil || id == 0 {
		return 0, "", apperr.Invalid("invalid userID %q", raw)
	}

	return id, "", nil
}

func (h *HandlerProvider) resolveUser(r *http.Request) (uint64, error) {
	id, username, err := identityFromQuery(r)
	if err != nil {
		return 0, err
	}

	return h.svc.Directory.Resolve(r.Context(), id, username)
}

func filterFromQuery(r *http.Request) catalog.Filter {
	q := r.URL.Query()

	return catalog.Filter{
		Rarity:       q.Get("rarity"),
		Type:         q.Get("type"),
		PackName:     q.Get("packName"),
		NameContains: q.Get("name"),
	}
}

package v1handler

import (
	"guidiqo/internal/stockphoto"
	"guidiqo/pkg/controller"
	"guidiqo/pkg/serrors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-faster/jx"
)

// imageCacheControl lets CDNs cache image lookups for an hour and serve them
// stale for a day while revalidating.
const imageCacheControl = "public, s-maxage=3600, stale-while-revalidate=86400"

// imageRequest is the raw image lookup, from the query string or a JSON body.
type imageRequest struct {
	Query, Orientation, Color, Locale, Seed, Provider string
	PerPage, Page                                     string
}

func (req imageRequest) toProxyRequest() (stockphoto.Request, error) {
	out := stockphoto.Request{
		Query:       req.Query,
		Orientation: req.Orientation,
		Color:       req.Color,
		Locale:      req.Locale,
		Seed:        req.Seed,
		Provider:    req.Provider,
	}

	for _, p := range []struct {
		name string
		raw  string
		dst  *int
	}{
		{"perPage", req.PerPage, &out.PerPage},
		{"page", req.Page, &out.Page},
	} {
		raw := strings.TrimSpace(p.raw)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return out, serrors.Wrap(serrors.ErrBadRequest, err, "Le paramètre « %s » doit être un entier.", p.name)
		}
		*p.dst = n
	}

	return out, nil
}

// GetImage serves GET and POST /api/get-image.
func (h *Handler) GetImage(w http.ResponseWriter, r *http.Request) {
	var raw imageRequest
	if r.Method == http.MethodPost {
		var err error
		if raw, err = decodeBody(r, decodeImageRequest); err != nil {
			h.writeError(w, r, err)

			return
		}
	} else {
		q := r.URL.Query()
		raw = imageRequest{
			Query:       q.Get("query"),
			Orientation: q.Get("orientation"),
			Color:       q.Get("color"),
			Locale:      q.Get("locale"),
			Seed:        q.Get("seed"),
			Provider:    q.Get("provider"),
			PerPage:     q.Get("perPage"),
			Page:        q.Get("page"),
		}
	}

	req, err := raw.toProxyRequest()
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	res, err := h.deps.Proxy.GetImage(r.Context(), h.clientIP(r), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Cache-Control", imageCacheControl)
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeImageResult(e, *res) })
}

func (h *Handler) clientIP(r *http.Request) string {
	return controller.GetClientIP(r, h.trustedProxies)
}

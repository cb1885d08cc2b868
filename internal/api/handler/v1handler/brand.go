package v1handler

import (
	"guidiqo/pkg/domain"
	"guidiqo/pkg/serrors"
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
)

func brandID(r *http.Request) (domain.BrandID, error) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		return domain.BrandID{}, serrors.Wrap(serrors.ErrBadRequest, err, "Identifiant de marque invalide.")
	}

	return domain.BrandID(id), nil
}

// ListBrands returns the caller brands, newest first.
func (h *Handler) ListBrands(w http.ResponseWriter, r *http.Request) {
	limit, err := queryUint(r, "limit")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	brands, next, err := h.deps.BrandKit.List(r.Context(),
		GetUserIDFromContext(r.Context()),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("items")
		e.ArrStart()
		for _, b := range brands {
			encodeBrand(e, b)
		}
		e.ArrEnd()
		e.FieldStart("nextCursor")
		if next == "" {
			e.Null()
		} else {
			e.Str(next)
		}
		e.ObjEnd()
	})
}

// CreateBrand creates a brand owned by the caller.
func (h *Handler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	in, err := decodeBody(r, decodeBrandInput)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	user, _ := GetUserFromContext(r.Context())
	brand, err := h.deps.BrandKit.Create(r.Context(), user, in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, func(e *jx.Encoder) { encodeBrand(e, *brand) })
}

// GetBrand returns one brand of the caller.
func (h *Handler) GetBrand(w http.ResponseWriter, r *http.Request) {
	id, err := brandID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	brand, err := h.deps.BrandKit.Get(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeBrand(e, *brand) })
}

// UpdateBrand merges the sent fields into a brand.
func (h *Handler) UpdateBrand(w http.ResponseWriter, r *http.Request) {
	id, err := brandID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	in, err := decodeBody(r, decodeBrandInput)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	brand, err := h.deps.BrandKit.Update(r.Context(), GetUserIDFromContext(r.Context()), id, in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeBrand(e, *brand) })
}

// DeleteBrand soft-deletes a brand.
func (h *Handler) DeleteBrand(w http.ResponseWriter, r *http.Request) {
	id, err := brandID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	if err := h.deps.BrandKit.Delete(r.Context(), GetUserIDFromContext(r.Context()), id); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PreviewBrand renders the export document as HTML.
func (h *Handler) PreviewBrand(w http.ResponseWriter, r *http.Request) {
	id, err := brandID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	html, err := h.deps.BrandKit.Preview(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// ExportBrand streams the PDF export of a brand.
func (h *Handler) ExportBrand(w http.ResponseWriter, r *http.Request) {
	id, err := brandID(r)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	pdf, name, err := h.deps.BrandKit.ExportPDF(r.Context(), GetUserIDFromContext(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

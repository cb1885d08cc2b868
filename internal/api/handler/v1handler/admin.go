package v1handler

import (
	"net/http"

	"github.com/go-faster/jx"
)

// Me records the caller and returns the stored user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, _ := GetUserFromContext(r.Context())
	stored, err := h.deps.Admin.Me(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeUser(e, *stored) })
}

// ListUsers returns a page of users for the console.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, err := queryUint(r, "limit")
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	users, next, err := h.deps.Admin.Users(r.Context(), r.URL.Query().Get("cursor"), limit)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("items")
		e.ArrStart()
		for _, u := range users {
			encodeUser(e, u)
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

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Admin.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeStats(e, *stats) })
}

// GetAnnouncement is public so every visitor sees the banner.
func (h *Handler) GetAnnouncement(w http.ResponseWriter, r *http.Request) {
	a, err := h.deps.Admin.Announcement(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Cache-Control", "public, max-age=60")
	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeAnnouncement(e, *a) })
}

func (h *Handler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	in, err := decodeBody(r, decodeAnnouncementInput)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	user, _ := GetUserFromContext(r.Context())
	a, err := h.deps.Admin.UpdateAnnouncement(r.Context(), user, in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeAnnouncement(e, *a) })
}

// Package v1handler implements the JSON API: brand kits, stock photos,
// suggestions, the user mirror, the super-admin console and newsletters.
package v1handler

import (
	"context"
	"errors"
	"guidiqo/internal/admin"
	"guidiqo/internal/brandkit"
	"guidiqo/internal/newsletter"
	"guidiqo/internal/stockphoto"
	"guidiqo/internal/suggest"
	"guidiqo/pkg/logger"
	"guidiqo/pkg/serrors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// Deps are the services behind the handlers.
type Deps struct {
	BrandKit   brandkit.BrandKit
	Proxy      stockphoto.Proxy
	Suggester  suggest.Suggester
	Admin      admin.Admin
	Newsletter newsletter.Newsletter
}

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Code    string
	Message string
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type Handler struct {
	deps Deps
	sec  *SecHandler
	// trustedProxies is the number of reverse proxies appending to X-Forwarded-For.
	trustedProxies int
}

// New creates a Handler. sec may be nil, in which case every authenticated
// route answers 401.
func New(deps Deps, sec *SecHandler, trustedProxies int) *Handler {
	return &Handler{deps: deps, sec: sec, trustedProxies: trustedProxies}
}

// Register mounts every route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/get-image", h.GetImage)
	mux.HandleFunc("POST /api/get-image", h.GetImage)

	mux.HandleFunc("GET /api/announcement", h.GetAnnouncement)
	mux.HandleFunc("GET /api/newsletter/unsubscribe", h.Unsubscribe)
	mux.HandleFunc("POST /api/newsletter/unsubscribe", h.Unsubscribe)

	mux.HandleFunc("GET /api/me", h.authed(h.Me))

	mux.HandleFunc("GET /api/brands", h.authed(h.ListBrands))
	mux.HandleFunc("POST /api/brands", h.authed(h.CreateBrand))
	mux.HandleFunc("GET /api/brands/{id}", h.authed(h.GetBrand))
	mux.HandleFunc("PUT /api/brands/{id}", h.authed(h.UpdateBrand))
	mux.HandleFunc("PATCH /api/brands/{id}", h.authed(h.UpdateBrand))
	mux.HandleFunc("DELETE /api/brands/{id}", h.authed(h.DeleteBrand))
	mux.HandleFunc("GET /api/brands/{id}/preview", h.authed(h.PreviewBrand))
	mux.HandleFunc("GET /api/brands/{id}/export.pdf", h.authed(h.ExportBrand))

	mux.HandleFunc("POST /api/suggest/{kind}", h.authed(h.Suggest))

	mux.HandleFunc("GET /api/superadmin/users", h.superAdmin(h.ListUsers))
	mux.HandleFunc("GET /api/superadmin/stats", h.superAdmin(h.Stats))
	mux.HandleFunc("PUT /api/superadmin/announcement", h.superAdmin(h.UpdateAnnouncement))
	mux.HandleFunc("POST /api/superadmin/newsletter", h.superAdmin(h.ScheduleNewsletter))
	mux.HandleFunc("GET /api/superadmin/newsletter/{id}", h.superAdmin(h.GetCampaign))
}

// defaultMessages are shown when an error carries no public message.
//
//nolint:gochecknoglobals
var defaultMessages = map[serrors.Kind]string{
	serrors.ErrNotFound:     "ressource introuvable",
	serrors.ErrUnauthorized: "authentification requise",
	serrors.ErrForbidden:    "accès refusé",
	serrors.ErrBadRequest:   "requête invalide",
	serrors.ErrConflict:     "conflit",
	serrors.ErrTimeout:      "délai dépassé",
	serrors.ErrUnavailable:  "service indisponible",
	serrors.ErrRateLimited:  "trop de requêtes",
	serrors.ErrInternal:     "erreur interne",
}

// NewError maps err to an HTTP status and a client-safe body. Internal
// errors are logged and never leak their text.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	status := serrors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: serrors.PublicMessage(err, defaultMessages[kind]),
		},
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if ra, ok := stockphoto.AsRetryAfter(err); ok {
		w.Header().Set("Retry-After", strconv.Itoa(ra.RetryAfterSeconds()))
	}

	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("code")
		e.Str(res.Response.Code)
		e.FieldStart("message")
		e.Str(res.Response.Message)
		e.ObjEnd()
	})
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	encode(e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// decodeBody decodes a bounded JSON request body with decode.
func decodeBody[T any](r *http.Request, decode func(d *jx.Decoder) (T, error)) (T, error) {
	var zero T
	body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return zero, serrors.Wrap(serrors.ErrBadRequest, err, "Corps de requête trop volumineux.")
		}

		return zero, serrors.Wrap(serrors.ErrBadRequest, err, "Corps de requête illisible.")
	}
	if len(body) == 0 {
		return zero, serrors.With(serrors.ErrBadRequest, "Corps de requête JSON attendu.")
	}

	v, err := decode(jx.DecodeBytes(body))
	if err != nil {
		return zero, serrors.Wrap(serrors.ErrBadRequest, err, "Corps de requête JSON invalide.")
	}

	return v, nil
}

// queryUint parses an optional unsigned query parameter.
func queryUint(r *http.Request, name string) (uint, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "Le paramètre « %s » doit être un entier positif.", name)
	}

	return uint(n), nil
}

package v1handler

import (
	"guidiqo/pkg/domain"
	"guidiqo/pkg/serrors"
	"html/template"
	"mime"
	"net/http"
	"strings"

	"github.com/go-faster/jx"
)

//nolint:gochecknoglobals
var unsubscribePage = template.Must(template.New("unsubscribe").Parse(`<!doctype html>
<html lang="fr">
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>Guidiqo</title></head>
<body style="font-family:system-ui,sans-serif;max-width:480px;margin:64px auto;padding:0 16px;color:#111827">
{{if .Email}}<h1>Désinscription confirmée</h1>
<p>L'adresse <strong>{{.Email}}</strong> ne recevra plus la newsletter Guidiqo.</p>
{{else}}<h1>Désinscription impossible</h1>
<p>{{.Message}}</p>
{{end}}</body>
</html>
`))

// ScheduleNewsletter queues a campaign, or sends a test email.
func (h *Handler) ScheduleNewsletter(w http.ResponseWriter, r *http.Request) {
	in, err := decodeBody(r, decodeCampaignInput)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	user, _ := GetUserFromContext(r.Context())
	campaign, err := h.deps.Newsletter.Schedule(r.Context(), user, in)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	status := http.StatusAccepted
	if in.TestRecipient != "" {
		status = http.StatusOK
	}
	writeJSON(w, status, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("campaign")
		encodeCampaign(e, *campaign)
		e.ObjEnd()
	})
}

// GetCampaign returns a campaign and its delivery counters.
func (h *Handler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "Identifiant de campagne invalide."))

		return
	}

	campaign, err := h.deps.Newsletter.Campaign(r.Context(), domain.CampaignID(id))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeCampaign(e, *campaign) })
}

// Unsubscribe serves the link of every newsletter email. GET renders a
// confirmation page, POST is the one-click variant and answers JSON.
func (h *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	token, err := unsubscribeToken(r)
	var email string
	if err == nil {
		email, err = h.deps.Newsletter.Unsubscribe(r.Context(), token)
	}

	if r.Method == http.MethodGet {
		h.writeUnsubscribePage(w, r, email, err)

		return
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("email")
		e.Str(email)
		e.FieldStart("unsubscribed")
		e.Bool(true)
		e.ObjEnd()
	})
}

// unsubscribeToken reads the token from the query string, a JSON body or a
// form body, in that order.
func unsubscribeToken(r *http.Request) (string, error) {
	if token := strings.TrimSpace(r.URL.Query().Get("token")); token != "" {
		return token, nil
	}

	if r.Method == http.MethodPost {
		ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if ct == "application/json" {
			fields, err := decodeBody(r, func(d *jx.Decoder) (string, error) {
				var token string
				err := decodeFields(d, map[string]*string{"token": &token})

				return token, err
			})
			if err != nil {
				return "", err
			}
			if token := strings.TrimSpace(fields); token != "" {
				return token, nil
			}
		} else {
			r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
			if token := strings.TrimSpace(r.PostFormValue("token")); token != "" {
				return token, nil
			}
		}
	}

	return "", serrors.With(serrors.ErrBadRequest, "Lien de désinscription invalide.")
}

func (h *Handler) writeUnsubscribePage(w http.ResponseWriter, r *http.Request, email string, err error) {
	status := http.StatusOK
	data := struct{ Email, Message string }{Email: email}
	if err != nil {
		res := h.NewError(r.Context(), err)
		status = res.StatusCode
		data.Email = ""
		data.Message = res.Response.Message
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = unsubscribePage.Execute(w, data)
}

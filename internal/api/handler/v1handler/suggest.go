package v1handler

import (
	"guidiqo/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
)

// Suggest serves POST /api/suggest/{palette|typography|personality}.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	switch kind {
	case "palette", "typography", "personality":
	default:
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "Type de suggestion inconnu."))

		return
	}

	in, err := decodeBody(r, decodeSuggestInput)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	ctx := r.Context()
	var encode func(e *jx.Encoder)
	switch kind {
	case "palette":
		res, sErr := h.deps.Suggester.Palette(ctx, in)
		err = sErr
		if res != nil {
			encode = func(e *jx.Encoder) {
				e.ObjStart()
				encodeSource(e, res.Source)
				e.FieldStart("colors")
				encodeColors(e, res.Colors)
				e.ObjEnd()
			}
		}
	case "typography":
		res, sErr := h.deps.Suggester.Typography(ctx, in)
		err = sErr
		if res != nil {
			encode = func(e *jx.Encoder) {
				e.ObjStart()
				encodeSource(e, res.Source)
				e.FieldStart("typography")
				encodeTypography(e, res.Typography)
				e.ObjEnd()
			}
		}
	default:
		res, sErr := h.deps.Suggester.Personality(ctx, in)
		err = sErr
		if res != nil {
			encode = func(e *jx.Encoder) {
				e.ObjStart()
				encodeSource(e, res.Source)
				e.FieldStart("personality")
				encodePersonality(e, res.Personality)
				e.ObjEnd()
			}
		}
	}
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, encode)
}

package v1handler

import (
	"guidiqo/internal/admin"
	"guidiqo/internal/brandkit"
	"guidiqo/internal/newsletter"
	"guidiqo/internal/suggest"
	"guidiqo/pkg/domain"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

func encodeTime(e *jx.Encoder, t time.Time) {
	if t.IsZero() {
		e.Null()

		return
	}
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

func encodeStrings(e *jx.Encoder, items []string) {
	e.ArrStart()
	for _, s := range items {
		e.Str(s)
	}
	e.ArrEnd()
}

func encodeColors(e *jx.Encoder, c domain.Colors) {
	e.ObjStart()
	e.FieldStart("primary")
	e.Str(c.Primary)
	e.FieldStart("secondary")
	e.Str(c.Secondary)
	e.FieldStart("accent")
	e.Str(c.Accent)
	e.FieldStart("background")
	e.Str(c.Background)
	e.FieldStart("text")
	e.Str(c.Text)
	e.ObjEnd()
}

func encodeTypography(e *jx.Encoder, t domain.Typography) {
	e.ObjStart()
	e.FieldStart("headingFont")
	e.Str(t.HeadingFont)
	e.FieldStart("bodyFont")
	e.Str(t.BodyFont)
	e.ObjEnd()
}

func encodePersonality(e *jx.Encoder, p domain.Personality) {
	e.ObjStart()
	e.FieldStart("tone")
	e.Str(p.Tone)
	e.FieldStart("archetype")
	e.Str(p.Archetype)
	e.FieldStart("values")
	encodeStrings(e, p.Values)
	e.FieldStart("keywords")
	encodeStrings(e, p.Keywords)
	e.ObjEnd()
}

func encodeCover(e *jx.Encoder, c domain.Cover) {
	e.ObjStart()
	e.FieldStart("url")
	e.Str(c.URL)
	e.FieldStart("alt")
	e.Str(c.Alt)
	e.FieldStart("photographer")
	e.Str(c.Photographer)
	e.FieldStart("photographerUrl")
	e.Str(c.PhotographerURL)
	e.FieldStart("source")
	e.Str(c.Source)
	e.ObjEnd()
}

func encodeBrand(e *jx.Encoder, b domain.Brand) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(b.ID.String())
	e.FieldStart("userId")
	e.Str(b.UserID.String())
	e.FieldStart("name")
	e.Str(b.Name)
	e.FieldStart("tagline")
	e.Str(b.Tagline)
	e.FieldStart("industry")
	e.Str(b.Industry)
	e.FieldStart("description")
	e.Str(b.Description)
	e.FieldStart("colors")
	encodeColors(e, b.Colors)
	e.FieldStart("typography")
	encodeTypography(e, b.Typography)
	e.FieldStart("personality")
	encodePersonality(e, b.Personality)
	e.FieldStart("cover")
	encodeCover(e, b.Cover)
	e.FieldStart("onboardingStep")
	e.Int(b.OnboardingStep)
	e.FieldStart("status")
	e.Str(string(b.Status))
	e.FieldStart("createdAt")
	encodeTime(e, b.CreatedAt)
	e.FieldStart("updatedAt")
	encodeTime(e, b.UpdatedAt)
	e.ObjEnd()
}

func encodeUser(e *jx.Encoder, u domain.User) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(u.ID.String())
	e.FieldStart("email")
	e.Str(u.Email)
	e.FieldStart("name")
	e.Str(u.Name)
	e.FieldStart("role")
	e.Str(string(u.Role))
	e.FieldStart("createdAt")
	encodeTime(e, u.CreatedAt)
	e.FieldStart("lastSeenAt")
	encodeTime(e, u.LastSeenAt)
	e.ObjEnd()
}

func encodeCampaign(e *jx.Encoder, c domain.Campaign) {
	e.ObjStart()
	e.FieldStart("id")
	if c.ID == (domain.CampaignID{}) {
		e.Null()
	} else {
		e.Str(c.ID.String())
	}
	e.FieldStart("subject")
	e.Str(c.Subject)
	e.FieldStart("title")
	e.Str(c.Title)
	e.FieldStart("body")
	e.Str(c.Body)
	e.FieldStart("ctaLabel")
	e.Str(c.CTALabel)
	e.FieldStart("ctaUrl")
	e.Str(c.CTAURL)
	e.FieldStart("status")
	e.Str(string(c.Status))
	e.FieldStart("batchesDone")
	e.Int(c.BatchesDone)
	e.FieldStart("sent")
	e.Int(c.Sent)
	e.FieldStart("skipped")
	e.Int(c.Skipped)
	e.FieldStart("failed")
	e.Int(c.Failed)
	e.FieldStart("createdBy")
	e.Str(c.CreatedBy.String())
	e.FieldStart("createdAt")
	encodeTime(e, c.CreatedAt)
	e.FieldStart("updatedAt")
	encodeTime(e, c.UpdatedAt)
	e.ObjEnd()
}

func encodeAnnouncement(e *jx.Encoder, a domain.Announcement) {
	e.ObjStart()
	e.FieldStart("enabled")
	e.Bool(a.Enabled)
	e.FieldStart("message")
	e.Str(a.Message)
	e.FieldStart("linkLabel")
	e.Str(a.LinkLabel)
	e.FieldStart("linkUrl")
	e.Str(a.LinkURL)
	e.FieldStart("variant")
	e.Str(string(a.Variant))
	e.FieldStart("updatedAt")
	encodeTime(e, a.UpdatedAt)
	e.ObjEnd()
}

func encodeStats(e *jx.Encoder, s admin.Stats) {
	e.ObjStart()
	e.FieldStart("users")
	e.Int64(s.Users)
	e.FieldStart("brands")
	e.Int64(s.Brands)
	e.FieldStart("unsubscribes")
	e.Int64(s.Unsubscribes)
	e.FieldStart("campaigns")
	e.Int64(s.Campaigns)
	e.ObjEnd()
}

func encodeImageResult(e *jx.Encoder, r domain.ImageResult) {
	e.ObjStart()
	e.FieldStart("source")
	e.Str(string(r.Source))
	e.FieldStart("query")
	e.Str(r.Query)
	e.FieldStart("enhancedQuery")
	e.Str(r.EnhancedQuery)
	e.FieldStart("image")
	e.ObjStart()
	e.FieldStart("url")
	e.Str(r.Image.URL)
	e.FieldStart("srcSet")
	e.Str(r.Image.SrcSet)
	e.FieldStart("width")
	e.Int(r.Image.Width)
	e.FieldStart("height")
	e.Int(r.Image.Height)
	e.FieldStart("alt")
	e.Str(r.Image.Alt)
	e.ObjEnd()
	e.FieldStart("photographer")
	if r.Photographer.Name == "" {
		e.Null()
	} else {
		e.ObjStart()
		e.FieldStart("name")
		e.Str(r.Photographer.Name)
		e.FieldStart("url")
		e.Str(r.Photographer.URL)
		e.ObjEnd()
	}
	e.FieldStart("palette")
	e.ObjStart()
	e.FieldStart("base")
	e.Str(r.Palette.Base)
	e.FieldStart("tint")
	e.Str(r.Palette.Tint)
	e.FieldStart("shade")
	e.Str(r.Palette.Shade)
	e.ObjEnd()
	e.FieldStart("attributions")
	e.ArrStart()
	for _, a := range r.Attributions {
		e.ObjStart()
		e.FieldStart("label")
		e.Str(a.Label)
		e.FieldStart("url")
		e.Str(a.URL)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encodeSource(e *jx.Encoder, s suggest.Source) {
	e.FieldStart("source")
	e.Str(string(s))
}

// decodeOptStr decodes a nullable string. null leaves the field unset.
func decodeOptStr(d *jx.Decoder) (*string, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}
	s, err := d.Str()
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func decodeStr(d *jx.Decoder) (string, error) {
	s, err := decodeOptStr(d)
	if err != nil || s == nil {
		return "", err
	}

	return *s, nil
}

func decodeStrings(d *jx.Decoder) ([]string, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}
	out := []string{}
	if err := d.Arr(func(d *jx.Decoder) error {
		s, err := d.Str()
		if err != nil {
			return err
		}
		out = append(out, s)

		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

// decodeFields decodes an object whose fields are all strings.
func decodeFields(d *jx.Decoder, fields map[string]*string) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		dst, ok := fields[key]
		if !ok {
			return d.Skip()
		}
		s, err := decodeStr(d)
		if err != nil {
			return errors.Wrapf(err, "decode %q", key)
		}
		*dst = s

		return nil
	})
}

func decodeBrandInput(d *jx.Decoder) (brandkit.Input, error) {
	var in brandkit.Input
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			in.Name, err = decodeOptStr(d)
		case "tagline":
			in.Tagline, err = decodeOptStr(d)
		case "industry":
			in.Industry, err = decodeOptStr(d)
		case "description":
			in.Description, err = decodeOptStr(d)
		case "colors":
			if d.Next() == jx.Null {
				return d.Null()
			}
			in.Colors = &domain.Colors{}
			err = decodeFields(d, map[string]*string{
				"primary":    &in.Colors.Primary,
				"secondary":  &in.Colors.Secondary,
				"accent":     &in.Colors.Accent,
				"background": &in.Colors.Background,
				"text":       &in.Colors.Text,
			})
		case "typography":
			if d.Next() == jx.Null {
				return d.Null()
			}
			in.Typography = &domain.Typography{}
			err = decodeFields(d, map[string]*string{
				"headingFont": &in.Typography.HeadingFont,
				"bodyFont":    &in.Typography.BodyFont,
			})
		case "personality":
			if d.Next() == jx.Null {
				return d.Null()
			}
			in.Personality, err = decodePersonality(d)
		case "cover":
			if d.Next() == jx.Null {
				return d.Null()
			}
			in.Cover = &domain.Cover{}
			err = decodeFields(d, map[string]*string{
				"url":             &in.Cover.URL,
				"alt":             &in.Cover.Alt,
				"photographer":    &in.Cover.Photographer,
				"photographerUrl": &in.Cover.PhotographerURL,
				"source":          &in.Cover.Source,
			})
		case "onboardingStep":
			if d.Next() == jx.Null {
				return d.Null()
			}
			var step int
			step, err = d.Int()
			in.OnboardingStep = &step
		case "status":
			var s *string
			s, err = decodeOptStr(d)
			if s != nil {
				status := domain.BrandStatus(*s)
				in.Status = &status
			}
		default:
			return d.Skip()
		}

		return errors.Wrapf(err, "decode %q", key)
	})

	return in, err
}

func decodePersonality(d *jx.Decoder) (*domain.Personality, error) {
	var p domain.Personality
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "tone":
			p.Tone, err = decodeStr(d)
		case "archetype":
			p.Archetype, err = decodeStr(d)
		case "values":
			p.Values, err = decodeStrings(d)
		case "keywords":
			p.Keywords, err = decodeStrings(d)
		default:
			return d.Skip()
		}

		return errors.Wrapf(err, "decode %q", key)
	})

	return &p, err
}

func decodeSuggestInput(d *jx.Decoder) (suggest.Input, error) {
	var in suggest.Input
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			in.Name, err = decodeStr(d)
		case "industry":
			in.Industry, err = decodeStr(d)
		case "description":
			in.Description, err = decodeStr(d)
		case "keywords":
			in.Keywords, err = decodeStrings(d)
		default:
			return d.Skip()
		}

		return errors.Wrapf(err, "decode %q", key)
	})

	return in, err
}

func decodeCampaignInput(d *jx.Decoder) (newsletter.CampaignInput, error) {
	var in newsletter.CampaignInput
	err := decodeFields(d, map[string]*string{
		"subject":       &in.Subject,
		"title":         &in.Title,
		"body":          &in.Body,
		"ctaLabel":      &in.CTALabel,
		"ctaUrl":        &in.CTAURL,
		"testRecipient": &in.TestRecipient,
	})

	return in, err
}

func decodeAnnouncementInput(d *jx.Decoder) (admin.AnnouncementInput, error) {
	var in admin.AnnouncementInput
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "enabled":
			if d.Next() == jx.Null {
				return d.Null()
			}
			in.Enabled, err = d.Bool()
		case "message":
			in.Message, err = decodeStr(d)
		case "linkLabel":
			in.LinkLabel, err = decodeStr(d)
		case "linkUrl":
			in.LinkURL, err = decodeStr(d)
		case "variant":
			var v string
			v, err = decodeStr(d)
			in.Variant = domain.AnnouncementVariant(v)
		default:
			return d.Skip()
		}

		return errors.Wrapf(err, "decode %q", key)
	})

	return in, err
}

// decodeImageRequest decodes the POST body of the image endpoint. Numbers
// may be sent as JSON numbers or strings.
func decodeImageRequest(d *jx.Decoder) (imageRequest, error) {
	var req imageRequest
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "query":
			req.Query, err = decodeStr(d)
		case "orientation":
			req.Orientation, err = decodeStr(d)
		case "color":
			req.Color, err = decodeStr(d)
		case "locale":
			req.Locale, err = decodeStr(d)
		case "seed":
			req.Seed, err = decodeScalar(d)
		case "provider":
			req.Provider, err = decodeStr(d)
		case "perPage":
			req.PerPage, err = decodeScalar(d)
		case "page":
			req.Page, err = decodeScalar(d)
		default:
			return d.Skip()
		}

		return errors.Wrapf(err, "decode %q", key)
	})

	return req, err
}

// decodeScalar reads a string or a number as its textual form.
func decodeScalar(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return "", err
		}

		return n.String(), nil
	default:
		return decodeStr(d)
	}
}

func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "parse id")
	}

	return id, nil
}

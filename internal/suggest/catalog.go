package suggest

import "guidiqo/pkg/domain"

//nolint:gochecknoglobals
var palettes = []domain.Colors{
	{Primary: "#1e3a8a", Secondary: "#e0e7ff", Accent: "#f59e0b", Background: "#ffffff", Text: "#0f172a"},
	{Primary: "#065f46", Secondary: "#d1fae5", Accent: "#f97316", Background: "#fafaf9", Text: "#1c1917"},
	{Primary: "#7c3aed", Secondary: "#ede9fe", Accent: "#ec4899", Background: "#ffffff", Text: "#1e1b4b"},
	{Primary: "#b91c1c", Secondary: "#fee2e2", Accent: "#facc15", Background: "#fffbeb", Text: "#292524"},
	{Primary: "#0f766e", Secondary: "#ccfbf1", Accent: "#6366f1", Background: "#f8fafc", Text: "#134e4a"},
	{Primary: "#111827", Secondary: "#e5e7eb", Accent: "#10b981", Background: "#ffffff", Text: "#111827"},
	{Primary: "#9a3412", Secondary: "#ffedd5", Accent: "#0ea5e9", Background: "#fffaf5", Text: "#431407"},
	{Primary: "#be185d", Secondary: "#fce7f3", Accent: "#14b8a6", Background: "#fffafc", Text: "#500724"},
}

//nolint:gochecknoglobals
var typographies = []domain.Typography{
	{HeadingFont: "Playfair Display", BodyFont: "Source Sans 3"},
	{HeadingFont: "Montserrat", BodyFont: "Open Sans"},
	{HeadingFont: "Poppins", BodyFont: "Inter"},
	{HeadingFont: "DM Serif Display", BodyFont: "DM Sans"},
	{HeadingFont: "Space Grotesk", BodyFont: "IBM Plex Sans"},
	{HeadingFont: "Lora", BodyFont: "Nunito"},
	{HeadingFont: "Raleway", BodyFont: "Lato"},
	{HeadingFont: "Archivo Black", BodyFont: "Work Sans"},
}

//nolint:gochecknoglobals
var personalities = []domain.Personality{
	{
		Tone: "chaleureux et rassurant", Archetype: "Le Protecteur",
		Values: []string{"confiance", "proximité", "bienveillance"}, Keywords: []string{"humain", "fiable", "attentionné"},
	},
	{
		Tone: "audacieux et énergique", Archetype: "Le Héros",
		Values: []string{"dépassement", "courage", "performance"}, Keywords: []string{"dynamique", "ambitieux", "direct"},
	},
	{
		Tone: "créatif et inspirant", Archetype: "Le Créateur",
		Values: []string{"imagination", "originalité", "exigence"}, Keywords: []string{"inventif", "esthétique", "libre"},
	},
	{
		Tone: "expert et pédagogue", Archetype: "Le Sage",
		Values: []string{"savoir", "clarté", "rigueur"}, Keywords: []string{"précis", "crédible", "éclairant"},
	},
	{
		Tone: "ludique et décontracté", Archetype: "L'Amuseur",
		Values: []string{"joie", "spontanéité", "partage"}, Keywords: []string{"drôle", "léger", "accessible"},
	},
	{
		Tone: "élégant et exclusif", Archetype: "Le Souverain",
		Values: []string{"excellence", "raffinement", "maîtrise"}, Keywords: []string{"premium", "sobre", "intemporel"},
	},
}

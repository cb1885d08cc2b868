package stockphoto

import (
	"strings"
)

// substitutions rewrites short or ambiguous keywords into queries that return
// usable business imagery. Keys are lowercase; French and English are mixed
// because users type in both.
var substitutions = map[string]string{ //nolint: gochecknoglobals
	"tech":          "technology startup office",
	"technologie":   "technology startup office",
	"startup":       "startup team workspace",
	"saas":          "software team laptop",
	"app":           "mobile app smartphone",
	"mode":          "fashion clothing boutique",
	"fashion":       "fashion clothing boutique",
	"café":          "coffee shop interior",
	"cafe":          "coffee shop interior",
	"coffee":        "coffee shop interior",
	"restaurant":    "restaurant dining table",
	"boulangerie":   "bakery bread pastry",
	"bakery":        "bakery bread pastry",
	"santé":         "healthcare medical clinic",
	"sante":         "healthcare medical clinic",
	"health":        "healthcare medical clinic",
	"bien-être":     "wellness spa relaxation",
	"bien-etre":     "wellness spa relaxation",
	"wellness":      "wellness spa relaxation",
	"sport":         "fitness training gym",
	"fitness":       "fitness training gym",
	"immobilier":    "modern real estate architecture",
	"real estate":   "modern real estate architecture",
	"finance":       "finance business meeting",
	"banque":        "finance business meeting",
	"éducation":     "education classroom learning",
	"education":     "education classroom learning",
	"formation":     "education classroom learning",
	"voyage":        "travel landscape adventure",
	"travel":        "travel landscape adventure",
	"beauté":        "beauty cosmetics skincare",
	"beaute":        "beauty cosmetics skincare",
	"beauty":        "beauty cosmetics skincare",
	"artisanat":     "craftsmanship handmade workshop",
	"bio":           "organic food natural",
	"écologie":      "sustainable nature green",
	"ecologie":      "sustainable nature green",
	"eco":           "sustainable nature green",
	"juridique":     "law office professional",
	"avocat":        "law office professional",
	"law":           "law office professional",
	"conseil":       "consulting business team",
	"consulting":    "consulting business team",
	"marketing":     "marketing creative team",
	"agence":        "creative agency studio",
	"design":        "creative design studio",
	"photo":         "photography studio camera",
	"musique":       "music studio instruments",
	"music":         "music studio instruments",
	"e-commerce":    "online shopping ecommerce",
	"ecommerce":     "online shopping ecommerce",
	"luxe":          "luxury elegant premium",
	"luxury":        "luxury elegant premium",
	"enfant":        "children playful colorful",
	"kids":          "children playful colorful",
	"animaux":       "pets animals care",
	"pets":          "pets animals care",
	"auto":          "car automotive garage",
	"automobile":    "car automotive garage",
	"construction":  "construction building site",
	"btp":           "construction building site",
	"agriculture":   "agriculture farm field",
	"vin":           "vineyard wine cellar",
	"wine":          "vineyard wine cellar",
	"minimaliste":   "minimal abstract background",
	"minimal":       "minimal abstract background",
	"abstrait":      "abstract gradient background",
	"abstract":      "abstract gradient background",
	"nature":        "nature landscape scenic",
	"ville":         "city skyline urban",
	"city":          "city skyline urban",
	"bureau":        "modern office workspace",
	"office":        "modern office workspace",
	"équipe":        "diverse team collaboration",
	"equipe":        "diverse team collaboration",
	"team":          "diverse team collaboration",
	"cuisine":       "cooking kitchen food",
	"food":          "food dish gourmet",
	"gaming":        "gaming setup neon",
	"jeux vidéo":    "gaming setup neon",
	"jeux video":    "gaming setup neon",
	"coiffure":      "hair salon hairdresser",
	"fleuriste":     "florist flowers bouquet",
	"yoga":          "yoga meditation calm",
	"architecture":  "modern architecture building",
	"événementiel":  "event celebration venue",
	"evenementiel":  "event celebration venue",
	"mariage":       "wedding celebration elegant",
	"wedding":       "wedding celebration elegant",
	"hôtel":         "hotel lobby hospitality",
	"hotel":         "hotel lobby hospitality",
	"logistique":    "logistics warehouse shipping",
	"logistics":     "logistics warehouse shipping",
	"crypto":        "blockchain digital finance",
	"ia":            "artificial intelligence technology",
	"ai":            "artificial intelligence technology",
	"cybersécurité": "cyber security technology",
	"cybersecurite": "cyber security technology",
}

// EnhanceQuery normalizes a free-text query and rewrites known keywords into
// richer search terms. A whole-query match wins over per-word substitution.
// Repeated words are removed, keeping the first occurrence.
func EnhanceQuery(q string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(q)), " ")
	if normalized == "" {
		return ""
	}
	if sub, ok := substitutions[normalized]; ok {
		return sub
	}

	words := strings.Fields(normalized)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if sub, ok := substitutions[w]; ok {
			out = append(out, strings.Fields(sub)...)
		} else {
			out = append(out, w)
		}
	}

	return strings.Join(dedupe(out), " ")
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	res := words[:0]
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		res = append(res, w)
	}

	return res
}

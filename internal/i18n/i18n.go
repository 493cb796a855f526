// Package i18n holds the static translation table for donor-facing receipt
// strings. Lookup falls back in two levels: requested language, then the
// baseline language, then the raw key.
package i18n

// DefaultLang is the baseline language every key must carry
const DefaultLang = "en"

// translations maps string key -> language code -> text
var translations = map[string]map[string]string{
	"subject": {
		"en": "Thank you for your donation, {{ name }}",
		"fr": "Merci pour votre don, {{ name }}",
		"es": "Gracias por su donación, {{ name }}",
	},
	"subtitle": {
		"en": "Your generosity protects families in need",
		"fr": "Votre générosité protège les familles dans le besoin",
		"es": "Su generosidad protege a las familias necesitadas",
	},
	"greeting": {
		"en": "Hi {{ name }},",
		"fr": "Bonjour {{ name }},",
		"es": "Hola {{ name }},",
	},
	"received": {
		"en": "We've received your donation of ${{ amount }}. Your gift supports emergency shelter and culturally adapted services for women and children affected by family violence.",
		"fr": "Nous avons reçu votre don de ${{ amount }}. Votre contribution soutient les services d'urgence et les services culturellement adaptés pour les femmes et les enfants touchés par la violence familiale.",
		"es": "Hemos recibido su donación de ${{ amount }}. Su donación apoya refugios de emergencia y servicios culturalmente adaptados para mujeres y niños afectados por la violencia familiar.",
	},
	"totalDonatedLabel": {
		"en": "Total donated",
		"fr": "Total donné",
		"es": "Total donado",
	},
	"peopleHelpedLabel": {
		"en": "People helped",
		"fr": "Personnes aidées",
		"es": "Personas ayudadas",
	},
	"distribution": {
		"en": "Your donation will be distributed shortly to accommodate immediate shelter, professional social work, and community outreach. We prioritize timely support for families in crisis.",
		"fr": "Votre don sera distribué sous peu afin de fournir un abri immédiat, un accompagnement social professionnel et des actions communautaires. Nous priorisons le soutien rapide aux familles en crise.",
		"es": "Su donación será distribuida en breve para proporcionar refugio inmediato, trabajo social profesional y alcance comunitario. Priorizamos el apoyo oportuno a las familias en crisis.",
	},
	"nextStepsTitle": {
		"en": "Next steps",
		"fr": "Étapes suivantes",
		"es": "Próximos pasos",
	},
	"dashboardUpdate": {
		"en": "Your dashboard will update shortly with your new total",
		"fr": "Votre tableau de bord sera mis à jour sous peu avec votre nouveau total",
		"es": "Su panel se actualizará en breve con su nuevo total",
	},
	"programUpdates": {
		"en": "We'll publish program updates and stories about how donations are used.",
		"fr": "Nous publierons des mises à jour du programme et des histoires sur l'utilisation des dons.",
		"es": "Publicaremos actualizaciones del programa e historias sobre cómo se usan las donaciones.",
	},
	"receiptAvailable": {
		"en": "Your official receipt (if applicable) will be available in your dashboard.",
		"fr": "Votre reçu officiel (le cas échéant) sera disponible dans votre tableau de bord.",
		"es": "Su recibo oficial (si corresponde) estará disponible en su panel.",
	},
	"progressTowardBadge": {
		"en": "Progress toward next badge",
		"fr": "Progression vers le prochain badge",
		"es": "Progreso hacia la siguiente insignia",
	},
	"progressPercentLabel": {
		"en": "% toward the next badge",
		"fr": "% vers le prochain badge",
		"es": "% hacia la siguiente insignia",
	},
	"visitDashboard": {
		"en": "Visit your dashboard to see detailed badge progress.",
		"fr": "Visitez votre tableau de bord pour voir la progression détaillée des badges.",
		"es": "Visite su panel para ver el progreso detallado de las insignias.",
	},
	"signature": {
		"en": "With gratitude,\nShield of Athena Team",
		"fr": "Avec gratitude,\nL'équipe Shield of Athena",
		"es": "Con gratitud,\nEquipo Shield of Athena",
	},
}

// T resolves a translated string for the given language code.
// Fallback order: requested language, DefaultLang, the key itself.
func T(lang, key string) string {
	entry, ok := translations[key]
	if !ok {
		return key
	}
	if text, ok := entry[lang]; ok && text != "" {
		return text
	}
	if text, ok := entry[DefaultLang]; ok && text != "" {
		return text
	}
	return key
}

// Supported reports whether any string exists for the language code
func Supported(lang string) bool {
	for _, entry := range translations {
		if _, ok := entry[lang]; ok {
			return true
		}
	}
	return false
}

package pipeline

import "strings"

// User-facing message keys. The catalog is data: upstream wording changes or
// new locales only ever touch this file.
const (
	msgInvalidKey         = "invalid_key"
	msgQuota              = "quota"
	msgBilling            = "billing"
	msgBadRequest         = "bad_request"
	msgForbidden          = "forbidden"
	msgRateLimited        = "rate_limited"
	msgServerError        = "server_error"
	msgGeneric            = "generic"
	msgMissingCredential  = "missing_credential"
	msgCredentialTooShort = "credential_too_short"
	msgMissingInput       = "missing_input"
	msgNotesOK            = "notes_ok"
	msgNotesPlaceholder   = "notes_placeholder"
)

var catalog = map[string]map[string]string{
	"id": {
		msgInvalidKey:         "Kunci API tidak valid. Harap periksa kembali kunci API Gemini Anda.",
		msgQuota:              "Kuota API telah habis. Harap coba lagi nanti atau upgrade akun Anda.",
		msgBilling:            "Fitur ini memerlukan akun berbayar. Harap aktifkan billing di Google Cloud Console.",
		msgBadRequest:         "Permintaan tidak valid. Harap periksa input Anda dan coba lagi.",
		msgForbidden:          "Akses ditolak. Pastikan kunci API Anda memiliki izin yang cukup.",
		msgRateLimited:        "Terlalu banyak permintaan. Harap tunggu sebentar sebelum mencoba lagi.",
		msgServerError:        "Kesalahan server. Harap coba lagi nanti.",
		msgGeneric:            "Kesalahan Gemini API: %s",
		msgMissingCredential:  "Kunci API tidak boleh kosong. Harap masukkan kunci API Gemini.",
		msgCredentialTooShort: "Kunci API terlalu pendek. Harap periksa kembali kunci API Gemini Anda.",
		msgMissingInput:       "Harap masukkan URL produk atau unggah gambar.",
		msgNotesOK:            "Konten dibuat oleh Gemini API. Semua fitur berfungsi.",
		msgNotesPlaceholder:   "Konten dibuat oleh Gemini API. Gambar adalah placeholder (API gambar memerlukan billing): %s",
	},
	"en": {
		msgInvalidKey:         "The API key is not valid. Please double-check your Gemini API key.",
		msgQuota:              "The API quota has been exhausted. Please try again later or upgrade your account.",
		msgBilling:            "This feature requires a paid account. Please enable billing in the Google Cloud Console.",
		msgBadRequest:         "The request was invalid. Please check your input and try again.",
		msgForbidden:          "Access denied. Make sure your API key has sufficient permissions.",
		msgRateLimited:        "Too many requests. Please wait a moment before trying again.",
		msgServerError:        "Server error. Please try again later.",
		msgGeneric:            "Gemini API error: %s",
		msgMissingCredential:  "The API key must not be empty. Please enter your Gemini API key.",
		msgCredentialTooShort: "The API key is too short. Please double-check your Gemini API key.",
		msgMissingInput:       "Please provide a product URL or upload an image.",
		msgNotesOK:            "Content generated by the Gemini API. All features worked.",
		msgNotesPlaceholder:   "Content generated by the Gemini API. Images are placeholders (the image API requires billing): %s",
	},
}

// normalizeLocale collapses any locale tag to one of the supported catalogs,
// defaulting to Indonesian.
func normalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if strings.HasPrefix(locale, "en") {
		return "en"
	}
	return "id"
}

func message(locale, key string) string {
	if m, ok := catalog[normalizeLocale(locale)]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return catalog["id"][key]
}

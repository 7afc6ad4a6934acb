package models

// LanguageInfo is one entry of the supported-languages catalog.
type LanguageInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SupportedLanguagesResponse is the body of the languages endpoint.
type SupportedLanguagesResponse struct {
	SupportedLanguages []LanguageInfo `json:"supportedLanguages"`
}

// supportedLanguages is the fixed catalog served by the languages endpoint.
// Order matters to callers; do not reorder.
var supportedLanguages = []LanguageInfo{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ru", Name: "Russian"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "zh", Name: "Chinese"},
	{Code: "ar", Name: "Arabic"},
	{Code: "hi", Name: "Hindi"},
	{Code: "nl", Name: "Dutch"},
	{Code: "sv", Name: "Swedish"},
	{Code: "no", Name: "Norwegian"},
	{Code: "da", Name: "Danish"},
	{Code: "fi", Name: "Finnish"},
}

// SupportedLanguages returns the catalog. Callers must not mutate the
// returned slice.
func SupportedLanguages() []LanguageInfo {
	return supportedLanguages
}

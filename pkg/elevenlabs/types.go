package elevenlabs

// TranscriptionResponse is the response from the speech-to-text API.
type TranscriptionResponse struct {
	LanguageCode        string  `json:"language_code"`
	LanguageProbability float64 `json:"language_probability"`
	Text                string  `json:"text"`
}

// ErrorResponse is the error envelope from the ElevenLabs API.
type ErrorResponse struct {
	Detail struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"detail"`
}

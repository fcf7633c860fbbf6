package dto

// ChatRequest carries one incoming chat message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the orchestrator's output contract. BankURL is set only
// when product-opening intent was detected.
type ChatResponse struct {
	Reply        string  `json:"reply"`
	OpenBankSite bool    `json:"open_bank_site"`
	BankURL      *string `json:"bank_url"`
}

// TranscribeResponse carries the recognized text of an uploaded audio clip.
type TranscribeResponse struct {
	TranscribedText string `json:"transcribed_text"`
}

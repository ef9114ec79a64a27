package domain

// Credential é o registro único de credenciais da Meta usado pelo relay de
// conversões. Os campos webhook e link_instrucao são gerenciados diretamente
// no banco de dados e nunca são editados por esta aplicação.
type Credential struct {
	ID               int64  `json:"id"`
	PixelID          int64  `json:"pixel_id"`
	PageID           *int64 `json:"page_id"`
	AccessToken      string `json:"access_token"`
	WebhookURL       string `json:"webhook"`
	InstructionsLink string `json:"link_instrucao"`
}

// SaveCredentialsRequest carrega os campos editáveis como o operador os
// digitou. Os identificadores chegam como texto e são validados antes de
// qualquer escrita no banco.
type SaveCredentialsRequest struct {
	PixelID     string `json:"pixel_id"`
	PageID      string `json:"page_id"`
	AccessToken string `json:"access_token"`
}

// CredentialResponse é a visão da credencial devolvida para a tela de
// configuração. O access token vem mascarado, a menos que a revelação tenha
// sido solicitada explicitamente.
type CredentialResponse struct {
	Configured       bool   `json:"configured"`
	PixelID          string `json:"pixel_id,omitempty"`
	PageID           string `json:"page_id,omitempty"`
	AccessToken      string `json:"access_token,omitempty"`
	TokenRevealed    bool   `json:"token_revealed"`
	WebhookURL       string `json:"webhook,omitempty"`
	InstructionsLink string `json:"link_instrucao,omitempty"`
}

// SaveCredentialsResponse confirma o salvamento para o operador
type SaveCredentialsResponse struct {
	Message    string      `json:"message"`
	Credential *Credential `json:"credential"`
}

// CopyValueResponse entrega o valor bruto para a área de transferência do cliente
type CopyValueResponse struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

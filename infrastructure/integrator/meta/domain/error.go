package metadomain

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// 190 = token inválido ou expirado; subcódigos 460, 463 e 467 também indicam problema de sessão
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// IsThrottling verifica se o erro é de limite de requisições da Graph API
func (e *ErrorResponse) IsThrottling() bool {
	switch e.Error.Code {
	case 4, 17, 32, 613:
		return true
	}
	return e.Error.Code >= 80000 && e.Error.Code <= 80014
}

// IsTransient indica se vale a pena tentar novamente
func (e *ErrorResponse) IsTransient() bool {
	if e.IsTokenExpired() {
		return false
	}
	return e.IsThrottling() || e.Error.Code == 1 || e.Error.Code == 2
}

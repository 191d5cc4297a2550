package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	metadomain "github.com/vfg2006/ads-health-monitor/infrastructure/integrator/meta/domain"
)

// attemptError descreve a falha de uma única tentativa
type attemptError struct {
	statusCode int
	code       int
	message    string
	transient  bool
	err        error
}

func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, err
	}
	if errorResp.Error.Message == "" && errorResp.Error.Code == 0 {
		return nil, fmt.Errorf("corpo sem objeto error")
	}
	return &errorResp, nil
}

// handleResponse lê o corpo e classifica respostas de erro em transitórias ou terminais
func handleResponse(resp *http.Response) ([]byte, *attemptError) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &attemptError{
			statusCode: resp.StatusCode,
			message:    fmt.Sprintf("erro ao ler resposta: %v", err),
			transient:  true,
			err:        err,
		}
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	return nil, classifyErrorResponse(resp.StatusCode, body)
}

func classifyErrorResponse(statusCode int, body []byte) *attemptError {
	attempt := &attemptError{
		statusCode: statusCode,
		transient:  statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError,
	}

	errorResp, parseErr := ParseErrorResponse(body)
	if parseErr != nil {
		attempt.message = strings.TrimSpace(string(body))
		if attempt.message == "" {
			attempt.message = http.StatusText(statusCode)
		}
		return attempt
	}

	attempt.code = errorResp.Error.Code
	attempt.message = errorResp.Error.Message

	switch {
	case errorResp.IsTokenExpired():
		attempt.transient = false
	case errorResp.IsTransient():
		attempt.transient = true
	}

	return attempt
}

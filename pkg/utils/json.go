package utils

import (
	jsoniter "github.com/json-iterator/go"
)

// PrettyJSON serializa com indentação de dois espaços
func PrettyJSON(in any) (string, error) {
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

package utils

import (
	jsoniter "github.com/json-iterator/go"
)

// payloadJSON não escapa HTML: "<" e "&" chegam ao envio como foram digitados
var payloadJSON = jsoniter.Config{
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

// PrettyJson serializa in com indentação de dois espaços, mantendo a ordem de declaração dos campos
func PrettyJson(in any) (string, error) {
	buffer, err := payloadJSON.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", err
	}

	return string(buffer), nil
}

package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// sessionIDSize mantém os IDs de sessão longos o bastante para não serem adivinhados
const sessionIDSize = 21

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, sessionIDSize)
}

package service

import (
	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"

	"fitbook_backend/internals/configs"
)

type GoogleClaims struct {
	Sub   string
	Email string
	Name  string
}

// VerifyGoogleIDToken validates the assertion against our client ID and
// returns the identity claims.
func VerifyGoogleIDToken(idToken string) (GoogleClaims, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return GoogleClaims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return GoogleClaims{}, fiber.NewError(fiber.StatusInternalServerError, "Failed to decode ID token")
	}

	return GoogleClaims{
		Sub:   claimSet.Sub,
		Email: claimSet.Email,
		Name:  claimSet.Name,
	}, nil
}

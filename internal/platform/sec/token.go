// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// InviteClaims is the payload embedded inside an organization invitation token.
//
// The token is handed to the invited address out-of-band (email); presenting
// it back to the accept endpoint proves control of that address. Signing it
// means no invitation state needs to exist until the invite is accepted.
type InviteClaims struct {
	jwt.RegisteredClaims

	OrganizationID string `json:"org"`
	Email          string `json:"eml"`
	Role           string `json:"rol"`
}

// InviteSigner signs and verifies organization invitation tokens using HS256.
type InviteSigner struct {
	secret []byte
	issuer string
}

// NewInviteSigner creates an [InviteSigner] keyed by the shared session secret.
func NewInviteSigner(secret, issuer string) *InviteSigner {
	return &InviteSigner{secret: []byte(secret), issuer: issuer}
}

// Sign creates an invitation token for the given organization, email, and role.
func (signer *InviteSigner) Sign(organizationID, email, role string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := InviteClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    signer.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		OrganizationID: organizationID,
		Email:          email,
		Role:           role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(signer.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign invite token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and expiry of an invitation token.
func (signer *InviteSigner) Verify(tokenString string) (*InviteClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &InviteClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return signer.secret, nil
	}, jwt.WithIssuer(signer.issuer))

	if err != nil {
		return nil, fmt.Errorf("sec: invalid invite token: %w", err)
	}

	claims, ok := token.Claims.(*InviteClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid invite token claims")
	}

	return claims, nil
}

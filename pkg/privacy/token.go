package privacy

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/nacl/secretbox"
)

// TokenPrefix — признак токена в URL (email в открытом виде префикса не имеет).
const TokenPrefix = "t."

const nonceSize = 24

var (
	ErrInvalidToken = errors.New("invalid email token")
	ErrNoTokenKey   = errors.New("email token key is not configured")
)

// EmailTokens — шифрует email в URL-safe токен (secretbox: XSalsa20 + Poly1305) и обратно.
type EmailTokens struct {
	key [32]byte
}

// NewEmailTokens — ключ выводится из секрета; пустой секрет — ErrNoTokenKey.
func NewEmailTokens(secret string) (*EmailTokens, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrNoTokenKey
	}
	return &EmailTokens{key: blake2b.Sum256([]byte(secret))}, nil
}

// IsToken — строка похожа на токен.
func IsToken(s string) bool { return strings.HasPrefix(s, TokenPrefix) }

// Encrypt — токен для email.
func (e *EmailTokens) Encrypt(email string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("nonce: %w", err)
	}
	sealed := secretbox.Seal(nonce[:], []byte(email), &nonce, &e.key)
	return TokenPrefix + base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decrypt — email из токена; подделка или чужой ключ — ErrInvalidToken.
func (e *EmailTokens) Decrypt(token string) (string, error) {
	if !IsToken(token) {
		return "", ErrInvalidToken
	}
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(token, TokenPrefix))
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrInvalidToken
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &e.key)
	if !ok {
		return "", ErrInvalidToken
	}
	return string(plain), nil
}

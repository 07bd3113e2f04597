// Пакет privacy — псевдонимы email для логов и шифрованные токены email для URL.
package privacy

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	pseudonymPrefix = "email#"
	pseudonymSize   = 16 // BLAKE2b-128
)

// Pseudonymizer — детерминированный псевдоним email (keyed BLAKE2b).
// Один и тот же email с одним ключом всегда даёт один и тот же псевдоним, поэтому логи
// одного клиента можно связать, не раскрывая адрес.
type Pseudonymizer struct {
	key     []byte
	enabled bool
}

// NewPseudonymizer — конструктор. enabled=false — email пишется в логи как есть.
func NewPseudonymizer(key string, enabled bool) *Pseudonymizer {
	k := []byte(key)
	if len(k) > blake2b.Size {
		sum := blake2b.Sum512(k)
		k = sum[:]
	}
	return &Pseudonymizer{key: k, enabled: enabled}
}

// Email — псевдоним для адреса (регистр и пробелы по краям не влияют).
func (p *Pseudonymizer) Email(email string) string {
	norm := strings.ToLower(strings.TrimSpace(email))
	if p == nil || !p.enabled || norm == "" {
		return norm
	}

	h, err := blake2b.New(pseudonymSize, p.key)
	if err != nil {
		// ключ уже нормализован по длине, сюда попасть нельзя
		return pseudonymPrefix + "invalid"
	}
	_, _ = h.Write([]byte(norm))
	return pseudonymPrefix + hex.EncodeToString(h.Sum(nil))
}

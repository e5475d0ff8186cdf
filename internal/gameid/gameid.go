// Package gameid names games with sortable 26 character identifiers: a
// UUIDv7 encoded in Crockford base32, as TypeID does.
package gameid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded game ID.
const Length = 26

// Generator produces game IDs. A nil reader uses crypto/rand.
type Generator struct {
	reader io.Reader
}

// NewGenerator creates a generator drawing its random bits from r.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{reader: r}
}

// Generate creates a new game ID from crypto/rand
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a new game ID
func (g *Generator) Generate() string {
	var (
		id  uuid.UUID
		err error
	)
	if g.reader != nil {
		id, err = uuid.NewV7FromReader(g.reader)
	} else {
		id, err = uuid.NewV7()
	}
	if err != nil {
		panic("failed to generate game id: " + err.Error())
	}
	return Encode(id)
}

// Encode renders a UUID as a 26 character base32 string. The 128 bits are
// read as a 130 bit big-endian number with two leading zero bits, so the first
// character is always 0-7.
func Encode(id uuid.UUID) string {
	result := make([]byte, Length)
	// Walk the value 5 bits at a time from the least significant end.
	var acc uint16
	bits := 0
	pos := Length - 1
	for i := len(id) - 1; i >= 0; i-- {
		acc |= uint16(id[i]) << bits
		bits += 8
		for bits >= 5 {
			result[pos] = alphabet[acc&0x1f]
			pos--
			acc >>= 5
			bits -= 5
		}
	}
	result[pos] = alphabet[acc&0x1f]
	return string(result)
}

// Validate checks if a game ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}

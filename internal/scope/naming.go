package scope

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
)

const (
	suffixLength   = 10
	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

var viewNamePattern = regexp.MustCompile(`^[a-z]+_[0-9]+_[a-z0-9]{10}$`)

// NewSuffix draws a random view name suffix.
func NewSuffix() (string, error) {
	alphabetSize := big.NewInt(int64(len(suffixAlphabet)))
	suffix := make([]byte, suffixLength)

	for i := range suffix {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to draw view suffix: %w", err)
		}

		suffix[i] = suffixAlphabet[n.Int64()]
	}

	return string(suffix), nil
}

// ViewName is <logical>_<credentialId>_<suffix>.
func ViewName(table Table, credentialID int64, suffix string) string {
	return table.Name() + "_" + strconv.FormatInt(credentialID, 10) + "_" + suffix
}

// IsViewName reports whether name has the shape of a generated view name.
func IsViewName(name string) bool {
	return viewNamePattern.MatchString(name)
}

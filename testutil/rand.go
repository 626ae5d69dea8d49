package testutil

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// docker container names only allow a restricted alphabet
const containerNameCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// ContainerName appends a short random suffix to prefix, so a leftover
// container from an earlier run does not block starting a new one.
func ContainerName(prefix string) (string, error) {
	suffix := make([]byte, 4)
	for i := range suffix {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(containerNameCharset))))
		if err != nil {
			return "", fmt.Errorf("failed to generate container name: %w", err)
		}
		suffix[i] = containerNameCharset[num.Int64()]
	}

	return prefix + "-" + string(suffix), nil
}

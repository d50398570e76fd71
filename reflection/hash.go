package reflection

import (
	"fmt"

	"github.com/minio/highwayhash"
	"gopkg.in/yaml.v3"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash computes a 64-bit highwayhash of data
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Fingerprint hashes the reachable tree; two projects with the same shape, names, comments
// and sections produce the same value regardless of arena layout
func Fingerprint(p *Project) (uint64, error) {
	data, err := yaml.Marshal(NewSnapshot(p))
	if err != nil {
		return 0, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return Hash(data)
}

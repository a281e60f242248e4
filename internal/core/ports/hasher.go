package ports

// Digester computes content digests of files.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// ComputeFileDigest returns a stable hex digest of the file's contents.
	ComputeFileDigest(path string) (string, error)
}

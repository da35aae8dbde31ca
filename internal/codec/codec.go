package codec

import (
	"fmt"
	"io"

	"topogen/internal/domain"
)

// Exporter writes a generated network in some file format
type Exporter interface {
	Export(network *domain.Network, w io.Writer) error
	Format() string
}

// ForFormat returns the exporter for a format name
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	case "json":
		return NewJSONCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q (yaml | json)", format)
	}
}

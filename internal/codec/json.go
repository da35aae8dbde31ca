package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"topogen/internal/domain"
)

// JSONCodec handles JSON export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Export exports the network to JSON
func (c *JSONCodec) Export(network *domain.Network, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(newDocument(network)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

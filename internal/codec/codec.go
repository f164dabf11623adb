// Package codec turns warbands into shareable text codes and back. The
// wire format is a short-key JSON projection wrapped in base64; decoding
// rehydrates items from the catalog and mints fresh ids, so a code can be
// imported any number of times without colliding with existing rosters.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/warbandforge/warband-api/internal/catalog"
	wb "github.com/warbandforge/warband-api/internal/entities/warband"
	"github.com/warbandforge/warband-api/internal/errors"
	"github.com/warbandforge/warband-api/internal/pkg/idgen"
)

// Version is the current wire schema version. Codes carrying any other
// version are rejected.
const Version = 1

// Config holds dependencies for the codec.
type Config struct {
	Catalog catalog.Provider
	IDGen   idgen.Generator
}

// Validate ensures required dependencies are set
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}
	return vb.Build()
}

// Codec encodes and decodes warband codes against a catalog.
type Codec struct {
	catalog catalog.Provider
	idgen   idgen.Generator
}

// New creates a codec with the given configuration
func New(cfg *Config) (*Codec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Codec{
		catalog: cfg.Catalog,
		idgen:   cfg.IDGen,
	}, nil
}

// Encode produces the shareable code for a warband. Ids are blanked on
// the wire; they are reminted on import.
func (c *Codec) Encode(w wb.Warband) (string, error) {
	payload, err := json.Marshal(compressWarband(w))
	if err != nil {
		return "", errors.Wrap(err, "failed to encode warband")
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

// decodeErr is the single error shape for every malformed code. Callers
// get no partial warband and no hint which layer rejected the input.
func decodeErr() error {
	return errors.InvalidArgument("invalid warband code")
}

// Decode parses a shareable code back into a warband with fresh ids.
func (c *Codec) Decode(code string) (wb.Warband, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(code))
	if err != nil {
		return wb.Warband{}, decodeErr()
	}

	var compressed wireWarband
	if err := json.Unmarshal(raw, &compressed); err != nil {
		return wb.Warband{}, decodeErr()
	}
	if err := compressed.validate(); err != nil {
		return wb.Warband{}, decodeErr()
	}

	return c.expandWarband(compressed), nil
}

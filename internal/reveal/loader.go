package reveal

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/samigvnc/csgo-frontend/internal/utils"
	"github.com/samigvnc/csgo-frontend/internal/validation"
)

// BandFileVersion is the schema version of reveal band files.
const BandFileVersion = "1.0"

type bandFile struct {
	Version string    `json:"version"`
	Bands   BandTable `json:"bands"`
}

// LoadBands reads a band table from path after validating it against schemaPath.
// A missing file is not an error: the default table is returned.
func LoadBands(path, schemaPath string, v validation.SchemaValidator) (BandTable, error) {
	if path == "" {
		return DefaultBands(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Warn(LogMsgBandsFallback, "path", path)
		return DefaultBands(), nil
	}

	if v != nil && schemaPath != "" {
		if err := v.ValidateFile(path, schemaPath); err != nil {
			return nil, fmt.Errorf("invalid band file %s: %w", path, err)
		}
	}

	var file bandFile
	if err := utils.LoadJSON(path, &file); err != nil {
		return nil, err
	}
	if file.Version != BandFileVersion {
		return nil, fmt.Errorf("band file %s has version %q, want %q", path, file.Version, BandFileVersion)
	}
	if err := file.Bands.Validate(); err != nil {
		return nil, fmt.Errorf("invalid band file %s: %w", path, err)
	}

	slog.Info(LogMsgBandsLoaded, "path", path, "bands", len(file.Bands))
	return file.Bands, nil
}

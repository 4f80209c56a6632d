package battle

import (
	"errors"

	"github.com/samigvnc/csgo-frontend/internal/domain"
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

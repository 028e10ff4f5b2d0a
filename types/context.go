package types

import (
	"log/slog"

	"github.com/pablor21/cenum/config"
)

// ProcessContext carries everything a generation run needs.
type ProcessContext struct {
	Config     *config.Config
	Logger     *slog.Logger
	ModulePath string // module path of the scanned project, when detectable
}

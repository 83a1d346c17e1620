package warnings

import (
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// rotationRules rejects rotation settings that would be silently ignored:
// rotation needs a file to rotate, and the retention knobs only apply once
// a size limit turns rotation on.
func rotationRules(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	if cfg.FileMaxSizeMB > 0 && cfg.OutputPath == emptyString {
		sl.ReportError(cfg.FileMaxSizeMB, "FileMaxSizeMB", "file_max_size_mb", "required_with_output", emptyString)
	}
	if cfg.FileMaxSizeMB > 0 {
		return
	}
	if cfg.FileMaxBackups > 0 {
		sl.ReportError(cfg.FileMaxBackups, "FileMaxBackups", "file_max_backups", "requires_rotation", emptyString)
	}
	if cfg.FileMaxAgeDays > 0 {
		sl.ReportError(cfg.FileMaxAgeDays, "FileMaxAgeDays", "file_max_age_days", "requires_rotation", emptyString)
	}
	if cfg.FileCompress {
		sl.ReportError(cfg.FileCompress, "FileCompress", "file_compress", "requires_rotation", emptyString)
	}
}

func validateConfig(cfg *Config) error {
	const op errors.Op = "warnings.validateConfig"
	if cfg == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}

	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterStructValidation(rotationRules, Config{})
	})

	if err := validate.Struct(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}

	return nil
}

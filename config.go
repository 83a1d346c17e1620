package warnings

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/utils"
)

// Config is the warning policy. It is read once by New and never consulted
// again afterwards.
type Config struct {
	// Enabled turns emission on. The zero value leaves the subsystem disabled.
	Enabled bool `toml:"enabled"`
	// OutputPath redirects warnings to a file appended to by the sink.
	OutputPath string `toml:"output_path" validate:"omitempty,max=4096"`

	TraceWarnings    bool `toml:"trace_warnings"`
	TraceDeprecation bool `toml:"trace_deprecation"`
	NoDeprecation    bool `toml:"no_deprecation"`
	ThrowDeprecation bool `toml:"throw_deprecation"`

	// ReleaseLabel and PID form the "(label:pid) " output prefix.
	ReleaseLabel string `toml:"release_label" validate:"omitempty,printascii,excludesall=:()"`
	PID          int    `toml:"pid" validate:"gte=0"`

	// Rotation of the warning file. Zero FileMaxSizeMB disables rotation.
	FileMaxSizeMB  int  `toml:"file_max_size_mb" validate:"gte=0"`
	FileMaxBackups int  `toml:"file_max_backups" validate:"gte=0"`
	FileMaxAgeDays int  `toml:"file_max_age_days" validate:"gte=0"`
	FileCompress   bool `toml:"file_compress"`

	// QueueSize bounds the pending file appends. Zero selects the default.
	QueueSize int `toml:"queue_size" validate:"gte=0,lte=65536"`
}

// LoadConfig decodes a TOML policy file. Keys absent from the file keep
// their zero values; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	const op errors.Op = "warnings.LoadConfig"
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.New(op).Err(err).Msg(errMsgConfigLoad)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(op).Err(fmt.Errorf("unknown keys: %v", undecoded)).Msg(errMsgConfigLoad)
	}
	if err := validateConfig(&cfg); err != nil {
		return Config{}, errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	return cfg, nil
}

// withDefaults fills the process identity used in the output prefix.
func (c Config) withDefaults() (Config, error) {
	const op errors.Op = "warnings.Config.withDefaults"
	if c.ReleaseLabel == emptyString {
		name, err := utils.ExecName(true)
		if err != nil {
			return c, errors.New(op).Err(err).Msg(errMsgExecName)
		}
		c.ReleaseLabel = name
	}
	if c.PID == 0 {
		c.PID = os.Getpid()
	}
	if c.QueueSize == 0 {
		c.QueueSize = defaultQueueSize
	}
	return c, nil
}

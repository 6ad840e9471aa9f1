package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/viper"
)

// DefaultArgs is the forced argument string suggested for new games.
const DefaultArgs = "-vrmode openvr"

// DefaultCompilerPaths lists the .NET Framework 4.x csc locations probed in order.
var DefaultCompilerPaths = []string{
	`C:\Windows\Microsoft.NET\Framework64\v4.0.30319\csc.exe`,
	`C:\Windows\Microsoft.NET\Framework\v4.0.30319\csc.exe`,
}

// DefaultSkip holds name fragments of executables that are never the game.
var DefaultSkip = []string{"crashhandler", "uninstall", "helper", "launcher", "unitycrash", "subnautica32"}

// Settings are the user-tunable knobs read from config.yaml and VRFORCE_* env vars.
type Settings struct {
	CompilerPaths []string
	// ExtraFlags are appended to every compiler invocation.
	ExtraFlags []string
	Skip       []string
	Args       string
	// WrapperMaxSize is the size below which an exe counts as our wrapper.
	WrapperMaxSize int64
	// ErrorLimit caps how much compiler output is surfaced, per variant.
	ErrorLimit map[Variant]int
}

// SetDefaults registers defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("compiler.paths", DefaultCompilerPaths)
	v.SetDefault("compiler.extra_flags", "")
	v.SetDefault("compiler.error_limit.launcher", 400)
	v.SetDefault("compiler.error_limit.wrapper", 300)
	v.SetDefault("detect.skip", DefaultSkip)
	v.SetDefault("defaults.args", DefaultArgs)
	v.SetDefault("wrapper.max_size", 100_000)
}

// NewViper returns a viper instance wired to the settings file and env.
// An empty file means "use the default location"; a missing file is fine.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("VRFORCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file == "" {
		p, err := SettingsPath()
		if err != nil {
			return nil, err
		}
		file = p
	}
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read settings %s: %w", file, err)
		}
		slog.Debug("no settings file, using defaults", "file", file)
	} else {
		slog.Debug("using settings file", "file", v.ConfigFileUsed())
	}
	return v, nil
}

// FromViper decodes Settings out of v.
func FromViper(v *viper.Viper) (Settings, error) {
	extra, err := shellquote.Split(v.GetString("compiler.extra_flags"))
	if err != nil {
		return Settings{}, fmt.Errorf("compiler.extra_flags: %w", err)
	}
	s := Settings{
		CompilerPaths:  v.GetStringSlice("compiler.paths"),
		ExtraFlags:     extra,
		Skip:           lower(v.GetStringSlice("detect.skip")),
		Args:           v.GetString("defaults.args"),
		WrapperMaxSize: v.GetInt64("wrapper.max_size"),
		ErrorLimit: map[Variant]int{
			Launcher: v.GetInt("compiler.error_limit.launcher"),
			Wrapper:  v.GetInt("compiler.error_limit.wrapper"),
		},
	}
	if s.WrapperMaxSize <= 0 {
		return Settings{}, fmt.Errorf("wrapper.max_size must be positive, got %d", s.WrapperMaxSize)
	}
	return s, nil
}

// Default returns the built-in settings without reading any file.
func Default() Settings {
	v := viper.New()
	SetDefaults(v)
	s, _ := FromViper(v)
	return s
}

// Load reads settings from file (or the default location).
func Load(file string) (Settings, error) {
	v, err := NewViper(file)
	if err != nil {
		return Settings{}, err
	}
	return FromViper(v)
}

func lower(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

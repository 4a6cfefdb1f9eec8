package settings

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "AVHWGATE"

// Viper is a Store backed by viper: a config file (any format viper
// supports) overridden by AVHWGATE_* environment variables, e.g.
// AVHWGATE_VIDEOPLAYER_USEVAAPI=false.
type Viper struct {
	Viper *viper.Viper
}

var _ Store = (*Viper)(nil)

// NewViper configures v (a fresh instance if nil) with the defaults of the
// known toggles and the environment bindings.
func NewViper(v *viper.Viper) *Viper {
	if v == nil {
		v = viper.New()
	}
	for _, id := range KnownToggles {
		v.SetDefault(id, true)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Viper{
		Viper: v,
	}
}

// LoadViper reads the config file at path; an empty path means defaults
// and environment only.
func LoadViper(path string) (*Viper, error) {
	s := NewViper(nil)
	if path == "" {
		return s, nil
	}
	s.Viper.SetConfigFile(path)
	if err := s.Viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("unable to read the config file '%s': %w", path, err)
	}
	return s, nil
}

func (s *Viper) GetBool(id string) bool {
	return s.Viper.GetBool(id)
}

func (s *Viper) GetSetting(id string) Setting {
	if !isKnown(id) && !s.Viper.IsSet(id) {
		return nil
	}
	return Toggle(id)
}

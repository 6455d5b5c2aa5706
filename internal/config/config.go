package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	AccessToken        string        `env:"OURA_ACCESS_TOKEN,required"`
	Hostname           string        `env:"OURA_HOSTNAME" envDefault:"api.ouraring.com"`
	Version            string        `env:"OURA_VERSION" envDefault:"v2"`
	InsecureSkipVerify bool          `env:"OURA_INSECURE_SKIP_VERIFY" envDefault:"false"`
	Timeout            time.Duration `env:"OURA_TIMEOUT" envDefault:"30s"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}

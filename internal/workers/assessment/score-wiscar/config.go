// internal/workers/assessment/score-wiscar/config.go
package scorewiscar

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}

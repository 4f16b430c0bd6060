// internal/workers/results/deliver-report/config.go
package deliverreport

import "time"

type Config struct {
	Timeout       time.Duration
	FromEmail     string
	SubjectPrefix string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:       15 * time.Second,
		SubjectPrefix: "[HR Readiness Compass]",
	}
}

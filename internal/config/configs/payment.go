package configs

import "time"

// Payment configures the hosted checkout gateway.
type Payment struct {
	BaseURL    string        `env:"BASE_URL" envDefault:"https://sandbox.cashfree.com/pg"`
	AppID      string        `env:"APP_ID"`
	SecretKey  string        `env:"SECRET_KEY"`
	APIVersion string        `env:"API_VERSION" envDefault:"2023-08-01"`
	ReturnURL  string        `env:"RETURN_URL"`
	Currency   string        `env:"CURRENCY" envDefault:"INR"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

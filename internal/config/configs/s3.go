package configs

// S3 configures the media bucket. Endpoint and UsePathStyle point the
// client at MinIO or another S3 compatible store; PublicBaseURL overrides
// the virtual hosted URL media keys are published under.
type S3 struct {
	Bucket        string `env:"BUCKET" envDefault:"foodshare-media"`
	Region        string `env:"REGION" envDefault:"ap-south-1"`
	Endpoint      string `env:"ENDPOINT"`
	AccessKey     string `env:"ACCESS_KEY"`
	SecretKey     string `env:"SECRET_KEY"`
	UsePathStyle  bool   `env:"USE_PATH_STYLE" envDefault:"false"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
}

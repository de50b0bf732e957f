package configs

// Auth configures verification of the HS256 access tokens issued by the
// account service.
type Auth struct {
	Secret string `env:"SECRET,required,notEmpty"`
	Issuer string `env:"ISSUER"`
}

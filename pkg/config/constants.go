package config

// EnvPrefix is the envconfig prefix shared by every variable.
const EnvPrefix = "OPENMARKET"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv   = "OPENMARKET_APP_ENV"
	EnvPort     = "OPENMARKET_APP_PORT"
	EnvRedisURL = "OPENMARKET_REDIS_URL"

	EnvDBDSN  = "OPENMARKET_DB_DSN"
	EnvDBHost = "OPENMARKET_DB_HOST"
	EnvDBUser = "OPENMARKET_DB_USER"
	EnvDBName = "OPENMARKET_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

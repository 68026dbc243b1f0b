package config

// EnvPrefix is the envconfig prefix shared by every service binary.
const EnvPrefix = "ZBASE"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names referenced outside struct tags (tests, error
// messages).
const (
	EnvAppEnv   = "ZBASE_APP_ENV"
	EnvPort     = "ZBASE_APP_PORT"
	EnvDBDSN    = "ZBASE_DB_DSN"
	EnvDBHost   = "ZBASE_DB_HOST"
	EnvDBUser   = "ZBASE_DB_USER"
	EnvDBName   = "ZBASE_DB_NAME"
	EnvRedisURL = "ZBASE_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

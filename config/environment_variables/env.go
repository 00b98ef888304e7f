package environment_variables

import (
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/murayeeto/HornetHelper/app/utils/logger"
	"github.com/murayeeto/HornetHelper/config"
)

type EnvironmentVariable struct {
	OPENAI_API_KEY             string
	OPENAI_BASE_URL            string
	OPENAI_MODEL               string
	YOUTUBE_API_KEY            string
	GOOGLE_IDENTITY_PROJECT_ID string
	JWT_SECRET                 []byte
	DB_POSTGRESQL_WRITE_DSN    string
	DB_POSTGRESQL_READ1_DSN    string
	ALLOWED_CORS_HOSTS         []string
	SERVER_PORT                int
}

func (ev *EnvironmentVariable) LoadFromEnv() {
	v := reflect.ValueOf(ev).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Name
		envValue := os.Getenv(envKey)
		if envValue == "" {
			logger.GetLogger().Warnf("Missing SYSENV: %s", envKey)
		}
		if envValue != "" {
			switch v.Field(i).Kind() {
			case reflect.String:
				v.Field(i).SetString(envValue)
			case reflect.Int:
				intV, err := strconv.Atoi(envValue)
				if err != nil {
					logger.GetLogger().Errorf("Invalid int value for %s: %s", envKey, envValue)
				} else {
					v.Field(i).SetInt(int64(intV))
				}
			case reflect.Bool:
				boolVal, err := strconv.ParseBool(envValue)
				if err != nil {
					logger.GetLogger().Errorf("Invalid boolean value for %s: %s", envKey, envValue)
				} else {
					v.Field(i).SetBool(boolVal)
				}
			case reflect.Slice:
				if v.Field(i).Type().Elem().Kind() == reflect.Uint8 {
					v.Field(i).SetBytes([]byte(envValue))
				} else if v.Field(i).Type().Elem().Kind() == reflect.String {
					entries := strings.Split(envValue, ",")
					v.Field(i).Set(reflect.ValueOf(entries))
				} else {
					logger.GetLogger().Errorf("Unsupported slice type for %s", field.Name)
				}
			default:
				logger.GetLogger().Errorf("Unsupported field type: %s", field.Name)
			}
		}
	}
	config.EnvReloadedAt = time.Now()
}

// Singleton
var EnvironmentVariables = EnvironmentVariable{}

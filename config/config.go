// Package config contains the service configuration
package config

// DevEnv is the enviroment the service is running on
type DevEnv string

const (
	// Prod defines the production enviroment
	Prod DevEnv = "PROD"
	// Dev defines the development enviroment
	Dev DevEnv = "DEV"
	// Test defines the testing enviroment
	Test DevEnv = "TEST"
)

// GetDevEnv is a function to get the enviroment the service is running on
// based on the enviroment configuration, unknown values are treated as Test
func GetDevEnv(env *Env) DevEnv {
	switch DevEnv(env.DevEnv) {
	case Prod:
		return Prod
	case Dev:
		return Dev
	default:
		return Test
	}
}

// Package utils contains the utility packages
package utils

import (
	"flag"
	"os"

	"github.com/VinukaThejana/feedback/config"
	"github.com/VinukaThejana/feedback/connect"
)

// Flags are the command line flags of the service
type Flags struct {
	// Migrate the OTP schema and exit
	Migrate bool
	// EnvPath is an additional directory the .env file is looked up in
	EnvPath string
}

// ParseFlags is a function that is used to parse the command line flags
func ParseFlags(args []string) (Flags, error) {
	var flags Flags

	fs := flag.NewFlagSet("feedback", flag.ContinueOnError)
	fs.BoolVar(&flags.Migrate, "migrate", false, "Migrate the OTP schema to the relational database")
	fs.StringVar(&flags.EnvPath, "env", "", "Directory that contains the .env file")

	err := fs.Parse(args)
	return flags, err
}

// CheckForMigrations is a function that checks wether the schema changes should be migrated to the database
func CheckForMigrations(c *connect.Connector, env *config.Env, flags Flags) {
	if flags.Migrate {
		c.MigrateSchemaChanges(env)
		os.Exit(0)
	}
}

package dotenv

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Load подгружает .env, флаги командной строки имеют приоритет.
func Load() error {
	err := godotenv.Load()
	if err != nil {
		return err
	}

	return applyFlags(pflag.CommandLine, os.Args[1:])
}

func applyFlags(fs *pflag.FlagSet, args []string) error {
	var portFlag string
	if fs.Lookup("port") == nil {
		fs.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	}

	err := fs.Parse(args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	portFlag, err = fs.GetString("port")
	if err != nil {
		return fmt.Errorf("read port flag: %w", err)
	}

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/hiresphere/hiresphere/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string    storage driver: sqlite, postgres, memory
//	-dsn string  database path (sqlite) or connection string (postgres)
//	-s string    session signing secret
//	-t int       session validity in hours
//
// Arguments are filtered to the flags handled here so other packages can
// parse their own.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-dsn", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Driver, "d", cfg.Driver, "storage driver (sqlite, postgres, memory)")
	fs.StringVar(&cfg.DSN, "dsn", cfg.DSN, "database path or connection string")
	fs.StringVar(&cfg.SessionSecret, "s", cfg.SessionSecret, "session signing secret")
	sessionHours := fs.Int("t", int(cfg.SessionTTL.Hours()), "session validity (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionTTL = time.Duration(*sessionHours) * time.Hour
}

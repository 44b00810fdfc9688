package config

// this holds the resolved configuration values from CLI
var (
	DB              string // connection string for the results database
	WaitForServices string // duration to wait for other services to be ready
	LogLevel        string // sets the log level (zap log level values)
	LogFormat       string // text vs json
	LogConfig       string // path to log config file
	Seed            int64  // RNG seed for simulations (0 = derive from time)
	Season          int    // season year used for calendar and persistence
	SaveResults     bool   // if true, simulated results are written to the database
)

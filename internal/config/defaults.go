package config

const (
	defaultItemCount     = 100
	defaultSeed          = 42
	defaultLatencyMinMS  = 100
	defaultLatencyMaxMS  = 300
	defaultPollTimeoutMS = 100
	defaultJoinTimeoutMS = 1000
	defaultDataDir       = "~/.local/share/washline"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Simulation: Simulation{
			ItemCount:    defaultItemCount,
			Seed:         defaultSeed,
			LatencyMinMS: defaultLatencyMinMS,
			LatencyMaxMS: defaultLatencyMaxMS,
		},
		Pipeline: Pipeline{
			PollTimeoutMS: defaultPollTimeoutMS,
			JoinTimeoutMS: defaultJoinTimeoutMS,
		},
		Storage: Storage{
			DataDir: defaultDataDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

package config

import "errors"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSimulation(); err != nil {
		return err
	}
	if err := c.validatePipeline(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSimulation() error {
	if c.Simulation.ItemCount < 0 {
		return errors.New("simulation.item_count must not be negative")
	}
	if c.Simulation.LatencyMinMS < 0 {
		return errors.New("simulation.latency_min_ms must not be negative")
	}
	if c.Simulation.LatencyMaxMS < c.Simulation.LatencyMinMS {
		return errors.New("simulation.latency_max_ms must not be below simulation.latency_min_ms")
	}
	return nil
}

func (c *Config) validatePipeline() error {
	if c.Pipeline.PollTimeoutMS <= 0 {
		return errors.New("pipeline.poll_timeout_ms must be positive")
	}
	if c.Pipeline.JoinTimeoutMS <= 0 {
		return errors.New("pipeline.join_timeout_ms must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return errors.New("logging.format must be console or json")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be debug, info, warn, or error")
	}
	return nil
}

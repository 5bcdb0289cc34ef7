package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must be in [0, max_conns] (got %d)", c.Database.MinConns)
	}

	if err := c.Ideas.validate(); err != nil {
		return fmt.Errorf("ideas: %w", err)
	}

	return nil
}

func (i *IdeasConfig) validate() error {
	if i.MaxPerOwner < 1 {
		return fmt.Errorf("max_per_owner must be >= 1 (got %d)", i.MaxPerOwner)
	}
	if i.QueueDefaultLimit < 1 {
		return fmt.Errorf("queue_default_limit must be >= 1 (got %d)", i.QueueDefaultLimit)
	}
	if i.QueueMaxLimit < i.QueueDefaultLimit {
		return fmt.Errorf("queue_max_limit must be >= queue_default_limit (got %d < %d)",
			i.QueueMaxLimit, i.QueueDefaultLimit)
	}
	return nil
}

package lint

// DefaultPropertyOrder is the canonical order of compose service keys.
// It is kept alphabetical.
var DefaultPropertyOrder = []string{
	"container_name",
	"depends_on",
	"env_file",
	"environment",
	"healthcheck",
	"image",
	"labels",
	"logging",
	"networks",
	"ports",
	"restart",
	"user",
	"volumes",
}

// Conventions holds the house rules the checkers compare against.
type Conventions struct {
	PropertyOrder     []string `mapstructure:"property_order"`
	PublicDomain      string   `mapstructure:"public_domain"`
	PrivateDomain     string   `mapstructure:"private_domain"`
	PublicMiddleware  string   `mapstructure:"public_middleware"`
	PrivateMiddleware string   `mapstructure:"private_middleware"`
	Network           string   `mapstructure:"network"`
	LoggingDriver     string   `mapstructure:"logging_driver"`
	SkipRouters       []string `mapstructure:"skip_routers"`
}

// DefaultConventions returns the conventions used across the homelab.
func DefaultConventions() Conventions {
	order := make([]string, len(DefaultPropertyOrder))
	copy(order, DefaultPropertyOrder)
	return Conventions{
		PropertyOrder:     order,
		PublicDomain:      "owpac.com",
		PrivateDomain:     "owpac.net",
		PublicMiddleware:  "wan@file",
		PrivateMiddleware: "lan@file",
		Network:           "reverse-proxy",
		LoggingDriver:     "local",
		SkipRouters:       []string{"wildcard-certs"},
	}
}

// withDefaults fills empty fields from DefaultConventions.
func (c Conventions) withDefaults() Conventions {
	d := DefaultConventions()
	if len(c.PropertyOrder) == 0 {
		c.PropertyOrder = d.PropertyOrder
	}
	if c.PublicDomain == "" {
		c.PublicDomain = d.PublicDomain
	}
	if c.PrivateDomain == "" {
		c.PrivateDomain = d.PrivateDomain
	}
	if c.PublicMiddleware == "" {
		c.PublicMiddleware = d.PublicMiddleware
	}
	if c.PrivateMiddleware == "" {
		c.PrivateMiddleware = d.PrivateMiddleware
	}
	if c.Network == "" {
		c.Network = d.Network
	}
	if c.LoggingDriver == "" {
		c.LoggingDriver = d.LoggingDriver
	}
	if c.SkipRouters == nil {
		c.SkipRouters = d.SkipRouters
	}
	return c
}

func (c Conventions) skipRouter(id string) bool {
	for _, s := range c.SkipRouters {
		if s == id {
			return true
		}
	}
	return false
}

// rank returns the position of prop in the canonical order, or -1.
func (c Conventions) rank(prop string) int {
	for i, p := range c.PropertyOrder {
		if p == prop {
			return i
		}
	}
	return -1
}

package config

import "net"

type Config interface {
	Addr() string
	Port() string
	Address() string

	StaticFolder() string

	BufferSize() int
	MaxWorkers() int

	PprofEnabled() bool
	PprofPort() string
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Addr() string         { return c.addr }
func (c *config) Port() string         { return c.port }
func (c *config) Address() string      { return net.JoinHostPort(c.addr, c.port) }
func (c *config) StaticFolder() string { return c.staticFolder }
func (c *config) BufferSize() int      { return c.bufferSize }
func (c *config) MaxWorkers() int      { return c.maxWorkers }
func (c *config) PprofEnabled() bool   { return c.pprofEnabled }
func (c *config) PprofPort() string    { return c.pprofPort }

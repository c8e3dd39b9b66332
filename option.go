package rootcanal

import (
	"time"
)

// DeviceOption is an interface which the device should implement to allow using configuration options
type DeviceOption interface {
	SetAddress(Address) error
	SetPropertiesFile(path string) error
	SetAclConnectionLimit(n int) error
	SetLinkKeepAlive(bool) error
	SetTickPeriod(time.Duration) error
	SetErrorHandler(handler func(error)) error
	SetLogger(Logger) error
}

// An Option is a configuration function, which configures the device.
type Option func(DeviceOption) error

// OptAddress sets the public device address.
func OptAddress(a Address) Option {
	return func(opt DeviceOption) error {
		return opt.SetAddress(a)
	}
}

// OptPropertiesFile loads controller properties from a json file.
func OptPropertiesFile(path string) Option {
	return func(opt DeviceOption) error {
		return opt.SetPropertiesFile(path)
	}
}

// OptAclConnectionLimit caps the number of simultaneous ACL connections.
func OptAclConnectionLimit(n int) Option {
	return func(opt DeviceOption) error {
		return opt.SetAclConnectionLimit(n)
	}
}

// OptLinkKeepAlive pings peers on idle links before supervision expires.
func OptLinkKeepAlive(enable bool) Option {
	return func(opt DeviceOption) error {
		return opt.SetLinkKeepAlive(enable)
	}
}

// OptTickPeriod sets how much simulated time passes per timer tick.
func OptTickPeriod(d time.Duration) Option {
	return func(opt DeviceOption) error {
		return opt.SetTickPeriod(d)
	}
}

// OptErrorHandler sets error handler
func OptErrorHandler(handler func(error)) Option {
	return func(opt DeviceOption) error {
		return opt.SetErrorHandler(handler)
	}
}

// OptLogger overrides the device logger
func OptLogger(l Logger) Option {
	return func(opt DeviceOption) error {
		return opt.SetLogger(l)
	}
}

package controller

import (
	"fmt"
	"time"

	"github.com/rigado/rootcanal"
)

// SetAddress sets the public device address.
func (d *DualModeController) SetAddress(a rootcanal.Address) error {
	d.LinkLayerController.SetAddress(a)
	return nil
}

// SetPropertiesFile replaces the controller properties with the ones in path.
func (d *DualModeController) SetPropertiesFile(path string) error {
	p, err := LoadProperties(path)
	if err != nil {
		return err
	}
	d.SetProperties(p)
	return nil
}

// SetAclConnectionLimit overrides max_acl_connections.
func (d *DualModeController) SetAclConnectionLimit(n int) error {
	p := d.props
	p.MaxAclConnections = n
	if err := p.Validate(); err != nil {
		return err
	}
	d.SetProperties(p)
	return nil
}

// SetLinkKeepAlive enables pings on idle links.
func (d *DualModeController) SetLinkKeepAlive(enable bool) error {
	d.props.LinkKeepAlive = enable
	return nil
}

// SetTickPeriod sets the simulated time added by each timer tick.
func (d *DualModeController) SetTickPeriod(p time.Duration) error {
	if p <= 0 {
		return fmt.Errorf("invalid tick period %v", p)
	}
	d.LinkLayerController.SetTickPeriod(p)
	return nil
}

// SetErrorHandler ...
func (d *DualModeController) SetErrorHandler(handler func(error)) error {
	d.errorHandler = handler
	return nil
}

// SetLogger overrides the device logger.
func (d *DualModeController) SetLogger(l rootcanal.Logger) error {
	d.LinkLayerController.SetLogger(l)
	return nil
}

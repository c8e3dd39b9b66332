package controller

import (
	"fmt"
	"io/ioutil"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rigado/rootcanal/hci"
)

// Properties is the static configuration of a simulated controller.
type Properties struct {
	ClassOfDevice uint32 `json:"class_of_device"`

	AclDataPacketLength      uint16 `json:"acl_data_packet_length"`
	TotalNumAclDataPackets   uint16 `json:"total_num_acl_data_packets"`
	LeAclDataPacketLength    uint16 `json:"le_acl_data_packet_length"`
	TotalNumLeAclDataPackets uint8  `json:"total_num_le_acl_data_packets"`

	MaxAclConnections    int `json:"max_acl_connections"`
	FilterAcceptListSize int `json:"filter_accept_list_size"`
	ResolvingListSize    int `json:"resolving_list_size"`

	// milliseconds
	LeConnectionTimeout       int `json:"le_connection_timeout_ms"`
	PageTimeout               int `json:"page_timeout_ms"`
	LinkSupervisionTimeout    int `json:"link_supervision_timeout_ms"`
	DirectedAdvertisingWindow int `json:"directed_advertising_window_ms"`

	LinkKeepAlive bool `json:"link_keep_alive"`
}

func DefaultProperties() Properties {
	return Properties{
		ClassOfDevice:             0x000000,
		AclDataPacketLength:       1024,
		TotalNumAclDataPackets:    10,
		LeAclDataPacketLength:     27,
		TotalNumLeAclDataPackets:  20,
		MaxAclConnections:         8,
		FilterAcceptListSize:      16,
		ResolvingListSize:         15,
		LeConnectionTimeout:       3000,
		PageTimeout:               5120,
		LinkSupervisionTimeout:    20000,
		DirectedAdvertisingWindow: 1280,
	}
}

func (p Properties) Validate() error {
	maxConns := int(hci.HandleMax - hci.HandleMin + 1)

	switch {
	case p.ClassOfDevice > 0xffffff:
		return fmt.Errorf("invalid class_of_device 0x%x", p.ClassOfDevice)

	case p.AclDataPacketLength == 0 || p.LeAclDataPacketLength == 0:
		return fmt.Errorf("acl data packet length must be non-zero")

	case p.MaxAclConnections < 1 || p.MaxAclConnections > maxConns:
		return fmt.Errorf("invalid max_acl_connections %v", p.MaxAclConnections)

	case p.FilterAcceptListSize < 0 || p.FilterAcceptListSize > 0xff:
		return fmt.Errorf("invalid filter_accept_list_size %v", p.FilterAcceptListSize)

	case p.ResolvingListSize < 0 || p.ResolvingListSize > 0xff:
		return fmt.Errorf("invalid resolving_list_size %v", p.ResolvingListSize)

	case p.LeConnectionTimeout <= 0:
		return fmt.Errorf("invalid le_connection_timeout_ms %v", p.LeConnectionTimeout)

	case p.PageTimeout <= 0:
		return fmt.Errorf("invalid page_timeout_ms %v", p.PageTimeout)

	case p.LinkSupervisionTimeout <= 0:
		return fmt.Errorf("invalid link_supervision_timeout_ms %v", p.LinkSupervisionTimeout)

	case p.DirectedAdvertisingWindow <= 0:
		return fmt.Errorf("invalid directed_advertising_window_ms %v", p.DirectedAdvertisingWindow)
	}

	return nil
}

func (p Properties) classOfDevice() [3]byte {
	return [3]byte{uint8(p.ClassOfDevice), uint8(p.ClassOfDevice >> 8), uint8(p.ClassOfDevice >> 16)}
}

func ms(v int) time.Duration { return time.Duration(v) * time.Millisecond }

// LoadProperties reads a json file on top of the defaults. Fields missing
// from the file keep their default value.
func LoadProperties(path string) (Properties, error) {
	p := DefaultProperties()

	b, err := ioutil.ReadFile(path)
	if err != nil {
		return p, errors.Wrap(err, "read properties")
	}

	if err := jsoniter.Unmarshal(b, &p); err != nil {
		return p, errors.Wrapf(err, "decode properties %v", path)
	}

	if err := p.Validate(); err != nil {
		return p, errors.Wrapf(err, "properties %v", path)
	}

	return p, nil
}

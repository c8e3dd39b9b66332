package h4

import (
	"io"

	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/errors"
)

// DefaultBaudRate is used when the port options leave the rate unset.
const DefaultBaudRate = 115200

// OpenUart opens a serial port carrying H4 traffic.
func OpenUart(port string, baud uint, flowControl bool) (io.ReadWriteCloser, error) {
	if baud == 0 {
		baud = DefaultBaudRate
	}
	opts := serial.OpenOptions{
		PortName:          port,
		BaudRate:          baud,
		DataBits:          8,
		StopBits:          1,
		ParityMode:        serial.PARITY_NONE,
		RTSCTSFlowControl: flowControl,

		// return whatever arrived within 100ms
		MinimumReadSize:       0,
		InterCharacterTimeout: 100,
	}

	sp, err := serial.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open %v", port)
	}
	return sp, nil
}

package h4

import (
	"fmt"
	"time"
)

// H4 packet indicators.
const (
	CommandPacket = 0x01
	AclPacket     = 0x02
	ScoPacket     = 0x03
	EventPacket   = 0x04
)

// header length after the indicator, and the offset of the length field in it
var headers = map[byte]struct{ size, lenOffset, lenSize int }{
	CommandPacket: {3, 2, 1},
	AclPacket:     {4, 2, 2},
	ScoPacket:     {3, 2, 1},
	EventPacket:   {2, 1, 1},
}

// FrameTimeout drops a partial frame that stalls longer than this.
const FrameTimeout = 500 * time.Millisecond

// Frame is a complete H4 packet: the indicator and the HCI packet behind it.
type Frame struct {
	Type   byte
	Packet []byte
}

// Assembler reframes an H4 byte stream that may be split or coalesced
// arbitrarily by the transport.
type Assembler struct {
	b       []byte
	timeout time.Time
	out     func(Frame)
	accept  map[byte]bool

	// Dropped counts bytes discarded while hunting for a packet indicator.
	Dropped int
}

// NewAssembler returns an assembler delivering frames of the given types to
// out. Bytes before a known indicator are skipped.
func NewAssembler(out func(Frame), types ...byte) *Assembler {
	a := &Assembler{out: out, accept: map[byte]bool{}}
	for _, t := range types {
		if _, ok := headers[t]; ok {
			a.accept[t] = true
		}
	}
	return a
}

// Assemble consumes a chunk read from the transport.
func (a *Assembler) Assemble(b []byte) {
	if !a.timeout.IsZero() && time.Now().After(a.timeout) {
		a.Dropped += len(a.b)
		a.reset()
	}

	for len(b) > 0 {
		if len(a.b) == 0 {
			b = a.waitStart(b)
			if len(b) == 0 {
				return
			}
			a.timeout = time.Now().Add(FrameTimeout)
		}

		a.b = append(a.b, b...)
		b = nil

		n, err := a.frameLength()
		if err != nil || len(a.b) < n {
			return
		}
		p := make([]byte, n-1)
		copy(p, a.b[1:n])
		a.out(Frame{Type: a.b[0], Packet: p})

		b = a.b[n:]
		a.reset()
	}
}

// Pending returns the number of buffered bytes of an incomplete frame.
func (a *Assembler) Pending() int { return len(a.b) }

func (a *Assembler) reset() {
	a.b = nil
	a.timeout = time.Time{}
}

// waitStart skips to the first accepted packet indicator.
func (a *Assembler) waitStart(b []byte) []byte {
	for i, v := range b {
		if a.accept[v] {
			a.Dropped += i
			return b[i:]
		}
	}
	a.Dropped += len(b)
	return nil
}

// frameLength returns the total length of the buffered frame, indicator
// included, once its header is complete.
func (a *Assembler) frameLength() (int, error) {
	h, ok := headers[a.b[0]]
	if !ok {
		return 0, fmt.Errorf("invalid packet type %v", a.b[0])
	}
	if len(a.b) < 1+h.size {
		return 0, fmt.Errorf("not enough bytes")
	}

	o := 1 + h.lenOffset
	l := int(a.b[o])
	if h.lenSize == 2 {
		l |= int(a.b[o+1]) << 8
	}
	return 1 + h.size + l, nil
}

// Encode prefixes p with its packet indicator.
func Encode(t byte, p []byte) []byte {
	b := make([]byte, 0, len(p)+1)
	b = append(b, t)
	return append(b, p...)
}

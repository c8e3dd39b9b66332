package evt

import (
	"encoding/binary"
)

// Status of the command, the first return parameter.
func (e CommandComplete) Status() uint8 {
	rp := e.ReturnParameters()
	if len(rp) == 0 {
		return 0xff
	}
	return rp[0]
}

// SubeventCode is only meaningful for LE meta events.
func (e Event) SubeventCode() uint8 {
	p := e.Params()
	if e.Code() != LEMetaCode || len(p) == 0 {
		return 0
	}
	return p[0]
}

type builder struct {
	b []byte
}

func newBuilder(code uint8) *builder {
	return &builder{b: []byte{code, 0}}
}

func (w *builder) u8(v uint8) *builder { w.b = append(w.b, v); return w }
func (w *builder) u16(v uint16) *builder {
	w.b = append(w.b, uint8(v), uint8(v>>8))
	return w
}
func (w *builder) u64(v uint64) *builder {
	var bb [8]byte
	binary.LittleEndian.PutUint64(bb[:], v)
	w.b = append(w.b, bb[:]...)
	return w
}
func (w *builder) bytes(v []byte) *builder { w.b = append(w.b, v...); return w }

func (w *builder) event() Event {
	w.b[1] = uint8(len(w.b) - 2)
	return Event(w.b)
}

// NewCommandComplete builds a Command Complete event with one free command slot.
func NewCommandComplete(opcode int, rp []byte) Event {
	return newBuilder(CommandCompleteCode).u8(1).u16(uint16(opcode)).bytes(rp).event()
}

// NewCommandStatus builds a Command Status event with one free command slot.
func NewCommandStatus(status uint8, opcode int) Event {
	return newBuilder(CommandStatusCode).u8(status).u8(1).u16(uint16(opcode)).event()
}

func NewInquiryComplete(status uint8) Event {
	return newBuilder(InquiryCompleteCode).u8(status).event()
}

// NewInquiryResult reports a single discovered device.
func NewInquiryResult(addr [6]byte, pageScanRepetitionMode uint8, classOfDevice [3]byte, clockOffset uint16) Event {
	return newBuilder(InquiryResultCode).u8(1).bytes(addr[:]).u8(pageScanRepetitionMode).u16(0).bytes(classOfDevice[:]).u16(clockOffset).event()
}

func NewDisconnectionComplete(status uint8, handle uint16, reason uint8) Event {
	return newBuilder(DisconnectionCompleteCode).u8(status).u16(handle).u8(reason).event()
}

func NewConnectionComplete(status uint8, handle uint16, addr [6]byte, linkType uint8, encryption uint8) Event {
	return newBuilder(ConnectionCompleteCode).u8(status).u16(handle).bytes(addr[:]).u8(linkType).u8(encryption).event()
}

func NewConnectionRequest(addr [6]byte, classOfDevice [3]byte, linkType uint8) Event {
	return newBuilder(ConnectionRequestCode).bytes(addr[:]).bytes(classOfDevice[:]).u8(linkType).event()
}

func NewEncryptionChange(status uint8, handle uint16, enabled uint8) Event {
	return newBuilder(EncryptionChangeCode).u8(status).u16(handle).u8(enabled).event()
}

func NewEncryptionKeyRefreshComplete(status uint8, handle uint16) Event {
	return newBuilder(EncryptionKeyRefreshCompleteCode).u8(status).u16(handle).event()
}

// NewNumberOfCompletedPackets reports count packets for a single handle.
func NewNumberOfCompletedPackets(handle uint16, count uint16) Event {
	return newBuilder(NumberOfCompletedPacketsCode).u8(1).u16(handle).u16(count).event()
}

// LEConnectionCompleteParams are the fields of an LE Connection Complete event.
type LEConnectionCompleteParams struct {
	Status              uint8
	ConnectionHandle    uint16
	Role                uint8
	PeerAddressType     uint8
	PeerAddress         [6]byte
	ConnInterval        uint16
	ConnLatency         uint16
	SupervisionTimeout  uint16
	MasterClockAccuracy uint8
}

func NewLEConnectionComplete(p LEConnectionCompleteParams) Event {
	return newBuilder(LEMetaCode).
		u8(LEConnectionCompleteSubCode).
		u8(p.Status).
		u16(p.ConnectionHandle).
		u8(p.Role).
		u8(p.PeerAddressType).
		bytes(p.PeerAddress[:]).
		u16(p.ConnInterval).
		u16(p.ConnLatency).
		u16(p.SupervisionTimeout).
		u8(p.MasterClockAccuracy).
		event()
}

// NewLEAdvertisingReport builds a report carrying a single advertisement.
func NewLEAdvertisingReport(evtType, addrType uint8, addr [6]byte, data []byte, rssi int8) Event {
	return newBuilder(LEMetaCode).
		u8(LEAdvertisingReportSubCode).
		u8(1).
		u8(evtType).
		u8(addrType).
		bytes(addr[:]).
		u8(uint8(len(data))).
		bytes(data).
		u8(uint8(rssi)).
		event()
}

func NewLEConnectionUpdateComplete(status uint8, handle, interval, latency, timeout uint16) Event {
	return newBuilder(LEMetaCode).
		u8(LEConnectionUpdateCompleteSubCode).
		u8(status).
		u16(handle).
		u16(interval).
		u16(latency).
		u16(timeout).
		event()
}

func NewLELongTermKeyRequest(handle uint16, rand uint64, ediv uint16) Event {
	return newBuilder(LEMetaCode).
		u8(LELongTermKeyRequestSubCode).
		u16(handle).
		u64(rand).
		u16(ediv).
		event()
}

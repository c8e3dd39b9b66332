package link

import (
	"encoding/binary"
	"fmt"

	"github.com/rigado/rootcanal"
)

// Advertisement types carried by LE_ADVERTISEMENT and LE_SCAN_RESPONSE.
const (
	AdvInd        uint8 = 0x00
	AdvDirectInd  uint8 = 0x01
	AdvScanInd    uint8 = 0x02
	AdvNonconnInd uint8 = 0x03
	ScanResponse  uint8 = 0x04
)

func view(p Packet, t Type) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Type() != t {
		return fmt.Errorf("packet type %v, want %v", p.Type(), t)
	}
	return nil
}

func u16(b []byte, i int) uint16 { return binary.LittleEndian.Uint16(b[i:]) }

func put16(b []byte, v uint16) []byte { return append(b, uint8(v), uint8(v>>8)) }

// Acl carries the HCI ACL payload and its boundary flag.
type Acl Packet

func AsAcl(p Packet) (Acl, error) { return Acl(p), view(p, TypeAcl) }

func (v Acl) Pbf() int     { return int(Packet(v).Payload()[0]) }
func (v Acl) Data() []byte { return Packet(v).Payload()[1:] }

type AclBuilder struct {
	Src, Dst rootcanal.Address
	Pbf      int
	Data     []byte
}

func (b AclBuilder) Serialize() []byte {
	out := envelope(TypeAcl, b.Src, b.Dst, 1+len(b.Data))
	out = append(out, uint8(b.Pbf))
	return append(out, b.Data...)
}

// Disconnect tears down the link to the destination.
type Disconnect Packet

func AsDisconnect(p Packet) (Disconnect, error) { return Disconnect(p), view(p, TypeDisconnect) }

func (v Disconnect) Reason() uint8 { return Packet(v).Payload()[0] }

type DisconnectBuilder struct {
	Src, Dst rootcanal.Address
	Reason   uint8
}

func (b DisconnectBuilder) Serialize() []byte {
	return append(envelope(TypeDisconnect, b.Src, b.Dst, 1), b.Reason)
}

// LeAdvertisement is a legacy advertising PDU. Directed advertisements use
// the destination as target address.
type LeAdvertisement Packet

func AsLeAdvertisement(p Packet) (LeAdvertisement, error) {
	return LeAdvertisement(p), view(p, TypeLeAdvertisement)
}

func (v LeAdvertisement) AddressType() uint8       { return Packet(v).Payload()[0] }
func (v LeAdvertisement) AdvertisementType() uint8 { return Packet(v).Payload()[1] }
func (v LeAdvertisement) Data() []byte             { return Packet(v).Payload()[2:] }

type LeAdvertisementBuilder struct {
	Src, Dst          rootcanal.Address
	AddressType       uint8
	AdvertisementType uint8
	Data              []byte
}

func (b LeAdvertisementBuilder) Serialize() []byte {
	out := envelope(TypeLeAdvertisement, b.Src, b.Dst, 2+len(b.Data))
	out = append(out, b.AddressType, b.AdvertisementType)
	return append(out, b.Data...)
}

// LeScan is an active scan request.
type LeScan Packet

func AsLeScan(p Packet) (LeScan, error) { return LeScan(p), view(p, TypeLeScan) }

func (v LeScan) AddressType() uint8 { return Packet(v).Payload()[0] }

type LeScanBuilder struct {
	Src, Dst    rootcanal.Address
	AddressType uint8
}

func (b LeScanBuilder) Serialize() []byte {
	return append(envelope(TypeLeScan, b.Src, b.Dst, 1), b.AddressType)
}

// LeScanResponse has the same layout as LeAdvertisement.
type LeScanResponse Packet

func AsLeScanResponse(p Packet) (LeScanResponse, error) {
	return LeScanResponse(p), view(p, TypeLeScanResponse)
}

func (v LeScanResponse) AddressType() uint8       { return Packet(v).Payload()[0] }
func (v LeScanResponse) AdvertisementType() uint8 { return Packet(v).Payload()[1] }
func (v LeScanResponse) Data() []byte             { return Packet(v).Payload()[2:] }

type LeScanResponseBuilder struct {
	Src, Dst    rootcanal.Address
	AddressType uint8
	Data        []byte
}

func (b LeScanResponseBuilder) Serialize() []byte {
	out := envelope(TypeLeScanResponse, b.Src, b.Dst, 2+len(b.Data))
	out = append(out, b.AddressType, ScanResponse)
	return append(out, b.Data...)
}

// LeConnect is sent by the initiator to a connectable advertiser.
type LeConnect Packet

func AsLeConnect(p Packet) (LeConnect, error) { return LeConnect(p), view(p, TypeLeConnect) }

func (v LeConnect) IntervalMin() uint16        { return u16(Packet(v).Payload(), 0) }
func (v LeConnect) IntervalMax() uint16        { return u16(Packet(v).Payload(), 2) }
func (v LeConnect) Latency() uint16            { return u16(Packet(v).Payload(), 4) }
func (v LeConnect) SupervisionTimeout() uint16 { return u16(Packet(v).Payload(), 6) }
func (v LeConnect) AddressType() uint8         { return Packet(v).Payload()[8] }

type LeConnectBuilder struct {
	Src, Dst           rootcanal.Address
	IntervalMin        uint16
	IntervalMax        uint16
	Latency            uint16
	SupervisionTimeout uint16
	AddressType        uint8
}

func (b LeConnectBuilder) Serialize() []byte {
	out := envelope(TypeLeConnect, b.Src, b.Dst, 9)
	out = put16(out, b.IntervalMin)
	out = put16(out, b.IntervalMax)
	out = put16(out, b.Latency)
	out = put16(out, b.SupervisionTimeout)
	return append(out, b.AddressType)
}

// LeConnectComplete is the advertiser's answer to LeConnect.
type LeConnectComplete Packet

func AsLeConnectComplete(p Packet) (LeConnectComplete, error) {
	return LeConnectComplete(p), view(p, TypeLeConnectComplete)
}

func (v LeConnectComplete) Interval() uint16           { return u16(Packet(v).Payload(), 0) }
func (v LeConnectComplete) Latency() uint16            { return u16(Packet(v).Payload(), 2) }
func (v LeConnectComplete) SupervisionTimeout() uint16 { return u16(Packet(v).Payload(), 4) }
func (v LeConnectComplete) AddressType() uint8         { return Packet(v).Payload()[6] }

type LeConnectCompleteBuilder struct {
	Src, Dst           rootcanal.Address
	Interval           uint16
	Latency            uint16
	SupervisionTimeout uint16
	AddressType        uint8
}

func (b LeConnectCompleteBuilder) Serialize() []byte {
	out := envelope(TypeLeConnectComplete, b.Src, b.Dst, 7)
	out = put16(out, b.Interval)
	out = put16(out, b.Latency)
	out = put16(out, b.SupervisionTimeout)
	return append(out, b.AddressType)
}

// LeConnectionParameterUpdate tells the peer about new connection parameters.
type LeConnectionParameterUpdate Packet

func AsLeConnectionParameterUpdate(p Packet) (LeConnectionParameterUpdate, error) {
	return LeConnectionParameterUpdate(p), view(p, TypeLeConnectionParameterUpdate)
}

func (v LeConnectionParameterUpdate) Status() uint8    { return Packet(v).Payload()[0] }
func (v LeConnectionParameterUpdate) Interval() uint16 { return u16(Packet(v).Payload(), 1) }
func (v LeConnectionParameterUpdate) Latency() uint16  { return u16(Packet(v).Payload(), 3) }
func (v LeConnectionParameterUpdate) Timeout() uint16  { return u16(Packet(v).Payload(), 5) }

type LeConnectionParameterUpdateBuilder struct {
	Src, Dst rootcanal.Address
	Status   uint8
	Interval uint16
	Latency  uint16
	Timeout  uint16
}

func (b LeConnectionParameterUpdateBuilder) Serialize() []byte {
	out := envelope(TypeLeConnectionParameterUpdate, b.Src, b.Dst, 7)
	out = append(out, b.Status)
	out = put16(out, b.Interval)
	out = put16(out, b.Latency)
	return put16(out, b.Timeout)
}

// LeEncrypt is the layout of both LE_ENCRYPT_CONNECTION and its response.
type LeEncrypt Packet

func AsLeEncryptConnection(p Packet) (LeEncrypt, error) {
	return LeEncrypt(p), view(p, TypeLeEncryptConnection)
}

func AsLeEncryptConnectionResponse(p Packet) (LeEncrypt, error) {
	return LeEncrypt(p), view(p, TypeLeEncryptConnectionResponse)
}

func (v LeEncrypt) Rand() uint64 { return binary.LittleEndian.Uint64(Packet(v).Payload()) }
func (v LeEncrypt) Ediv() uint16 { return u16(Packet(v).Payload(), 8) }
func (v LeEncrypt) Ltk() [16]byte {
	var k [16]byte
	copy(k[:], Packet(v).Payload()[10:26])
	return k
}

type LeEncryptBuilder struct {
	Src, Dst rootcanal.Address
	Response bool
	Rand     uint64
	Ediv     uint16
	Ltk      [16]byte
}

func (b LeEncryptBuilder) Serialize() []byte {
	t := TypeLeEncryptConnection
	if b.Response {
		t = TypeLeEncryptConnectionResponse
	}
	out := envelope(t, b.Src, b.Dst, 26)
	var r [8]byte
	binary.LittleEndian.PutUint64(r[:], b.Rand)
	out = append(out, r[:]...)
	out = put16(out, b.Ediv)
	return append(out, b.Ltk[:]...)
}

// InquiryStandard is the only inquiry type simulated, results without RSSI
// or extended data.
const InquiryStandard uint8 = 0x00

// Inquiry is broadcast by a device discovering BR/EDR peers.
type Inquiry Packet

func AsInquiry(p Packet) (Inquiry, error) { return Inquiry(p), view(p, TypeInquiry) }

func (v Inquiry) InquiryType() uint8 { return Packet(v).Payload()[0] }

type InquiryBuilder struct {
	Src, Dst    rootcanal.Address
	InquiryType uint8
}

func (b InquiryBuilder) Serialize() []byte {
	return append(envelope(TypeInquiry, b.Src, b.Dst, 1), b.InquiryType)
}

// InquiryResponse answers an inquiry from a device in inquiry scan.
type InquiryResponse Packet

func AsInquiryResponse(p Packet) (InquiryResponse, error) {
	return InquiryResponse(p), view(p, TypeInquiryResponse)
}

func (v InquiryResponse) InquiryType() uint8            { return Packet(v).Payload()[0] }
func (v InquiryResponse) PageScanRepetitionMode() uint8 { return Packet(v).Payload()[1] }
func (v InquiryResponse) ClassOfDevice() [3]byte {
	var c [3]byte
	copy(c[:], Packet(v).Payload()[2:5])
	return c
}
func (v InquiryResponse) ClockOffset() uint16 { return u16(Packet(v).Payload(), 5) }

type InquiryResponseBuilder struct {
	Src, Dst               rootcanal.Address
	PageScanRepetitionMode uint8
	ClassOfDevice          [3]byte
	ClockOffset            uint16
}

func (b InquiryResponseBuilder) Serialize() []byte {
	out := envelope(TypeInquiryResponse, b.Src, b.Dst, 7)
	out = append(out, InquiryStandard, b.PageScanRepetitionMode)
	out = append(out, b.ClassOfDevice[:]...)
	return put16(out, b.ClockOffset)
}

// Page starts a BR/EDR connection.
type Page Packet

func AsPage(p Packet) (Page, error) { return Page(p), view(p, TypePage) }

func (v Page) ClassOfDevice() [3]byte {
	var c [3]byte
	copy(c[:], Packet(v).Payload())
	return c
}
func (v Page) AllowRoleSwitch() bool { return Packet(v).Payload()[3] != 0 }

type PageBuilder struct {
	Src, Dst        rootcanal.Address
	ClassOfDevice   [3]byte
	AllowRoleSwitch bool
}

func (b PageBuilder) Serialize() []byte {
	out := envelope(TypePage, b.Src, b.Dst, 4)
	out = append(out, b.ClassOfDevice[:]...)
	return append(out, boolByte(b.AllowRoleSwitch))
}

// PageResponse accepts a page.
type PageResponse Packet

func AsPageResponse(p Packet) (PageResponse, error) { return PageResponse(p), view(p, TypePageResponse) }

func (v PageResponse) TryRoleSwitch() bool { return Packet(v).Payload()[0] != 0 }

type PageResponseBuilder struct {
	Src, Dst      rootcanal.Address
	TryRoleSwitch bool
}

func (b PageResponseBuilder) Serialize() []byte {
	return append(envelope(TypePageResponse, b.Src, b.Dst, 1), boolByte(b.TryRoleSwitch))
}

// PageReject refuses a page with an HCI reason.
type PageReject Packet

func AsPageReject(p Packet) (PageReject, error) { return PageReject(p), view(p, TypePageReject) }

func (v PageReject) Reason() uint8 { return Packet(v).Payload()[0] }

type PageRejectBuilder struct {
	Src, Dst rootcanal.Address
	Reason   uint8
}

func (b PageRejectBuilder) Serialize() []byte {
	return append(envelope(TypePageReject, b.Src, b.Dst, 1), b.Reason)
}

// PingBuilder builds PING_REQUEST, or PING_RESPONSE when Response is set.
type PingBuilder struct {
	Src, Dst rootcanal.Address
	Response bool
}

func (b PingBuilder) Serialize() []byte {
	if b.Response {
		return envelope(TypePingResponse, b.Src, b.Dst, 0)
	}
	return envelope(TypePingRequest, b.Src, b.Dst, 0)
}

// RawBuilder passes pre-serialized bytes through.
type RawBuilder []byte

func (b RawBuilder) Serialize() []byte { return []byte(b) }

func boolByte(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

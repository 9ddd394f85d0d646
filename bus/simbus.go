package bus

import (
	"fmt"
	"iter"
)

// Direction is the host-assigned role of a pin. The TPU core never
// consults Direction itself; only SimBus's own DigitalWrite,
// DigitalWriteWord and AnalogWrite honor it.
type Direction int

const (
	DirIn = Direction(iota)
	DirOut
)

// DefaultBufferCapacity is SimBus's tx/rx FIFO depth when the caller
// leaves TxCapacity/RxCapacity at zero.
const DefaultBufferCapacity = 32

// Packet is a single network datagram: a destination address and a
// 16-bit payload.
type Packet struct {
	Addr uint16
	Data uint16
}

// SimBus is a reference Bus implementation backed by plain in-memory
// state: fixed pin arrays plus two capacity-bounded FIFOs. It has no
// persistence and no concurrency of its own; a host driving multiple
// TPUs concurrently is responsible for serializing access.
type SimBus struct {
	DigitalDir [PinCount]Direction
	AnalogDir  [PinCount]Direction

	digital [PinCount]bool
	analog  [PinCount]uint16

	TxCapacity int
	RxCapacity int
	tx         []Packet
	rx         []Packet
}

var _ Bus = (*SimBus)(nil)

// NewSimBus creates a SimBus with all pins direction DirIn and default
// FIFO capacities.
func NewSimBus() *SimBus {
	return &SimBus{
		TxCapacity: DefaultBufferCapacity,
		RxCapacity: DefaultBufferCapacity,
	}
}

// Defines exposes the bus's sizing constants for host tooling.
func (b *SimBus) Defines() iter.Seq2[string, string] {
	txCap, rxCap := b.TxCapacity, b.RxCapacity
	if txCap == 0 {
		txCap = DefaultBufferCapacity
	}
	if rxCap == 0 {
		rxCap = DefaultBufferCapacity
	}
	return func(yield func(string, string) bool) {
		defines := map[string]string{
			"PIN_COUNT":   fmt.Sprintf("%d", PinCount),
			"TX_CAPACITY": fmt.Sprintf("%d", txCap),
			"RX_CAPACITY": fmt.Sprintf("%d", rxCap),
		}
		for k, v := range defines {
			if !yield(k, v) {
				return
			}
		}
	}
}

func (b *SimBus) DigitalWrite(pin int, value bool) {
	if b.DigitalDir[pin] == DirIn {
		return
	}
	b.digital[pin] = value
}

func (b *SimBus) DigitalRead(pin int) bool {
	return b.digital[pin]
}

func (b *SimBus) DigitalWriteWord(mask uint16) {
	for pin := 0; pin < PinCount; pin++ {
		if b.DigitalDir[pin] != DirOut {
			continue
		}
		b.digital[pin] = (mask>>uint(pin))&1 != 0
	}
}

func (b *SimBus) DigitalReadWord() (mask uint16) {
	for pin := 0; pin < PinCount; pin++ {
		if b.digital[pin] {
			mask |= 1 << uint(pin)
		}
	}
	return
}

func (b *SimBus) AnalogWrite(pin int, value uint16) {
	if b.AnalogDir[pin] == DirIn {
		return
	}
	b.analog[pin] = value
}

func (b *SimBus) AnalogRead(pin int) uint16 {
	return b.analog[pin]
}

// SetDigitalInput lets the host (a test, or a simulated peripheral) set
// the value an input-configured pin reads back, bypassing the
// DirOut-only write gate. This is how a sensor drives a pin.
func (b *SimBus) SetDigitalInput(pin int, value bool) {
	b.digital[pin] = value
}

// SetAnalogInput is the analog counterpart of SetDigitalInput.
func (b *SimBus) SetAnalogInput(pin int, value uint16) {
	b.analog[pin] = value
}

func (b *SimBus) txCap() int {
	if b.TxCapacity == 0 {
		return DefaultBufferCapacity
	}
	return b.TxCapacity
}

func (b *SimBus) rxCap() int {
	if b.RxCapacity == 0 {
		return DefaultBufferCapacity
	}
	return b.RxCapacity
}

func (b *SimBus) TxPush(addr, data uint16) bool {
	if len(b.tx) >= b.txCap() {
		return false
	}
	b.tx = append(b.tx, Packet{Addr: addr, Data: data})
	return true
}

func (b *SimBus) RxPop() (addr, data uint16, ok bool) {
	if len(b.rx) == 0 {
		return 0, 0, false
	}
	p := b.rx[0]
	b.rx = b.rx[1:]
	return p.Addr, p.Data, true
}

func (b *SimBus) TxLen() uint16 { return uint16(len(b.tx)) }
func (b *SimBus) RxLen() uint16 { return uint16(len(b.rx)) }

// PopTx drains one packet from the transmit side, for a host (or a
// peer TPU's bus) to deliver. ok is false if tx is empty.
func (b *SimBus) PopTx() (p Packet, ok bool) {
	if len(b.tx) == 0 {
		return Packet{}, false
	}
	p = b.tx[0]
	b.tx = b.tx[1:]
	return p, true
}

// PushRx delivers an incoming packet into the receive buffer, dropping
// it and returning false if the buffer is full, the same overflow
// policy TxPush uses.
func (b *SimBus) PushRx(addr, data uint16) bool {
	if len(b.rx) >= b.rxCap() {
		return false
	}
	b.rx = append(b.rx, Packet{Addr: addr, Data: data})
	return true
}

// Reset clears all pin values and both FIFOs. Pin directions and FIFO
// capacities are left as they are.
func (b *SimBus) Reset() {
	b.digital = [PinCount]bool{}
	b.analog = [PinCount]uint16{}
	b.tx = nil
	b.rx = nil
}

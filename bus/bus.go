package bus

// PinCount is the number of addressable pins in each pin space (digital
// and analog). The dispatcher, not the Bus, is responsible for
// rejecting out-of-range pin indices; a Bus implementation can assume
// pin is always in range.
const PinCount = 16

// Bus is the host-provided peripheral interface a VM is constructed
// with. It exposes digital and analog pins and the two network FIFOs
// (tx/rx) a TPU program can drive with DPW/DPR/APW/APR/XMIT/RECV and
// friends. Implementations decide pin direction and network delivery
// policy; the TPU core only ever calls these methods.
type Bus interface {
	// DigitalWrite sets a digital pin. Implementations must silently
	// ignore writes to input-configured pins.
	DigitalWrite(pin int, value bool)
	// DigitalRead returns the last sampled value of a digital pin.
	DigitalRead(pin int) bool
	// DigitalWriteWord writes all 16 digital pins from mask, LSB = pin 0.
	DigitalWriteWord(mask uint16)
	// DigitalReadWord returns all 16 digital pins as a bitmap, LSB = pin 0.
	DigitalReadWord() uint16
	// AnalogWrite sets an analog pin's 16-bit value.
	AnalogWrite(pin int, value uint16)
	// AnalogRead returns an analog pin's last sampled value.
	AnalogRead(pin int) uint16
	// TxPush enqueues (addr, data) into the transmit buffer. It returns
	// false if the buffer is full; the caller drops the packet silently.
	TxPush(addr, data uint16) bool
	// RxPop dequeues the head of the receive buffer. ok is false if the
	// buffer is empty.
	RxPop() (addr, data uint16, ok bool)
	// TxLen returns the current transmit buffer occupancy.
	TxLen() uint16
	// RxLen returns the current receive buffer occupancy.
	RxLen() uint16
}

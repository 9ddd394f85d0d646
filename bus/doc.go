// Package bus defines the abstract peripheral interface a TPU host must
// provide (digital and analog pins, and the tx/rx network buffers), and
// SimBus, a reference implementation suitable for tests and the cmd/tpu
// demonstrator.
//
// The TPU core never talks to real hardware or a real network; it only
// ever calls a bus.Bus. The physical peripheral catalog (buttons,
// vehicle counters, ...) and the traffic-simulation game engine that
// would drive a production Bus are out of scope here.
package bus

package printer

import (
	"fmt"
	"net"
	"os"
	"time"
)

// Dial and write limits for network printers. A thermal printer on the
// shop LAN either answers quickly or not at all.
const (
	dialTimeout  = 5 * time.Second
	writeTimeout = 10 * time.Second
)

// Printer sends a raw ESC/POS job to a physical receipt printer. Every
// implementation opens and releases its transport per job, so a stuck
// printer never pins a connection across requests.
type Printer interface {
	Print(job []byte) error
	Close() error
}

// Binding is the printer half of a registered cashier device: how the
// process reaches the printer that device is wired to. It mirrors the
// printer columns on the device record.
type Binding struct {
	Type       string // "usb", "network" or "none"
	DevicePath string // character device for usb, e.g. /dev/usb/lp0
	Address    string // host:port for network, conventionally port 9100
}

// Resolve turns a device's printer binding into a usable Printer. Devices
// without a printer resolve to a sink that accepts and drops jobs, so
// print paths never need a nil check.
func Resolve(b Binding) (Printer, error) {
	switch b.Type {
	case "usb":
		if b.DevicePath == "" {
			return nil, fmt.Errorf("printer: usb binding has no device path")
		}
		return &devicePrinter{path: b.DevicePath}, nil
	case "network":
		if b.Address == "" {
			return nil, fmt.Errorf("printer: network binding has no address")
		}
		return &lanPrinter{address: b.Address}, nil
	case "none", "":
		return sinkPrinter{}, nil
	default:
		return nil, fmt.Errorf("printer: unknown binding type %q", b.Type)
	}
}

// devicePrinter writes jobs to a USB character device file.
type devicePrinter struct {
	path string
}

func (p *devicePrinter) Print(job []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: open %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(job); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.path, err)
	}
	return nil
}

func (p *devicePrinter) Close() error {
	return nil
}

// lanPrinter dials the printer's raw TCP port per job.
type lanPrinter struct {
	address string
}

func (p *lanPrinter) Print(job []byte) error {
	conn, err := net.DialTimeout("tcp", p.address, dialTimeout)
	if err != nil {
		return fmt.Errorf("printer: dial %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if _, err := conn.Write(job); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.address, err)
	}
	return nil
}

func (p *lanPrinter) Close() error {
	return nil
}

// sinkPrinter accepts jobs and drops them.
type sinkPrinter struct{}

func (sinkPrinter) Print([]byte) error { return nil }
func (sinkPrinter) Close() error       { return nil }

package printer

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBindings(t *testing.T) {
	tests := []struct {
		name    string
		binding Binding
		wantErr bool
	}{
		{"usb needs a device path", Binding{Type: "usb"}, true},
		{"network needs an address", Binding{Type: "network"}, true},
		{"unknown type rejected", Binding{Type: "serial"}, true},
		{"usb binding", Binding{Type: "usb", DevicePath: "/dev/usb/lp0"}, false},
		{"network binding", Binding{Type: "network", Address: "192.168.1.50:9100"}, false},
		{"none resolves to a sink", Binding{Type: "none"}, false},
		{"empty type resolves to a sink", Binding{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Resolve(tt.binding)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, p)
		})
	}
}

func TestSinkPrinterDropsJobs(t *testing.T) {
	p, err := Resolve(Binding{Type: "none"})
	require.NoError(t, err)
	assert.NoError(t, p.Print([]byte("anything")))
	assert.NoError(t, p.Close())
}

func TestNetworkPrinterWritesJob(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		job, _ := io.ReadAll(conn)
		received <- job
	}()

	p, err := Resolve(Binding{Type: "network", Address: ln.Addr().String()})
	require.NoError(t, err)

	job := []byte("receipt bytes")
	require.NoError(t, p.Print(job))
	require.NoError(t, p.Close())

	select {
	case got := <-received:
		assert.Equal(t, job, got)
	case <-time.After(2 * time.Second):
		t.Fatal("job never reached the listener")
	}
}

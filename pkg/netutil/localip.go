package netutil

import "net"

// LocalIP reports the address of the interface used for outbound traffic.
// The dial never sends a packet; it only resolves the local endpoint.
func LocalIP() (net.IP, error) {
	conn, err := net.Dial("udp", "192.0.2.1:9")
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP, nil
}

package address

import (
	"fmt"
	"strconv"
	"strings"
)

const DefaultHost = "0.0.0.0"

// Address is a split host:port pair the server was asked to bind to. The
// host part is also what redirect Location headers are built from.
type Address struct {
	Host string
	Port uint16
}

func Parse(addr string) (Address, error) {
	colon := strings.LastIndexByte(addr, ':')
	if colon == -1 {
		return Address{}, fmt.Errorf("no port given")
	}

	port, err := strconv.Atoi(addr[colon+1:])
	if err != nil || port < 0 || port > 65535 {
		return Address{}, fmt.Errorf("invalid port: %s", addr[colon+1:])
	}

	host := addr[:colon]
	if len(host) == 0 {
		host = DefaultHost
	}

	return Address{Host: host, Port: uint16(port)}, nil
}

func (a Address) String() string {
	return a.Host + ":" + strconv.Itoa(int(a.Port))
}

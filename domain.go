package patterns

import "fmt"

// Domain is the alphabet a corpus is expected to be drawn from. The encoder
// accepts every byte regardless of domain; the domain is checked while a
// corpus is loaded so that unexpected input is rejected before encoding.
type Domain uint8

const (
	// DomainBytes accepts every byte value.
	DomainBytes Domain = iota
	// DomainASCII accepts 7-bit ASCII (0x00-0x7F).
	DomainASCII
	// DomainUpper accepts uppercase ASCII letters A-Z.
	DomainUpper
)

var domainNames = [...]string{
	DomainBytes: "bytes",
	DomainASCII: "ascii",
	DomainUpper: "upper",
}

// ParseDomain converts a domain name ("bytes", "ascii", "upper") to a Domain.
func ParseDomain(name string) (Domain, error) {
	for d, n := range domainNames {
		if n == name {
			return Domain(d), nil
		}
	}
	return 0, fmt.Errorf("patterns: unknown domain %q", name)
}

func (d Domain) String() string {
	if int(d) < len(domainNames) {
		return domainNames[d]
	}
	return fmt.Sprintf("Domain(%d)", uint8(d))
}

// Contains reports whether b belongs to the domain.
func (d Domain) Contains(b byte) bool {
	switch d {
	case DomainBytes:
		return true
	case DomainASCII:
		return b < 0x80
	case DomainUpper:
		return b >= 'A' && b <= 'Z'
	default:
		return false
	}
}

// Check returns the index of the first byte of s outside the domain, or -1.
func (d Domain) Check(s []byte) int {
	if d == DomainBytes {
		return -1
	}
	for i, b := range s {
		if !d.Contains(b) {
			return i
		}
	}
	return -1
}

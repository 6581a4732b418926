package domain

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

var (
	ErrInvalidDomain    = errors.New("domain must be a host name")
	ErrInvalidThumbnail = errors.New("thumbnail must be an http(s) or relative URL")
)

const maxDomainLength = 253

// hostnamePattern matches dot-separated LDH labels of 1-63 characters.
var hostnamePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?)*$`)

// ValidateDomain accepts a bare host name, IDN included. No port, path, quotes or markup.
func ValidateDomain(instanceDomain string) error {
	ascii, err := idna.Lookup.ToASCII(instanceDomain)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDomain, err)
	}
	if len(ascii) > maxDomainLength || !hostnamePattern.MatchString(ascii) {
		return ErrInvalidDomain
	}
	return nil
}

// ValidateThumbnail accepts "", an absolute http or https URL, or a relative path.
// Characters that would leave a double-quoted HTML attribute are rejected.
func ValidateThumbnail(thumbnail string) error {
	if thumbnail == "" {
		return nil
	}
	if strings.ContainsAny(thumbnail, "\"'<>`\\") || strings.IndexFunc(thumbnail, isSpaceOrControl) >= 0 {
		return ErrInvalidThumbnail
	}

	u, err := url.Parse(thumbnail)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidThumbnail, err)
	}
	switch {
	case u.Scheme == "http" || u.Scheme == "https":
		if u.Host == "" {
			return ErrInvalidThumbnail
		}
	case u.Scheme != "":
		return ErrInvalidThumbnail
	case strings.ContainsAny(thumbnail, ":&"):
		// a relative reference must not spell a scheme, not even through a character reference
		return ErrInvalidThumbnail
	}
	return nil
}

func isSpaceOrControl(r rune) bool {
	return r <= ' ' || r == 0x7f
}

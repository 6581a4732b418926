package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"distsn/domain"
)

// loadHosts reads the host list the collector measures: one host name per line.
// Blank lines and lines starting with '#' are skipped; duplicates collapse and the result is sorted.
func loadHosts(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read hosts file: %w", err)
	}

	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for lineNo := 1; scanner.Scan(); lineNo++ {
		host := strings.TrimSpace(scanner.Text())
		if host == "" || strings.HasPrefix(host, "#") {
			continue
		}
		if err := domain.ValidateDomain(host); err != nil {
			return nil, fmt.Errorf("hosts file line %d: %w", lineNo, err)
		}
		seen[host] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("can't read hosts file: %w", err)
	}

	hosts := make([]string, 0, len(seen))
	for host := range seen {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	return hosts, nil
}

/* Copyright (c) 2021 David Bulkow */

//
// Reads journal records in the JSON export format written by
// journalctl -o json: one record per line, each record a JSON
// object. __REALTIME_TIMESTAMP is a decimal string counting
// microseconds since the epoch. _BOOT_ID is a UUID without dashes.
//

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

type Record struct {
	Cursor   string `json:"__CURSOR,omitempty"`
	Realtime string `json:"__REALTIME_TIMESTAMP"`
	BootID   string `json:"_BOOT_ID,omitempty"`
	Message  string `json:"MESSAGE"`
}

func (r *Record) Time() (time.Time, error) {
	usec, err := strconv.ParseInt(r.Realtime, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad realtime timestamp %q", r.Realtime)
	}

	return time.UnixMicro(usec), nil
}

// readExport scans JSONL records, passing each to fn. Lines that fail
// to decode are reported on stderr and skipped.
func readExport(name string, r io.Reader, fn func(*Record) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineno := 0
	for scanner.Scan() {
		lineno++

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			fmt.Fprintf(os.Stderr, "%s:%d: %v\n", name, lineno, err)
			continue
		}

		if err := fn(&rec); err != nil {
			return err
		}
	}

	return scanner.Err()
}

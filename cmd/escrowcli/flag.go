package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	weave "github.com/iov-one/weave-escrow"
	"github.com/iov-one/weave-escrow/coin"
)

// env returns the value of an environment variable if provided (even if
// empty) or a fallback value.
func env(name, fallback string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return fallback
}

// flAddress returns a value that is being initialized with given default
// value and optionally overwritten by a command line argument if provided.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *weave.Address {
	var a weave.Address
	if defaultVal != "" {
		var err error
		a, err = weave.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q weave.Address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&a, name, usage)
	return &a
}

// flCoin returns a coin flag value, see flAddress.
func flCoin(fl *flag.FlagSet, name, defaultVal, usage string) *coin.Coin {
	var c coin.Coin
	if defaultVal != "" {
		var err error
		c, err = coin.ParseHumanFormat(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q coin.Coin flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&c, name, usage)
	return &c
}

// flSeq returns a sequence ID flag value, see flAddress. The value is
// given either as a decimal number or as 8 hex encoded bytes.
func flSeq(fl *flag.FlagSet, name, defaultVal, usage string) *[]byte {
	var s seqValue
	if defaultVal != "" {
		if err := s.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q sequence flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&s, name, usage)
	return (*[]byte)(&s)
}

type seqValue []byte

func (s seqValue) String() string {
	return hex.EncodeToString(s)
}

func (s *seqValue) Set(raw string) error {
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
		*s = sequenceID(n)
		return nil
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("neither a number nor hex: %q", raw)
	}
	if len(b) != 8 {
		return fmt.Errorf("sequence must be 8 bytes, got %d", len(b))
	}
	*s = b
	return nil
}

// flTime returns a time flag value, see flAddress. The value is given
// either as an RFC3339 date or as a unix timestamp in seconds.
func flTime(fl *flag.FlagSet, name, defaultVal, usage string) *weave.UnixTime {
	var t timeValue
	if defaultVal != "" {
		if err := t.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q time flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&t, name, usage)
	return (*weave.UnixTime)(&t)
}

type timeValue weave.UnixTime

func (t timeValue) String() string {
	return weave.UnixTime(t).String()
}

func (t *timeValue) Set(raw string) error {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*t = timeValue(n)
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("neither a unix timestamp nor RFC3339: %q", raw)
	}
	*t = timeValue(weave.AsUnixTime(parsed))
	return nil
}

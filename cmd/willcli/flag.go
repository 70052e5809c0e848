package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *weave.Address {
	var a addressValue
	if defaultVal != "" {
		if err := a.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q weave.Address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&a, name, usage)
	return (*weave.Address)(&a)
}

type addressValue weave.Address

func (a addressValue) String() string {
	if len(a) == 0 {
		return ""
	}
	return weave.Address(a).String()
}

func (a *addressValue) Set(raw string) error {
	addr, err := weave.ParseAddress(raw)
	if err != nil {
		return err
	}
	*a = addressValue(addr)
	return nil
}

// flCoin returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. The
// human format is used, for example "1.5 DGH".
func flCoin(fl *flag.FlagSet, name, defaultVal, usage string) *coin.Coin {
	var c coinValue
	if defaultVal != "" {
		if err := c.Set(defaultVal); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q coin.Coin flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&c, name, usage)
	return (*coin.Coin)(&c)
}

type coinValue coin.Coin

func (c coinValue) String() string {
	if c.Ticker == "" {
		return ""
	}
	return coin.Coin(c).String()
}

func (c *coinValue) Set(raw string) error {
	v, err := coin.ParseHumanFormat(raw)
	if err != nil {
		return err
	}
	*c = coinValue(v)
	return nil
}

// flagDie terminates the program when a flag value is invalid.
func flagDie(description string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, description, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(2)
}

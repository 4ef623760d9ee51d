package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/peterh/liner"

	addrparse "github.com/datosgobar/georef-ar-address"
)

const (
	historyFile = ".addrline_history"
	prompt      = "> "
)

var banner = "Ingresar una dirección y presionar [ENTER] para extraer sus componentes."

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

// wireResult mirrors AddressResult as the JSON shape callers of the
// original command-line tool this REPL replaces would recognize:
// door_number split into value/unit, floor and type alongside the
// street name list.
type wireResult struct {
	Type       string         `json:"type"`
	StreetNames []string      `json:"street_names"`
	DoorNumber  wireDoorNumber `json:"door_number"`
	Floor       *string        `json:"floor"`
}

type wireDoorNumber struct {
	Value *string `json:"value"`
	Unit  *string `json:"unit"`
}

func toWire(res addrparse.AddressResult) wireResult {
	w := wireResult{
		Type:        string(res.Kind),
		StreetNames: res.StreetNames,
	}
	if w.StreetNames == nil {
		w.StreetNames = []string{}
	}
	if res.DoorNumber.Value != "" {
		w.DoorNumber.Value = &res.DoorNumber.Value
	}
	if res.DoorNumber.Unit != "" {
		w.DoorNumber.Unit = &res.DoorNumber.Unit
	}
	if res.Floor != "" {
		w.Floor = &res.Floor
	}
	return w
}

func main() {
	debug := flag.Bool("debug", false, "print why an address failed to parse, instead of just \"unknown\"")
	flag.Parse()

	if args := flag.Args(); len(args) > 0 {
		os.Exit(runOnce(os.Args[0], args, *debug))
	}
	os.Exit(runRepl(*debug))
}

// runOnce parses every remaining command-line argument as one address
// each and prints its JSON result, for non-interactive use
// ("addrline 'Tucumán 1300 1° A'").
func runOnce(_ string, addrs []string, debug bool) int {
	p := addrparse.New()
	for _, a := range addrs {
		printResult(p, a, debug)
	}
	return 0
}

func runRepl(debug bool) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	cache, err := addrparse.NewLRUCache(4096)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return 1
	}
	p := addrparse.New(addrparse.WithCache(cache))

	for {
		line, ok := readLine(ln)
		if !ok || line == "" {
			fmt.Println()
			return 0
		}
		printResult(p, line, debug)
		ln.AppendHistory(line)
	}
}

func readLine(ln *liner.State) (string, bool) {
	line, err := ln.Prompt(prompt)
	if errors.Is(err, io.EOF) {
		return "", false
	}
	if err != nil {
		return "", false
	}
	return line, true
}

func printResult(p *addrparse.Parser, address string, debug bool) {
	res, trace := p.ParseWithTrace(address)
	if res.Kind == addrparse.KindUnknown && debug && trace != "" {
		fmt.Fprint(os.Stderr, trace)
	}
	buf, err := json.MarshalIndent(toWire(res), "", "    ")
	if err != nil {
		fmt.Fprintln(os.Stderr, red(err.Error()))
		return
	}
	fmt.Println(string(buf))
}

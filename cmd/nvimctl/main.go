// nvimctl drives a running editor over its msgpack-RPC socket. It is a
// smoke-test tool for the binding layer, not a general client.
//
//	nvimctl --addr /tmp/nvim.sock command "echo 'hi'"
//	nvimctl --addr 127.0.0.1:6666 --network tcp eval "2 + 2"
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/nvimgo/nvimgo"
)

func main() {
	network := flag.String("network", "unix", `transport: "unix" or "tcp"`)
	addr := flag.String("addr", "", "socket path (unix) or host:port (tcp)")
	verbose := flag.BoolP("verbose", "v", false, "trace boundary calls to stderr")
	flag.Parse()

	if err := run(*network, *addr, *verbose, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "nvimctl:", err)
		os.Exit(1)
	}
}

func run(network, addr string, verbose bool, args []string) error {
	if addr == "" {
		return fmt.Errorf("--addr is required")
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: nvimctl [flags] <command|eval|exec|bufs> [arg]")
	}
	if verbose {
		nvimgo.SetLogger(zerolog.New(os.Stderr).
			With().Timestamp().Logger().
			Level(zerolog.DebugLevel))
	}

	conn, err := nvimgo.Dial(network, addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	switch args[0] {
	case "command":
		if len(args) != 2 {
			return fmt.Errorf("command takes exactly one argument")
		}
		return nvimgo.Command(args[1])
	case "eval":
		if len(args) != 2 {
			return fmt.Errorf("eval takes exactly one argument")
		}
		obj, err := nvimgo.Eval(args[1])
		if err != nil {
			return err
		}
		fmt.Println(obj.String())
		obj.Free()
		return nil
	case "exec":
		if len(args) != 2 {
			return fmt.Errorf("exec takes exactly one argument")
		}
		out, err := nvimgo.Exec(args[1], true)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	case "bufs":
		for _, buf := range nvimgo.ListBufs() {
			name, err := buf.Name()
			if err != nil {
				return err
			}
			fmt.Printf("%d\t%s\n", buf, name)
		}
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/rigado/rootcanal"
	"github.com/rigado/rootcanal/h4"
	"github.com/rigado/rootcanal/model"
	"github.com/rigado/rootcanal/phy"
)

var (
	flgHciPort    = cli.IntFlag{Name: "hci-port, p", Value: 6402, Usage: "TCP port hosts connect to with H4 framing"}
	flgTick       = cli.DurationFlag{Name: "tick, t", Value: model.DefaultTimerPeriod, Usage: "Period of the simulation timer"}
	flgProperties = cli.StringFlag{Name: "properties", Usage: "JSON file with controller properties"}
	flgKeepAlive  = cli.BoolFlag{Name: "keepalive", Usage: "Ping peers before the supervision timeout of idle links"}
	flgMaxConns   = cli.IntFlag{Name: "max-connections", Usage: "Limit of ACL connections per controller"}
	flgIoTimeout  = cli.DurationFlag{Name: "io-timeout", Usage: "Deadline of every socket read and write, 0 for none"}
	flgUart       = cli.StringFlag{Name: "uart", Usage: "Serial port of an extra host"}
	flgBaud       = cli.UintFlag{Name: "baud", Value: h4.DefaultBaudRate, Usage: "Baud rate of the serial port"}
	flgRtsCts     = cli.BoolFlag{Name: "rtscts", Usage: "Hardware flow control on the serial port"}
	flgLogLevel   = cli.StringFlag{Name: "log-level, l", Value: "info", Usage: "Log level (trace, debug, info, warn, error)"}
)

func main() {
	app := cli.NewApp()

	app.Name = "rootcanal"
	app.Usage = "Virtual Bluetooth controllers sharing simulated LE and BR/EDR media"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		flgHciPort,
		flgTick,
		flgProperties,
		flgKeepAlive,
		flgMaxConns,
		flgIoTimeout,
		flgUart,
		flgBaud,
		flgRtsCts,
		flgLogLevel,
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// deviceOptions builds the controller options shared by every host.
func deviceOptions(c *cli.Context) []rootcanal.Option {
	opts := []rootcanal.Option{
		rootcanal.OptTickPeriod(c.Duration("tick")),
		rootcanal.OptLinkKeepAlive(c.Bool("keepalive")),
	}
	if p := c.String("properties"); p != "" {
		opts = append(opts, rootcanal.OptPropertiesFile(p))
	}
	if n := c.Int("max-connections"); n > 0 {
		opts = append(opts, rootcanal.OptAclConnectionLimit(n))
	}
	return opts
}

func run(c *cli.Context) error {
	lvl, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	rootcanal.SetLogLevel(lvl)

	m := model.NewTestModel()
	if err := m.SetTimerPeriod(c.Duration("tick")); err != nil {
		return err
	}
	m.AddPhy(phy.LowEnergy)
	m.AddPhy(phy.BrEdr)
	logger := m.Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		select {
		case s := <-sig:
			logger.Infof("%v, shutting down", s)
			cancel()
		case <-ctx.Done():
		}
	}()

	opts := deviceOptions(c)

	if port := c.String("uart"); port != "" {
		sp, err := h4.OpenUart(port, c.Uint("baud"), c.Bool("rtscts"))
		if err != nil {
			return err
		}
		d, err := m.AddHciConnection(sp, opts...)
		if err != nil {
			sp.Close()
			return err
		}
		logger.Infof("device %d serving %v", d.ID(), port)
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", c.Int("hci-port")))
	if err != nil {
		return errors.Wrap(err, "can't listen for hci connections")
	}
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	m.StartTimer(ctx)
	defer m.Reset()

	logger.Infof("listening for hci connections on %v", ln.Addr())
	timeout := c.Duration("io-timeout")
	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if ne, ok := err.(net.Error); ok && ne.Temporary() {
				logger.Warnf("accept: %v", err)
				time.Sleep(100 * time.Millisecond)
				continue
			}
			return errors.Wrap(err, "can't accept hci connection")
		}

		d, err := m.AddHciConnection(h4.NewConnWithTimeout(conn, timeout), opts...)
		if err != nil {
			logger.Errorf("%v: %v", conn.RemoteAddr(), err)
			conn.Close()
			continue
		}
		logger.Infof("device %d connected from %v", d.ID(), conn.RemoteAddr())
	}
}

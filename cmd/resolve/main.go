package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/olekukonko/tablewriter"

	"github.com/manzanit0/naver2google/pkg/env"
	"github.com/manzanit0/naver2google/pkg/logger"
	"github.com/manzanit0/naver2google/pkg/naver"
	"github.com/manzanit0/naver2google/pkg/resolver"
)

const ServiceName = "resolve"

func main() {
	env.Load()

	timeout := flag.Duration("timeout", naver.DefaultTimeout, "timeout of each call to Naver")
	verbose := flag.Bool("v", false, "log resolution steps to stdout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: resolve [options] <naver-url-or-text>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nExample:")
		fmt.Fprintln(os.Stderr, "  resolve 'https://naver.me/5abcDEF'")
		os.Exit(1)
	}

	level := slog.LevelError + 1
	if *verbose {
		level = slog.LevelDebug
	}
	logger.InitGlobalSlog(ServiceName, level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := resolver.New(naver.NewClient(
		naver.PlaceAPIOption(env.PlaceAPI()),
		naver.TimeoutOption(*timeout),
	))

	loc, err := r.Resolve(ctx, flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}

	render(os.Stdout, flag.Arg(0), loc)
}

func render(w io.Writer, input string, loc *resolver.Location) {
	lat, lng := "-", "-"
	if loc.Coordinates != nil {
		lat = fmt.Sprint(loc.Coordinates.Lat)
		lng = fmt.Sprint(loc.Coordinates.Lng)
	}

	name := loc.Name
	if name == "" {
		name = "-"
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoWrapText(false)
	table.AppendBulk([][]string{
		{"Input", input},
		{"Name", name},
		{"Latitude", lat},
		{"Longitude", lng},
		{"Google Maps", loc.TargetURL},
	})
	table.Render()
}

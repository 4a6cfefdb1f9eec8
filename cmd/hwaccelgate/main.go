package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/asticode/go-astiav"
	"github.com/davecgh/go-spew/spew"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/avhwgate/gpuvendor"
	"github.com/xaionaro-go/avhwgate/hwaccel"
	"github.com/xaionaro-go/avhwgate/logger"
	"github.com/xaionaro-go/avhwgate/policy"
	"github.com/xaionaro-go/avhwgate/settings"
)

type report struct {
	Vendor          string
	Backends        []string
	VisibleSettings []string
	Codecs          map[string]string
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [flags]\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	configPath := pflag.String("config", "", "path to a config file with the videoplayer.* toggles")
	renderVendor := pflag.String("render-vendor", "", "the GPU vendor string as reported by the render system")
	backends := pflag.StringSlice("backends", nil, "available hardware acceleration backends; probed via libav if not set")
	probe := pflag.Bool("probe", false, "when probing via libav, list only backends a device could be opened for")
	disable := pflag.StringSlice("disable", nil, "toggles to switch off, e.g. videoplayer.usevaapivc1")
	dump := pflag.Bool("dump", false, "dump the whole report instead of printing a table")
	pflag.Parse()
	if pflag.NArg() != 0 {
		pflag.Usage()
		os.Exit(1)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.SetDefault(func() logger.Logger {
		return l
	})
	defer belt.Flush(ctx)

	store, err := settings.LoadViper(*configPath)
	if err != nil {
		l.Fatal(err)
	}
	for _, id := range *disable {
		store.Viper.Set(id, false)
	}

	var lister hwaccel.Lister = hwaccel.Static(*backends)
	if !pflag.CommandLine.Changed("backends") {
		lister = hwaccel.NewCached(&hwaccel.Libav{Probe: *probe})
	}

	detector := gpuvendor.NewDetector(gpuvendor.StaticRenderSystem(*renderVendor))
	engine := policy.NewEngine(lister, detector, store)

	r := buildReport(ctx, engine, detector)
	logger.Infof(ctx, "vendor %s, backends %v", r.Vendor, r.Backends)
	if len(r.Backends) == 0 {
		logger.Warnf(ctx, "no hardware acceleration backends are available, everything decodes in software")
	}
	if *dump {
		spew.Dump(r)
		return
	}
	printReport(r)
}

func buildReport(
	ctx context.Context,
	engine *policy.Engine,
	detector *gpuvendor.Detector,
) report {
	r := report{
		Vendor:          detector.Detect(ctx).String(),
		Backends:        engine.Backends.HWAccelIDs(ctx),
		VisibleSettings: engine.VisibleSettings(ctx, settings.KnownToggles),
		Codecs:          map[string]string{},
	}

	codecIDs := map[astiav.CodecID]struct{}{}
	for _, c := range policy.DefaultCandidates {
		for codecID := range c.Table {
			codecIDs[codecID] = struct{}{}
		}
	}
	codecIDs[astiav.CodecIDH264] = struct{}{}
	for codecID := range codecIDs {
		r.Codecs[codecID.Name()] = engine.SelectBackend(ctx, codecID).String()
	}
	return r
}

func printReport(r report) {
	fmt.Printf("vendor: %s\nbackends: %v\n\n", r.Vendor, r.Backends)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODEC\tBACKEND")
	names := make([]string, 0, len(r.Codecs))
	for name := range r.Codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%s\n", name, r.Codecs[name])
	}
	w.Flush()

	fmt.Println("\nvisible settings:")
	for _, id := range r.VisibleSettings {
		fmt.Printf("  %s\n", id)
	}
}

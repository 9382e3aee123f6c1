package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/Station-Manager/logfacade"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var emitCmd = &cobra.Command{
	Use:   "emit [message...]",
	Short: "Write messages through a logger",
	Long: `Build one sink and one logger from flags and configuration, then write
each argument as a log record. With no arguments, lines are read from stdin.

Examples:
  # Colored stdout at warning level
  logfacadectl emit --level warning "disk almost full"

  # Rotating file, 1 MB per file, 5 backups
  logfacadectl emit --sink rotating --file logs/app --ext log --max-size 1048576 --max-files 5 hello

  # Raw zerolog JSON records
  logfacadectl emit --pattern json "structured"

  # Category-filtered records, no level
  logfacadectl emit --mask 0x3 --flag 0x2 "network"`,
	RunE: runEmit,
}

func init() {
	rootCmd.AddCommand(emitCmd)

	f := emitCmd.Flags()
	f.String("sink", "stdout", "sink kind: stdout, stderr, debug, file, rotating or daily")
	f.String("file", "", "file name or base name for file sinks")
	f.String("ext", "", "extension for rotating and daily sinks")
	f.Bool("color", true, "color console output by level")
	f.Bool("force-flush", false, "flush file sinks after every record")
	f.Uint64("max-size", 5*1024*1024, "rotating sink file size in bytes")
	f.Int("max-files", 3, "rotating sink backup count")
	f.Int("hour", 0, "daily sink rotation hour")
	f.Int("minute", 0, "daily sink rotation minute")
	f.String("name", "logfacadectl", "logger name")
	f.String("level", "info", "record level, also the logger threshold")
	f.String("pattern", "", "line pattern (\"json\" for raw records)")
	f.Uint64("mask", ^uint64(0), "logger bit mask")
	f.Uint64("flag", 0, "log with this category flag and no level")
	f.Bool("async", false, "queue records on a background goroutine")
	f.Int("queue-size", 8192, "async queue size")
	f.Bool("discard", false, "drop records when the async queue is full")
	f.Duration("flush-interval", 0, "async periodic flush interval")

	bind := map[string]string{
		"sink.kind":            "sink",
		"sink.file":            "file",
		"sink.ext":             "ext",
		"sink.color":           "color",
		"sink.force_flush":     "force-flush",
		"sink.max_size":        "max-size",
		"sink.max_files":       "max-files",
		"sink.hour":            "hour",
		"sink.minute":          "minute",
		"logger.name":          "name",
		"logger.level":         "level",
		"logger.pattern":       "pattern",
		"logger.bit_mask":      "mask",
		"logger.flag":          "flag",
		"async.enabled":        "async",
		"async.queue_size":     "queue-size",
		"async.discard":        "discard",
		"async.flush_interval": "flush-interval",
	}
	for key, flag := range bind {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}
}

func createSink(ctx *logfacade.Context) (logfacade.SinkHandle, error) {
	mt := viper.GetBool("async.enabled")
	switch kind := viper.GetString("sink.kind"); kind {
	case "stdout":
		return ctx.CreateStdoutSink(mt, viper.GetBool("sink.color")), nil
	case "stderr":
		return ctx.CreateStderrSink(mt, viper.GetBool("sink.color")), nil
	case "debug":
		return ctx.CreateDebugSink(mt), nil
	case "file":
		return ctx.CreateFileSink(logfacade.FileSinkParams{
			FileName:      viper.GetString("sink.file"),
			ForceFlush:    viper.GetBool("sink.force_flush"),
			MultiThreaded: mt,
		}), nil
	case "rotating":
		return ctx.CreateRotatingFileSink(logfacade.RotatingFileSinkParams{
			BaseName:      viper.GetString("sink.file"),
			Extension:     viper.GetString("sink.ext"),
			MaxFileSize:   viper.GetUint64("sink.max_size"),
			MaxFiles:      viper.GetInt("sink.max_files"),
			MultiThreaded: mt,
		}), nil
	case "daily":
		return ctx.CreateDailyFileSink(logfacade.DailyFileSinkParams{
			BaseName:       viper.GetString("sink.file"),
			Extension:      viper.GetString("sink.ext"),
			RotationHour:   viper.GetInt("sink.hour"),
			RotationMinute: viper.GetInt("sink.minute"),
			MultiThreaded:  mt,
		}), nil
	default:
		return 0, fmt.Errorf("unknown sink kind %q", kind)
	}
}

func runEmit(cmd *cobra.Command, args []string) error {
	level, ok := logfacade.ParseLevel(viper.GetString("logger.level"))
	if !ok {
		return fmt.Errorf("unknown level %q", viper.GetString("logger.level"))
	}

	var (
		mu       sync.Mutex
		reported []string
	)
	policy := logfacade.OverflowBlock
	if viper.GetBool("async.discard") {
		policy = logfacade.OverflowDiscard
	}
	ctx := logfacade.NewContext()
	res := ctx.Init(logfacade.InitConfig{
		AsyncMode:      viper.GetBool("async.enabled"),
		QueueSize:      viper.GetInt("async.queue_size"),
		OverflowPolicy: policy,
		FlushInterval:  viper.GetDuration("async.flush_interval"),
		OnError: func(msg string) {
			mu.Lock()
			reported = append(reported, msg)
			mu.Unlock()
		},
	})
	if res != logfacade.InitSucceeded {
		return fmt.Errorf("init %s: %s", res, strings.Join(reported, "; "))
	}
	defer func() {
		ctx.Shutdown()
		mu.Lock()
		defer mu.Unlock()
		for _, msg := range reported {
			fmt.Fprintln(cmd.ErrOrStderr(), "logfacade:", msg)
		}
	}()

	sink, err := createSink(ctx)
	if err != nil {
		return err
	}
	if sink == 0 {
		return errors.New("sink could not be created")
	}
	logger := ctx.CreateLogger([]logfacade.SinkHandle{sink}, viper.GetString("logger.name"), &logfacade.LoggerParams{
		Pattern: viper.GetString("logger.pattern"),
		Level:   level,
		BitMask: viper.GetUint64("logger.bit_mask"),
	})
	if logger == 0 {
		return errors.New("logger could not be created")
	}

	flag := viper.GetUint64("logger.flag")
	emit := func(msg string) {
		if flag != 0 {
			ctx.LogBfo(logger, flag, msg)
			return
		}
		ctx.Log(logger, level, msg)
	}

	if len(args) > 0 {
		for _, msg := range args {
			emit(msg)
		}
	} else if err := emitLines(cmd.InOrStdin(), emit); err != nil {
		return err
	}
	ctx.FlushLogger(logger)
	return nil
}

func emitLines(r io.Reader, emit func(string)) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		emit(sc.Text())
	}
	return sc.Err()
}

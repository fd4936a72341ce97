// cmd/decode.go
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/surveillance-tools/panoramix/asterix"
	"github.com/surveillance-tools/panoramix/internal/config"
	"github.com/surveillance-tools/panoramix/internal/stats"
	"github.com/surveillance-tools/panoramix/recording"
	"github.com/surveillance-tools/panoramix/sink"
)

var (
	fmtIOSS bool
	fmtASF  bool
	fmtNet  bool
	fmtRec  bool
	fmtRFF  bool

	dataFormat string

	editions = config.NewEditionSelector()

	catFilter  []int
	fromOffset int64
	frameLimit int
	lengthMax  int

	eventsPath string
	strictMode bool
)

func init() {
	decodeCmd := &cobra.Command{
		Use:   "decode [input] [list]",
		Short: "Decode an ASTERIX recording and list its contents",
		Long: `decode reads a recording file, demultiplexes it into frames, decodes
each frame's ASTERIX data block, and writes a textual listing (and,
optionally, a structured JSON event stream) of every record found.`,
		Example: `  # Decode a plain sequence-of-records recording
  panoramix decode --asf capture.ast

  # Decode an IOSS Final Format recording, pin CAT048 to edition 1.32
  panoramix decode --ioss --vsn 048=1.32 capture.ioss

  # Only list categories 048 and 062, emit structured events too
  panoramix decode --asf --cat=48,62 --events events.jsonl capture.ast`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runDecode,
	}

	decodeCmd.Flags().BoolVar(&fmtIOSS, "ioss", false, "Input is IOSS Final Format")
	decodeCmd.Flags().BoolVar(&fmtASF, "asf", false, "Input is a sequence of ASTERIX data blocks (default)")
	decodeCmd.Flags().BoolVar(&fmtNet, "net", false, "Input is Netto framing")
	decodeCmd.Flags().BoolVar(&fmtRec, "rec", false, "Input is a sequence of ASTERIX data blocks (alias of -asf)")
	decodeCmd.Flags().BoolVar(&fmtRFF, "rff", false, "Input is RFF (Comsoft) framing")

	decodeCmd.Flags().StringVar(&dataFormat, "data-format", "asx", "Payload data format: asx, asf, or zzz")

	decodeCmd.Flags().Var(editions, "vsn", "Per-category edition override, vsnCCC=EDITION (repeatable)")

	decodeCmd.Flags().IntSliceVar(&catFilter, "cat", nil, "Only list these categories (comma-separated)")
	decodeCmd.Flags().Int64Var(&fromOffset, "from", 0, "Skip to this byte offset before decoding")
	decodeCmd.Flags().IntVar(&frameLimit, "limit", 0, "Stop after this many frames (0 = no limit)")
	decodeCmd.Flags().IntVar(&lengthMax, "maxlen", 0, "Skip frames longer than this many bytes (0 = no limit)")

	decodeCmd.Flags().StringVar(&eventsPath, "events", "", "Also write structured JSON events to this path")
	decodeCmd.Flags().BoolVar(&strictMode, "strict", false, "Abort on the first decoding error instead of resynchronizing")

	rootCmd.AddCommand(decodeCmd)
}

func selectedFormat() (recording.Format, error) {
	chosen := 0
	var f recording.Format
	for _, pair := range []struct {
		set bool
		f   recording.Format
	}{
		{fmtIOSS, recording.IOSSFinal},
		{fmtASF || fmtRec, recording.Sequence},
		{fmtNet, recording.Netto},
		{fmtRFF, recording.RFF},
	} {
		if pair.set {
			chosen++
			f = pair.f
		}
	}
	if chosen > 1 {
		return 0, fmt.Errorf("%w: choose only one recording format flag", asterix.ErrUnknownRecordingFormat)
	}
	if chosen == 0 {
		return recording.Sequence, nil
	}
	return f, nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	logger := ConfigureLogger(Verbose, JsonLogs)

	format, err := selectedFormat()
	if err != nil {
		return err
	}

	if dataFormat != "asx" {
		return fmt.Errorf("%w: data format %q not supported", asterix.ErrUnknownDataFormat, dataFormat)
	}

	categories := make([]uint8, 0, len(catFilter))
	for _, c := range catFilter {
		if c < 0 || c > 255 {
			return fmt.Errorf("invalid category filter %d", c)
		}
		categories = append(categories, uint8(c))
	}

	decoder, err := config.BuildDecoder(categories, editions)
	if err != nil {
		return fmt.Errorf("building decoder: %w", err)
	}

	src, err := recording.Open(args[0], format, recording.WithStrict(strictMode))
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer src.Close()

	var eventsOut *os.File
	var events *sink.EventWriter
	if eventsPath != "" {
		eventsOut, err = os.Create(eventsPath)
		if err != nil {
			return fmt.Errorf("creating events output: %w", err)
		}
		defer eventsOut.Close()
		events = sink.NewEventWriter(eventsOut)
	}

	lister := sink.NewLister(os.Stdout, 10)
	messageStats := stats.NewMessageStats()
	ctx := asterix.NewDecodingContext()

	frames := 0
	for {
		if frameLimit > 0 && frames >= frameLimit {
			break
		}

		frame, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			var ferr *recording.FrameError
			if errors.As(err, &ferr) {
				if strictMode {
					return fmt.Errorf("malformed frame at offset %d: %w", ferr.Offset, ferr.Err)
				}
				logger.Warn("malformed frame, resynchronized", "offset", ferr.Offset, "error", ferr.Err)
				messageStats.IncrementMalformed()
				continue
			}
			return fmt.Errorf("reading frame: %w", err)
		}

		if frame.Offset < fromOffset {
			continue
		}
		if lengthMax > 0 && len(frame.Payload) > lengthMax {
			continue
		}
		frames++

		ctx.ResetFrame(frame.Timestamp, frame.Line)
		msg, err := decoder.DecodeWithContext(frame.Payload, ctx)
		if err != nil {
			if shouldSuppressError(err, len(categories) == 0, Verbose) {
				continue
			}
			if strictMode {
				return fmt.Errorf("decoding frame at offset %d: %w", frame.Offset, err)
			}
			logger.Error("failed to decode frame", "offset", frame.Offset, "error", err)
			messageStats.IncrementMalformed()
			continue
		}

		messageStats.IncrementCategory(msg.Category)

		if err := lister.List(msg); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}

		if events != nil {
			if _, err := events.Write(frame.Offset, msg); err != nil {
				return fmt.Errorf("writing events: %w", err)
			}
		}
	}

	messageStats.LogStats(logger, true)
	return nil
}

func shouldSuppressError(err error, dumpAll bool, verbose bool) bool {
	if err == nil {
		return false
	}
	if dumpAll || verbose {
		return false
	}
	return errors.Is(err, asterix.ErrUAPNotDefined) || errors.Is(err, asterix.ErrUnknownCategory)
}

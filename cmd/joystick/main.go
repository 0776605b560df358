package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"github.com/esimov/joystick"
	"github.com/esimov/joystick/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const HelpBanner = `
┬┌─┐┬ ┬┌─┐┌┬┐┬┌─┐┬┌─
││ │└┬┘└─┐ │ ││  ├┴┐
└┘└─┘ ┴ └─┘ ┴ ┴└─┘┴ ┴

Virtual analog joystick.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	configFile  = flag.String("config", "", "TOML configuration file")
	orientation = flag.String("orientation", "", "Orientation constraint: both, vertical or horizontal")
	maxSize     = flag.Int("max", -1, "Maximum joystick diameter in pixels (0 means unbounded)")
	width       = flag.Int("width", 0, "Window width")
	height      = flag.Int("height", 0, "Window height")
	background  = flag.String("bg", "", "Background bitmap (path or URL)")
	handle      = flag.String("handle", "", "Handle bitmap (path or URL)")
	snapshot    = flag.String("snapshot", "", "Render a PNG snapshot to this file instead of opening a window")
	pressX      = flag.Float64("x", 0, "Horizontal press offset from the center used by -snapshot")
	pressY      = flag.Float64("y", 0, "Vertical press offset from the center used by -snapshot")
	verbose     = flag.Bool("v", false, "Log the pointer events")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf(utils.DecorateText("Invalid configuration: %v", utils.ErrorMessage), err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	bg, err := loadBitmap(cfg.Background)
	if err != nil {
		log.Fatalf(utils.DecorateText("Failed to load the background bitmap: %v", utils.ErrorMessage), err)
	}
	hd, err := loadBitmap(cfg.Handle)
	if err != nil {
		log.Fatalf(utils.DecorateText("Failed to load the handle bitmap: %v", utils.ErrorMessage), err)
	}

	queue := joystick.NewFrameQueue(time.Now())
	js := joystick.New(queue)
	js.SetLogger(logger)
	if err := cfg.Apply(js); err != nil {
		log.Fatalf(utils.DecorateText("Invalid configuration: %v", utils.ErrorMessage), err)
	}
	js.Listen(printer(os.Stdout))

	if *snapshot != "" {
		if err := render(js, cfg, bg, hd, *snapshot); err != nil {
			log.Fatalf(utils.DecorateText("Failed to render the snapshot: %v", utils.ErrorMessage), err)
		}
		fmt.Fprintf(os.Stderr, "The snapshot has been saved as: %s\n",
			utils.DecorateText(*snapshot, utils.SuccessMessage),
		)
		return
	}

	w := joystick.NewWidget(js, queue, bg, hd)
	w.MaxSize = cfg.MaxSize

	go func() {
		if err := joystick.Run("Joystick", cfg.Width, cfg.Height, w); err != nil {
			log.Fatalf(utils.DecorateText("Window error: %v", utils.ErrorMessage), err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loadConfig reads the configuration file, if any, and applies the flag overrides.
func loadConfig() (joystick.Config, error) {
	cfg := joystick.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = joystick.LoadConfig(*configFile); err != nil {
			return cfg, err
		}
	}
	if *orientation != "" {
		o, err := joystick.ParseOrientation(*orientation)
		if err != nil {
			return cfg, err
		}
		cfg.Orientation = o
	}
	if *maxSize >= 0 {
		cfg.MaxSize = *maxSize
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *background != "" {
		cfg.Background = *background
	}
	if *handle != "" {
		cfg.Handle = *handle
	}
	return cfg, cfg.Validate()
}

func loadBitmap(src string) (image.Image, error) {
	if src == "" {
		return nil, nil
	}
	return joystick.LoadBitmap(src)
}

// printer returns the listener writing the reported positions to w.
// The output is decorated only when w is a terminal.
func printer(w io.Writer) joystick.Listener {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	return func(x, y int) {
		if !tty {
			fmt.Fprintf(w, "%d %d\n", x, y)
			return
		}
		fmt.Fprintf(w, "%s %s\n",
			utils.DecorateText("⚡ JOYSTICK", utils.StatusMessage),
			utils.DecorateText(fmt.Sprintf("⇢ x: %3d y: %3d", x, y), utils.DefaultMessage),
		)
	}
}

// render simulates a press at the requested offset and writes the resulting
// joystick image to the destination file.
func render(js *joystick.Joystick, cfg joystick.Config, bg, hd image.Image, dst string) error {
	w, h := joystick.MeasureSize(cfg.Width, cfg.Height)
	g := js.UpdateGeometry(w, h, cfg.MaxSize)

	ox, oy := js.TouchOffset()
	js.OnPress(0, float64(g.CenterX)+ox+*pressX, float64(g.CenterY)+oy+*pressY)

	img := joystick.Render(js, joystick.ScaleBitmaps(g, bg, hd))

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer f.Close()

	return png.Encode(f, img)
}

package display

import (
	"fmt"
	"image"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

// PrimaryMonitorSize asks the X server for the primary monitor's pixel
// size via the RandR extension, so a canvas can be sized to fill the
// screen. When no output is marked primary the first connected one wins.
func PrimaryMonitorSize() (image.Point, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return image.Point{}, fmt.Errorf("connect X server: %w", err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	if setup == nil {
		return image.Point{}, fmt.Errorf("xproto setup unavailable")
	}
	screen := setup.DefaultScreen(conn)
	if screen == nil {
		return image.Point{}, fmt.Errorf("xproto screen unavailable")
	}
	if err := randr.Init(conn); err != nil {
		return image.Point{}, fmt.Errorf("init randr: %w", err)
	}
	res, err := randr.GetScreenResources(conn, screen.Root).Reply()
	if err != nil {
		return image.Point{}, fmt.Errorf("randr screen resources: %w", err)
	}
	primaryOutput := randr.Output(0)
	if primary, err := randr.GetOutputPrimary(conn, screen.Root).Reply(); err == nil {
		primaryOutput = primary.Output
	}

	var first image.Point
	for _, output := range res.Outputs {
		info, err := randr.GetOutputInfo(conn, output, res.ConfigTimestamp).Reply()
		if err != nil || info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		crtc, err := randr.GetCrtcInfo(conn, info.Crtc, res.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		size := image.Pt(int(crtc.Width), int(crtc.Height))
		if output == primaryOutput {
			return size, nil
		}
		if first == (image.Point{}) {
			first = size
		}
	}
	if first == (image.Point{}) {
		return image.Point{}, fmt.Errorf("no connected monitors")
	}
	return first, nil
}

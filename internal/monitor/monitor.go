// Package monitor counts the monitors attached to an X display.
package monitor

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	xp "github.com/BurntSushi/xgb/xproto"
	"github.com/rs/zerolog"
)

// output is what Count needs to know about a RandR output.
type output struct {
	name         string
	numPreferred uint16
}

// querier lists the outputs of the display's first screen.
type querier interface {
	outputs() ([]output, error)
}

// Count returns the number of outputs that have a preferred mode, which is
// the number of monitors actually plugged in. Any failure to ask counts as
// one monitor, as does an answer of zero, so that there is always a screen
// to put a bar on. It does not retry.
func Count(q querier, log zerolog.Logger) (n int) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Interface("panic", r).Msg("monitor query panicked; assuming one monitor")
			n = 1
		}
	}()
	outs, err := q.outputs()
	if err != nil {
		log.Warn().Err(err).Msg("could not query monitors; assuming one monitor")
		return 1
	}
	for _, o := range outs {
		if o.numPreferred != 0 {
			log.Debug().Str("output", o.name).Msg("monitor connected")
			n++
		}
	}
	if n == 0 {
		log.Warn().Int("outputs", len(outs)).Msg("no output has a preferred mode; assuming one monitor")
		return 1
	}
	return n
}

// Detect counts the monitors on the named X display, or on $DISPLAY if
// display is empty.
func Detect(display string, log zerolog.Logger) int {
	return Count(&randrQuerier{display: display}, log)
}

type randrQuerier struct {
	display string
}

func (q *randrQuerier) outputs() ([]output, error) {
	conn, err := xgb.NewConnDisplay(q.display)
	if err != nil {
		return nil, fmt.Errorf("connect to display %q: %w", q.display, err)
	}
	defer conn.Close()

	if err := randr.Init(conn); err != nil {
		return nil, fmt.Errorf("randr: %w", err)
	}
	setup := xp.Setup(conn)
	if len(setup.Roots) == 0 {
		return nil, fmt.Errorf("X setup has no roots")
	}
	res, err := randr.GetScreenResources(conn, setup.Roots[0].Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("get screen resources: %w", err)
	}

	outs := make([]output, 0, len(res.Outputs))
	for _, o := range res.Outputs {
		info, err := randr.GetOutputInfo(conn, o, res.ConfigTimestamp).Reply()
		if err != nil {
			return nil, fmt.Errorf("get output info %d: %w", o, err)
		}
		outs = append(outs, output{
			name:         string(info.Name),
			numPreferred: info.NumPreferred,
		})
	}
	return outs, nil
}

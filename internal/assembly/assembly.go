// Package assembly attaches Passive House components to rooms and
// apertures. Every function works on duplicates and returns them; inputs
// are left untouched.
package assembly

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gophb/internal/dhw"
	"github.com/alexiusacademia/gophb/internal/hvac"
	"github.com/alexiusacademia/gophb/internal/model"
)

// Diagnostic reports a per-object failure that did not stop the batch.
type Diagnostic struct {
	Object string
	Err    error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %v", d.Object, d.Err)
}

func eachRoom(rooms []*model.Room, fn func(*model.Room) error) ([]*model.Room, error) {
	out := make([]*model.Room, 0, len(rooms))
	for _, r := range rooms {
		dup, err := r.Duplicate()
		if err != nil {
			return nil, fmt.Errorf("room %s: %w", r.DisplayName, err)
		}
		if err := fn(dup); err != nil {
			return nil, fmt.Errorf("room %s: %w", r.DisplayName, err)
		}
		out = append(out, dup)
	}
	return out, nil
}

// appendCopies appends a deep copy of every non-nil item to dst.
func appendCopies[T any](dst []T, items []*T) ([]T, error) {
	for _, it := range items {
		if it == nil {
			continue
		}
		cp, err := model.Duplicate(it)
		if err != nil {
			return nil, err
		}
		dst = append(dst, *cp)
	}
	return dst, nil
}

// AddVentilator assigns the ventilation unit to every room.
func AddVentilator(rooms []*model.Room, v *hvac.Ventilator) ([]*model.Room, error) {
	return eachRoom(rooms, func(r *model.Room) error {
		if v == nil {
			return nil
		}
		cp, err := model.Duplicate(v)
		if err != nil {
			return err
		}
		r.Caps().Energy().Hvac.Ventilator = cp
		return nil
	})
}

// AddDucts appends the ducts to every room. Nil ducts (no geometry) are
// skipped.
func AddDucts(rooms []*model.Room, ducts ...*hvac.Duct) ([]*model.Room, error) {
	return eachRoom(rooms, func(r *model.Room) (err error) {
		h := &r.Caps().Energy().Hvac
		h.Ducts, err = appendCopies(h.Ducts, ducts)
		return err
	})
}

// AddSupportiveDevices appends pumps, fans and similar devices.
func AddSupportiveDevices(rooms []*model.Room, devices ...*hvac.SupportiveDevice) ([]*model.Room, error) {
	return eachRoom(rooms, func(r *model.Room) (err error) {
		h := &r.Caps().Energy().Hvac
		h.Supportive, err = appendCopies(h.Supportive, devices)
		return err
	})
}

// AddRenewableDevices appends on-site generation.
func AddRenewableDevices(rooms []*model.Room, devices ...*hvac.RenewableDevice) ([]*model.Room, error) {
	return eachRoom(rooms, func(r *model.Room) (err error) {
		h := &r.Caps().Energy().Hvac
		h.Renewable, err = appendCopies(h.Renewable, devices)
		return err
	})
}

// AddHotWaterSystem assigns the hot-water system to every room.
func AddHotWaterSystem(rooms []*model.Room, sys *dhw.System, log *zap.Logger) ([]*model.Room, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if sys == nil {
		log.Warn("no hot water system given, rooms unchanged")
	}
	return eachRoom(rooms, func(r *model.Room) error {
		if sys == nil {
			return nil
		}
		cp, err := model.Duplicate(sys)
		if err != nil {
			return err
		}
		r.Caps().Energy().Hvac.HotWater = cp
		return nil
	})
}
